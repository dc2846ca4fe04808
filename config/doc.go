// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config reads and writes problem files.
//
// A problem file gives the machine configuration and a term set for every
// equation, in toml, yaml or json.  In toml:
//
//	flip_flop = "JK"
//	flip_flops = 2
//	inputs = 1
//	machine = "mealy"
//	path = "minimized"
//
//	[terms.J1]
//	minterms = [3]
//
//	[terms.Z]
//	maxterms = [0, 1, 2, 3, 4, 5]
//
// The format is chosen from the file extension; a trailing .gz is
// allowed.  The path "-" reads toml from standard input.
package config
