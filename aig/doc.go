// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package aig maps netlists, expressions and term sets onto gini and-inverter
// graphs.
//
// Package aig provides SAT based equivalence checking of synthesized
// netlists against their defining term sets, a sequential model of a
// machine with one latch per flip-flop, and export of that model in the
// Aiger format.
package aig
