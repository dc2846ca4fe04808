// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package qm computes prime implicants of a Boolean function given by its
// minterms, in the manner of Quine and McCluskey.
//
// The result of Minimize is the disjunction of all prime implicants.  It is
// equivalent to the function but is not reduced by essential prime implicant
// selection, so redundant implicants may remain.
package qm
