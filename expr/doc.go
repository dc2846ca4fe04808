// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package expr implements two level literal expressions, sums of products
// and products of sums, together with their string form.
//
// The string form is the contract between stages of excite:
//
//	A'B' + AB       sum of products, "'" negates
//	(A+B')(A'+B)    product of sums
//	0, 1            constants
//
// Variable names are a letter followed by digits, so "Q1Q0'X0" reads as
// Q1 and not(Q0) and X0.
package expr
