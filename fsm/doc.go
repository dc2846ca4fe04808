// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package fsm models a synchronous finite state machine built from D, T or JK
// flip-flops.
//
// Given the term assignment of every flip-flop input (D1, D0, J0, K0, ...) and
// of the output Z, Build computes the complete excitation and state transition
// table.  Derive goes the other way, from a state transition table to the
// excitation term assignments a designer would have to write down.
//
// Rows are indexed by state<<NumInputs | input.  State bits are Q<n-1>..Q0 and
// input bits X<m-1>..X0, most significant first.
package fsm
