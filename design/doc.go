// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package design runs the synthesis pipeline for a whole machine.
//
// Given a flip-flop configuration and a term assignment for every
// flip-flop input and the output, Run builds the excitation table and then,
// for every equation independently, the canonical and/or minimized
// expression and the netlist realising it.  Equations are processed
// concurrently, each with its own netlist.Ctx, and a failure of one
// equation is recorded on that equation without affecting the others.
package design
