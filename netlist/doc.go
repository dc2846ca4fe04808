// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package netlist synthesizes two level literal expressions into networks of
// AND, OR and NOT gates with bounded fan-in.
//
// Synthesis of one expression happens within a Ctx, which numbers gates and
// shares inverters: each negated variable is inverted by at most one NOT gate.
// A Ctx belongs to exactly one synthesis call at a time; Synth creates a fresh
// one, and Ctx.Synth resets the receiver before use.
//
// Gates are tagged with levels: inverters are level 1, term gates level 2 and
// the gates combining terms into the sink OUT level 3.  Gates with more than
// FanIn inputs are folded left to right into chains of <name>_mid_<k> gates.
package netlist
