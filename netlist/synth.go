// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package netlist

import (
	"fmt"

	"github.com/go-air/excite/expr"
)

const (
	// FanIn bounds the inputs of AND and OR gates.
	FanIn = 3
	// Out is the name of the sink of every netlist.
	Out = "OUT"
)

// Levels of gates.
const (
	LevelNot  = 1
	LevelTerm = 2
	LevelOut  = 3
)

// EmptyNetlistError is returned when an expression has no terms to
// synthesize: it is empty, constant or does not parse.
type EmptyNetlistError struct {
	Expr string
	Err  error // parse error, if any
}

func (e *EmptyNetlistError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("no netlist for %q: %s", e.Expr, e.Err)
	}
	return fmt.Sprintf("no netlist for %q: no terms", e.Expr)
}

func (e *EmptyNetlistError) Unwrap() error {
	return e.Err
}

// Ctx holds the state of one synthesis: the gate counter, the inverter
// cache and the variables which gate names must avoid.  The zero Ctx is
// ready to use.
type Ctx struct {
	n     int
	inv   map[string]string
	vars  map[string]bool
	nots  []Gate
	terms []Gate
	outs  []Gate
}

// NewCtx creates a new synthesis context.
func NewCtx() *Ctx {
	return &Ctx{inv: make(map[string]string)}
}

// Reset clears c for a new synthesis.
func (c *Ctx) Reset() {
	c.n = 0
	c.inv = make(map[string]string)
	c.vars = nil
	c.nots = nil
	c.terms = nil
	c.outs = nil
}

// Synth parses s and synthesizes it in a fresh Ctx.
func Synth(s string) (*Netlist, error) {
	e, err := expr.Parse(s)
	if err != nil {
		return nil, &EmptyNetlistError{Expr: s, Err: err}
	}
	return NewCtx().Synth(e)
}

// Synth synthesizes e.  c is reset first.
func (c *Ctx) Synth(e expr.Expr) (*Netlist, error) {
	c.Reset()
	if _, isConst := e.IsConst(); isConst {
		return nil, &EmptyNetlistError{Expr: e.String()}
	}
	c.vars = make(map[string]bool)
	for _, v := range e.Names() {
		c.vars[v] = true
	}
	termType, outType := AND, OR
	if e.Form == expr.POS {
		termType, outType = OR, AND
	}
	if len(e.Terms) == 1 && len(e.Terms[0]) > 1 {
		c.gate(&c.terms, termType, Out, c.signals(e.Terms[0]), LevelTerm)
		return c.netlist(e), nil
	}
	sigs := make([]string, 0, len(e.Terms))
	for _, t := range e.Terms {
		ins := c.signals(t)
		if len(ins) == 1 {
			sigs = append(sigs, ins[0])
			continue
		}
		nm := c.name()
		c.gate(&c.terms, termType, nm, ins, LevelTerm)
		sigs = append(sigs, nm)
	}
	c.gate(&c.outs, outType, Out, sigs, LevelOut)
	return c.netlist(e), nil
}

func (c *Ctx) netlist(e expr.Expr) *Netlist {
	gs := make([]Gate, 0, len(c.nots)+len(c.terms)+len(c.outs))
	gs = append(gs, c.nots...)
	gs = append(gs, c.terms...)
	gs = append(gs, c.outs...)
	return &Netlist{Form: e.Form, Expr: e.String(), Gates: gs}
}

// name returns the next gate name which is not a variable.
func (c *Ctx) name() string {
	for {
		c.n++
		nm := fmt.Sprintf("G%d", c.n)
		if !c.vars[nm] {
			return nm
		}
	}
}

// not returns the output of the inverter of variable v, creating it
// if needed.
func (c *Ctx) not(v string) string {
	if c.inv == nil {
		c.inv = make(map[string]string)
	}
	if o, ok := c.inv[v]; ok {
		return o
	}
	nm := c.name()
	c.nots = append(c.nots, Gate{
		Name:   nm,
		Type:   NOT,
		Inputs: []string{v},
		Output: nm,
		Level:  LevelNot})
	c.inv[v] = nm
	return nm
}

func (c *Ctx) signals(t expr.Term) []string {
	res := make([]string, len(t))
	for i, m := range t {
		if m.Neg {
			res[i] = c.not(m.Name)
		} else {
			res[i] = m.Name
		}
	}
	return res
}

// gate appends to dst a gate of type t named nm over ins, folding ins
// into a chain of mid gates while there are more than FanIn of them.
func (c *Ctx) gate(dst *[]Gate, t GateType, nm string, ins []string, level int) {
	cur := make([]string, len(ins))
	copy(cur, ins)
	for k := 1; len(cur) > FanIn; k++ {
		mid := fmt.Sprintf("%s_mid_%d", nm, k)
		mins := make([]string, FanIn)
		copy(mins, cur[:FanIn])
		*dst = append(*dst, Gate{Name: mid, Type: t, Inputs: mins, Output: mid, Level: level})
		cur = append([]string{mid}, cur[FanIn:]...)
	}
	*dst = append(*dst, Gate{Name: nm, Type: t, Inputs: cur, Output: nm, Level: level})
}
