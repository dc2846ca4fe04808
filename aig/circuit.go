// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"fmt"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/netlist"
	"github.com/go-air/excite/term"
)

// Type Circuit is an and-inverter graph whose inputs have names.
//
// Names may also be bound to latches, so a Circuit is backed by a
// sequential logic.S.
type Circuit struct {
	*logic.S
	lits  map[string]z.Lit
	names map[z.Var]string
}

// New creates a new empty circuit.
func New() *Circuit {
	return &Circuit{
		S:     logic.NewS(),
		lits:  make(map[string]z.Lit),
		names: make(map[z.Var]string)}
}

// Input returns the literal named nm, creating an input if there is
// none.
func (c *Circuit) Input(nm string) z.Lit {
	if m, ok := c.lits[nm]; ok {
		return m
	}
	m := c.S.Lit()
	c.bind(nm, m)
	return m
}

// Has returns whether nm names a literal in c.
func (c *Circuit) Has(nm string) bool {
	_, ok := c.lits[nm]
	return ok
}

// Name returns the name of the input or latch m.
func (c *Circuit) Name(m z.Lit) (string, bool) {
	nm, ok := c.names[m.Var()]
	return nm, ok
}

func (c *Circuit) bind(nm string, m z.Lit) {
	c.lits[nm] = m
	c.names[m.Var()] = nm
}

// Netlist adds the gates of n to c and returns the literal of the sink.
// Primary inputs of n are resolved with Input.
func (c *Circuit) Netlist(n *netlist.Netlist) (z.Lit, error) {
	if err := n.Check(); err != nil {
		return z.LitNull, err
	}
	sig := make(map[string]z.Lit, len(n.Gates))
	ms := make([]z.Lit, 0, netlist.FanIn)
	for i := range n.Gates {
		g := &n.Gates[i]
		ms = ms[:0]
		for _, in := range g.Inputs {
			m, ok := sig[in]
			if !ok {
				m = c.Input(in)
			}
			ms = append(ms, m)
		}
		switch g.Type {
		case netlist.AND:
			sig[g.Output] = c.S.Ands(ms...)
		case netlist.OR:
			sig[g.Output] = c.S.Ors(ms...)
		case netlist.NOT:
			sig[g.Output] = ms[0].Not()
		default:
			panic("wilma!")
		}
	}
	return sig[netlist.Out], nil
}

// Expr adds e to c.
func (c *Circuit) Expr(e expr.Expr) z.Lit {
	if v, ok := e.IsConst(); ok {
		if v {
			return c.S.T
		}
		return c.S.F
	}
	ts := make([]z.Lit, len(e.Terms))
	ms := make([]z.Lit, 0, 8)
	for i, t := range e.Terms {
		ms = ms[:0]
		for _, l := range t {
			m := c.Input(l.Name)
			if l.Neg {
				m = m.Not()
			}
			ms = append(ms, m)
		}
		if e.Form == expr.SOP {
			ts[i] = c.S.Ands(ms...)
		} else {
			ts[i] = c.S.Ors(ms...)
		}
	}
	if e.Form == expr.SOP {
		return c.S.Ors(ts...)
	}
	return c.S.Ands(ts...)
}

// Set adds the function defined by s over vs to c, as a disjunction of
// its minterms.
func (c *Circuit) Set(s term.Set, vs term.Vars) (z.Lit, error) {
	if err := s.Validate(vs.Bits()); err != nil {
		return z.LitNull, err
	}
	ins := make([]z.Lit, len(vs))
	for i, v := range vs {
		ins[i] = c.Input(v.Name)
	}
	rows := s.Minterms(vs.Bits())
	ts := make([]z.Lit, len(rows))
	ms := make([]z.Lit, len(vs))
	for i, r := range rows {
		for j, v := range vs {
			ms[j] = ins[j]
			if v.Bit(r) == 0 {
				ms[j] = ins[j].Not()
			}
		}
		ts[i] = c.S.Ands(ms...)
	}
	return c.S.Ors(ts...), nil
}

// row computes the row over vs of a model given by value.
func (c *Circuit) row(vs term.Vars, value func(z.Lit) bool) int {
	r := 0
	for _, v := range vs {
		if value(c.Input(v.Name)) {
			r |= 1 << uint(v.Pos)
		}
	}
	return r
}

func (c *Circuit) checkInputs(ins []string, vs term.Vars) error {
	for _, in := range ins {
		if vs.Index(in) < 0 {
			return fmt.Errorf("input %s not in %s", in, vs)
		}
	}
	return nil
}
