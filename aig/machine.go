// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"io"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/netlist"
	"github.com/go-air/excite/term"
)

// Func defines one equation of a machine: a netlist, or else an
// expression.
type Func struct {
	Netlist *netlist.Netlist
	Expr    expr.Expr
}

// Type Machine is the sequential circuit of a finite state machine: one
// latch per flip-flop, initialised to 0, whose next state is given by the
// characteristic equation of the flip-flop over its excitation signals.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	*Circuit
	Config fsm.Config
	State  []z.Lit          // latches, most significant first
	Inputs []z.Lit          // most significant first
	Excite map[string]z.Lit // flip-flop input signals by equation name
	Out    z.Lit

	sat  *gini.Gini
	mark []int8
}

// NewMachine builds the machine c with equations fs, keyed by equation
// name.
func NewMachine(c fsm.Config, fs map[string]Func) (*Machine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		Circuit: New(),
		Config:  c,
		Excite:  make(map[string]z.Lit)}
	for _, nm := range c.StateVars().Names() {
		l := m.S.Latch(m.S.F)
		m.bind(nm, l)
		m.State = append(m.State, l)
	}
	for _, nm := range c.InputVars().Names() {
		m.Inputs = append(m.Inputs, m.Input(nm))
	}
	for _, eq := range c.Equations() {
		f, ok := fs[eq.Name]
		if !ok {
			return nil, &fsm.MissingAssignmentError{Name: eq.Name}
		}
		var l z.Lit
		if f.Netlist != nil {
			if err := m.checkInputs(f.Netlist.Inputs(), eq.Vars); err != nil {
				return nil, errors.Wrap(err, eq.Name)
			}
			var err error
			if l, err = m.Netlist(f.Netlist); err != nil {
				return nil, errors.Wrap(err, eq.Name)
			}
		} else {
			if err := m.checkInputs(f.Expr.Names(), eq.Vars); err != nil {
				return nil, errors.Wrap(err, eq.Name)
			}
			l = m.Expr(f.Expr)
		}
		if eq.FlipFlop < 0 {
			m.Out = l
			continue
		}
		m.Excite[eq.Name] = l
	}
	for k, q := range m.State {
		i := c.NumFlipFlops - 1 - k
		nms := c.InputNames(i)
		var nxt z.Lit
		switch c.FlipFlop.(type) {
		case fsm.D:
			nxt = m.Excite[nms[0]]
		case fsm.T:
			nxt = m.S.Xor(q, m.Excite[nms[0]])
		case fsm.JK:
			jl, kl := m.Excite[nms[0]], m.Excite[nms[1]]
			nxt = m.S.Or(m.S.And(jl, q.Not()), m.S.And(kl.Not(), q))
		default:
			panic("wilma!")
		}
		m.S.SetNext(q, nxt)
	}
	return m, nil
}

// MachineFor builds the machine c directly from its term assignment.
func MachineFor(c fsm.Config, assign map[string]term.Set) (*Machine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := fsm.Check(c, assign); err != nil {
		return nil, err
	}
	fs := make(map[string]Func, len(assign))
	for _, eq := range c.Equations() {
		e, err := expr.Canonical(assign[eq.Name], eq.Vars)
		if err != nil {
			return nil, err
		}
		fs[eq.Name] = Func{Expr: e}
	}
	return NewMachine(c, fs)
}

// Step computes, with the SAT solver, the next state and the output of m
// from state and input codes.
func (m *Machine) Step(state, input int) (next, out int, err error) {
	if state < 0 || state >= m.Config.States() || input < 0 || input >= 1<<uint(m.Config.NumInputs) {
		return 0, 0, errors.Errorf("step %d/%d out of range", state, input)
	}
	if m.sat == nil {
		m.sat = gini.New()
	}
	roots := make([]z.Lit, 0, len(m.State)+1)
	for _, q := range m.State {
		roots = append(roots, m.S.Next(q))
	}
	roots = append(roots, m.Out)
	m.mark, _ = m.S.CnfSince(m.sat, m.mark, roots...)
	m.sat.Assume(assume(m.State, state)...)
	m.sat.Assume(assume(m.Inputs, input)...)
	if m.sat.Solve() != 1 {
		return 0, 0, errors.Errorf("step %d/%d: no model", state, input)
	}
	for _, q := range m.State {
		next <<= 1
		if m.sat.Value(m.S.Next(q)) {
			next |= 1
		}
	}
	if m.sat.Value(m.Out) {
		out = 1
	}
	return next, out, nil
}

func assume(ls []z.Lit, code int) []z.Lit {
	res := make([]z.Lit, len(ls))
	for i, l := range ls {
		if (code>>uint(len(ls)-1-i))&1 == 1 {
			res[i] = l
		} else {
			res[i] = l.Not()
		}
	}
	return res
}

// Simulate runs m from the initial state over a sequence of input codes by
// evaluating the circuit.  It returns the states entered and the outputs
// produced, one per input.
func (m *Machine) Simulate(inputs []int) (states, outs []int) {
	vs := make([]bool, m.S.Len())
	val := func(l z.Lit) bool {
		v := vs[l.Var()]
		if !l.IsPos() {
			return !v
		}
		return v
	}
	states = make([]int, len(inputs))
	outs = make([]int, len(inputs))
	for t, in := range inputs {
		for i, l := range m.Inputs {
			vs[l.Var()] = (in>>uint(len(m.Inputs)-1-i))&1 == 1
		}
		m.S.Eval(vs)
		if val(m.Out) {
			outs[t] = 1
		}
		nxt := make([]bool, len(m.State))
		st := 0
		for i, q := range m.State {
			nxt[i] = val(m.S.Next(q))
			st <<= 1
			if nxt[i] {
				st |= 1
			}
		}
		for i, q := range m.State {
			vs[q.Var()] = nxt[i]
		}
		states[t] = st
	}
	return states, outs
}

// Verify checks every row of tab against m.
func (m *Machine) Verify(tab *fsm.Table) error {
	nin := uint(m.Config.NumInputs)
	for i := range tab.Rows {
		row := &tab.Rows[i]
		st, in := row.Index>>nin, row.Index&(1<<nin-1)
		nxt, out, err := m.Step(st, in)
		if err != nil {
			return err
		}
		if nxt != row.NextCode() || out != row.Output {
			return errors.Errorf("row %d: circuit gives next %d out %d, table next %d out %d",
				row.Index, nxt, out, row.NextCode(), row.Output)
		}
	}
	return nil
}

// WriteAiger writes m in Aiger format, binary or ascii, with symbols for
// the inputs, the latches and the output.
func (m *Machine) WriteAiger(w io.Writer, binary bool) error {
	a := aiger.MakeFor(m.S, m.Out)
	for i, l := range a.Inputs {
		if nm, ok := m.Name(l); ok {
			if err := a.NameInput(i, nm); err != nil {
				return err
			}
		}
	}
	for i, l := range m.S.Latches {
		if nm, ok := m.Name(l); ok {
			if err := a.NameLatch(i, nm); err != nil {
				return err
			}
		}
	}
	if err := a.NameOutput(0, fsm.Output); err != nil {
		return err
	}
	if binary {
		return a.WriteBinary(w)
	}
	return a.WriteAscii(w)
}
