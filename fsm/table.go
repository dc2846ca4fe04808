// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fsm

import (
	"fmt"

	"github.com/go-air/excite/term"
)

// MissingAssignmentError is returned by Build when an equation
// has no term assignment.
type MissingAssignmentError struct {
	Name string
}

func (e *MissingAssignmentError) Error() string {
	return fmt.Sprintf("no term assignment for %s", e.Name)
}

// Row is one row of the excitation and state transition table.
// Bit slices are most significant first.
type Row struct {
	Index      int     `json:"index"`
	State      []int   `json:"state"`
	Input      []int   `json:"input"`
	Excitation [][]int `json:"excitation"` // per flip-flop, Q<n-1> first
	Next       []int   `json:"next"`
	Output     int     `json:"output"`
}

// StateCode gives the current state as an integer.
func (r *Row) StateCode() int {
	return code(r.State)
}

// NextCode gives the next state as an integer.
func (r *Row) NextCode() int {
	return code(r.Next)
}

func code(bs []int) int {
	c := 0
	for _, b := range bs {
		c = c<<1 | b
	}
	return c
}

// Table is the excitation and state transition table of a machine.
type Table struct {
	Config Config    `json:"config"`
	Vars   term.Vars `json:"vars"`
	Rows   []Row     `json:"rows"`
}

// Build computes the table of the machine c whose flip-flop inputs and
// output are defined by assign, keyed by equation name.  Every equation
// of c must be assigned, and every assignment is validated before use.
func Build(c Config, assign map[string]term.Set) (*Table, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := Check(c, assign); err != nil {
		return nil, err
	}
	nff, nin := c.NumFlipFlops, c.NumInputs
	tab := &Table{Config: c, Vars: c.Vars(), Rows: make([]Row, c.Rows())}
	imask := (1 << uint(nin)) - 1
	for r := range tab.Rows {
		st, in := r>>uint(nin), r&imask
		row := &tab.Rows[r]
		row.Index = r
		row.State = bits(st, nff)
		row.Input = bits(in, nin)
		row.Excitation = make([][]int, nff)
		row.Next = make([]int, nff)
		for k := 0; k < nff; k++ {
			i := nff - 1 - k
			q := row.State[k]
			nms := c.InputNames(i)
			ex := make([]int, len(nms))
			for j, nm := range nms {
				ex[j] = ExcitationBit(assign[nm], r)
			}
			row.Excitation[k] = ex
			row.Next[k] = Next(c.FlipFlop, q, ex)
		}
		zr := r
		if c.Machine == Moore {
			zr = st
		}
		row.Output = ExcitationBit(assign[Output], zr)
	}
	return tab, nil
}

// Check verifies that every equation of c has a valid assignment in
// assign.
func Check(c Config, assign map[string]term.Set) error {
	for _, eq := range c.Equations() {
		s, ok := assign[eq.Name]
		if !ok {
			return &MissingAssignmentError{Name: eq.Name}
		}
		if err := s.ValidateFor(eq.Name, eq.Vars.Bits()); err != nil {
			return err
		}
	}
	return nil
}

func bits(v, n int) []int {
	res := make([]int, n)
	for i := range res {
		res[i] = (v >> uint(n-1-i)) & 1
	}
	return res
}
