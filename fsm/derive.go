// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fsm

import (
	"fmt"

	"github.com/go-air/excite/term"
)

// Derivation is the result of Derive.
type Derivation struct {
	// Terms holds a minterm set for every equation.
	Terms map[string]term.Set
	// DontCare lists, per equation, rows whose value is unconstrained.
	// Derive resolves them to 0 in Terms.
	DontCare map[string][]int
}

// Derive computes the flip-flop input and output term assignments which
// realise a state transition table.  next[r] is the next state code of row r
// and out[r] its output, for every row of c.  For Moore machines out must not
// depend on the input bits.
func Derive(c Config, next, out []int) (*Derivation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(next) != c.Rows() || len(out) != c.Rows() {
		return nil, fmt.Errorf("%w: want %d rows, got %d next and %d out", ErrConfig, c.Rows(), len(next), len(out))
	}
	d := &Derivation{
		Terms:    make(map[string]term.Set),
		DontCare: make(map[string][]int)}
	nin := uint(c.NumInputs)
	for i := c.NumFlipFlops - 1; i >= 0; i-- {
		nms := c.InputNames(i)
		for _, nm := range nms {
			d.Terms[nm] = term.Minterms()
		}
		for r := 0; r < c.Rows(); r++ {
			if next[r] < 0 || next[r] >= c.States() {
				return nil, fmt.Errorf("%w: row %d next state %d", ErrConfig, r, next[r])
			}
			q := ((r >> nin) >> uint(i)) & 1
			qn := (next[r] >> uint(i)) & 1
			for j, b := range Excite(c.FlipFlop, q, qn) {
				nm := nms[j]
				switch b {
				case B1:
					s := d.Terms[nm]
					s.Terms = append(s.Terms, r)
					d.Terms[nm] = s
				case BX:
					d.DontCare[nm] = append(d.DontCare[nm], r)
				}
			}
		}
	}
	z := term.Minterms()
	switch c.Machine {
	case Mealy:
		for r, o := range out {
			if o != 0 {
				z.Terms = append(z.Terms, r)
			}
		}
	case Moore:
		per := 1 << nin
		for st := 0; st < c.States(); st++ {
			o := out[st*per]
			for k := 1; k < per; k++ {
				if out[st*per+k] != o {
					return nil, fmt.Errorf("%w: moore output of state %d depends on input", ErrConfig, st)
				}
			}
			if o != 0 {
				z.Terms = append(z.Terms, st)
			}
		}
	}
	d.Terms[Output] = z
	return d, nil
}
