// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fsm

import (
	"fmt"
	"strings"

	"github.com/go-air/excite/term"
)

// FlipFlop is one of D, T or JK.  The set of implementations is
// closed.
type FlipFlop interface {
	fmt.Stringer
	// Inputs gives the input letters of the flip-flop, in order.
	Inputs() []string
	flipFlop()
}

// D is the data flip-flop: Q+ = D.
type D struct{}

// T is the toggle flip-flop: Q+ = Q xor T.
type T struct{}

// JK is the JK flip-flop: hold, reset, set or toggle.
type JK struct{}

func (D) String() string  { return "D" }
func (T) String() string  { return "T" }
func (JK) String() string { return "JK" }

func (D) Inputs() []string  { return []string{"D"} }
func (T) Inputs() []string  { return []string{"T"} }
func (JK) Inputs() []string { return []string{"J", "K"} }

func (D) flipFlop()  {}
func (T) flipFlop()  {}
func (JK) flipFlop() {}

// ParseFlipFlop returns the flip-flop named by s, ignoring case.
func ParseFlipFlop(s string) (FlipFlop, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D":
		return D{}, nil
	case "T":
		return T{}, nil
	case "JK":
		return JK{}, nil
	}
	return nil, fmt.Errorf("%w: unknown flip-flop %q", ErrConfig, s)
}

// ExcitationBit gives the value of the function defined by s at row.
// Membership in a maxterm set means 0.
func ExcitationBit(s term.Set, row int) int {
	b := 0
	if s.Has(row) {
		b = 1
	}
	if !s.Minterm {
		b ^= 1
	}
	return b
}

// Next gives the next state bit of a flip-flop of type ff in state q
// under excitation ex, which holds one bit per ff.Inputs().
//
// Next panics if len(ex) does not match ff.
func Next(ff FlipFlop, q int, ex []int) int {
	if len(ex) != len(ff.Inputs()) {
		panic(fmt.Sprintf("%s flip-flop given %d excitation bits", ff, len(ex)))
	}
	switch ff.(type) {
	case D:
		return dNext(q, ex[0])
	case T:
		return tNext(q, ex[0])
	case JK:
		return jkNext(q, ex[0], ex[1])
	default:
		panic(fmt.Sprintf("unknown flip-flop %T", ff))
	}
}

func dNext(q, d int) int {
	return d & 1
}

func tNext(q, t int) int {
	return (q ^ t) & 1
}

func jkNext(q, j, k int) int {
	switch {
	case j == 0 && k == 0:
		return q
	case j == 0:
		return 0
	case k == 0:
		return 1
	default:
		return 1 - q
	}
}

// Bit is an excitation requirement: 0, 1 or don't care.
type Bit int8

const (
	B0 Bit = iota
	B1
	BX
)

func (b Bit) String() string {
	switch b {
	case B0:
		return "0"
	case B1:
		return "1"
	case BX:
		return "X"
	default:
		panic("wilma!")
	}
}

// Excite gives the flip-flop inputs required to move from q to next,
// one per ff.Inputs().  This is the excitation table proper.
func Excite(ff FlipFlop, q, next int) []Bit {
	switch ff.(type) {
	case D:
		return []Bit{Bit(next & 1)}
	case T:
		return []Bit{Bit((q ^ next) & 1)}
	case JK:
		if q == 0 {
			return []Bit{Bit(next & 1), BX}
		}
		return []Bit{BX, Bit((next & 1) ^ 1)}
	default:
		panic(fmt.Sprintf("unknown flip-flop %T", ff))
	}
}
