// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package fsm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-air/excite/term"
)

// ErrConfig is wrapped by all configuration errors.
var ErrConfig = errors.New("invalid fsm configuration")

// Output is the name of the machine output.
const Output = "Z"

// Machine says what the output depends on.
type Machine int

const (
	Mealy Machine = iota // state and input
	Moore                // state only
)

func (m Machine) String() string {
	switch m {
	case Mealy:
		return "mealy"
	case Moore:
		return "moore"
	default:
		return fmt.Sprintf("machine(%d)", int(m))
	}
}

// ParseMachine parses "mealy" or "moore", ignoring case.
func ParseMachine(s string) (Machine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mealy":
		return Mealy, nil
	case "moore":
		return Moore, nil
	}
	return 0, fmt.Errorf("%w: unknown machine type %q", ErrConfig, s)
}

// Config describes the shape of a machine.
type Config struct {
	FlipFlop     FlipFlop
	NumFlipFlops int // 2 or 3
	NumInputs    int // 1 or 2
	Machine      Machine
}

// Validate checks the ranges supported by excite.
func (c Config) Validate() error {
	if c.FlipFlop == nil {
		return fmt.Errorf("%w: no flip-flop type", ErrConfig)
	}
	if c.NumFlipFlops < 2 || c.NumFlipFlops > 3 {
		return fmt.Errorf("%w: %d flip-flops, want 2 or 3", ErrConfig, c.NumFlipFlops)
	}
	if c.NumInputs < 1 || c.NumInputs > 2 {
		return fmt.Errorf("%w: %d inputs, want 1 or 2", ErrConfig, c.NumInputs)
	}
	if c.Machine != Mealy && c.Machine != Moore {
		return fmt.Errorf("%w: %s", ErrConfig, c.Machine)
	}
	return nil
}

// Bits is the width of a row index.
func (c Config) Bits() int {
	return c.NumFlipFlops + c.NumInputs
}

// Rows is the number of table rows.
func (c Config) Rows() int {
	return 1 << uint(c.Bits())
}

// States is the number of states.
func (c Config) States() int {
	return 1 << uint(c.NumFlipFlops)
}

// StateVars gives Q<n-1>..Q0.
func (c Config) StateVars() term.Vars {
	return term.NewVars(term.Seq("Q", c.NumFlipFlops)...)
}

// InputVars gives X<m-1>..X0.
func (c Config) InputVars() term.Vars {
	return term.NewVars(term.Seq("X", c.NumInputs)...)
}

// Vars gives the full row variables, state bits then input bits.
func (c Config) Vars() term.Vars {
	ns := append(term.Seq("Q", c.NumFlipFlops), term.Seq("X", c.NumInputs)...)
	return term.NewVars(ns...)
}

// InputNames gives the names of the inputs of flip-flop i, e.g. J1, K1.
func (c Config) InputNames(i int) []string {
	ls := c.FlipFlop.Inputs()
	res := make([]string, len(ls))
	for j, l := range ls {
		res[j] = fmt.Sprintf("%s%d", l, i)
	}
	return res
}

// Equation is one Boolean function to derive: a flip-flop input or the
// output.
type Equation struct {
	Name     string
	Vars     term.Vars
	FlipFlop int // index of the driven flip-flop, -1 for the output
}

// Equations lists the equations of c: flip-flop inputs from the most
// significant flip-flop down, then the output.  Moore outputs range over
// the state bits only.
func (c Config) Equations() []Equation {
	vs := c.Vars()
	res := make([]Equation, 0, c.NumFlipFlops*2+1)
	for i := c.NumFlipFlops - 1; i >= 0; i-- {
		for _, nm := range c.InputNames(i) {
			res = append(res, Equation{Name: nm, Vars: vs, FlipFlop: i})
		}
	}
	ovs := vs
	if c.Machine == Moore {
		ovs = c.StateVars()
	}
	return append(res, Equation{Name: Output, Vars: ovs, FlipFlop: -1})
}

// Equation returns the equation named nm.
func (c Config) Equation(nm string) (Equation, bool) {
	for _, e := range c.Equations() {
		if e.Name == nm {
			return e, true
		}
	}
	return Equation{}, false
}

func (c Config) String() string {
	ff := "?"
	if c.FlipFlop != nil {
		ff = c.FlipFlop.String()
	}
	return fmt.Sprintf("%s %s ff=%d in=%d", c.Machine, ff, c.NumFlipFlops, c.NumInputs)
}

type jsonConfig struct {
	FlipFlop     string `json:"flipFlop"`
	NumFlipFlops int    `json:"numFlipFlops"`
	NumInputs    int    `json:"numInputs"`
	Machine      string `json:"machine"`
}

// MarshalJSON implements json.Marshaler.
func (c Config) MarshalJSON() ([]byte, error) {
	jc := jsonConfig{NumFlipFlops: c.NumFlipFlops, NumInputs: c.NumInputs, Machine: c.Machine.String()}
	if c.FlipFlop != nil {
		jc.FlipFlop = c.FlipFlop.String()
	}
	return json.Marshal(jc)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Config) UnmarshalJSON(d []byte) error {
	var jc jsonConfig
	if err := json.Unmarshal(d, &jc); err != nil {
		return err
	}
	ff, err := ParseFlipFlop(jc.FlipFlop)
	if err != nil {
		return err
	}
	m := Mealy
	if jc.Machine != "" {
		if m, err = ParseMachine(jc.Machine); err != nil {
			return err
		}
	}
	*c = Config{FlipFlop: ff, NumFlipFlops: jc.NumFlipFlops, NumInputs: jc.NumInputs, Machine: m}
	return nil
}
