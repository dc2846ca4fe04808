// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package netlist

import "fmt"

// GateType is AND, OR or NOT.
type GateType int

const (
	AND GateType = iota
	OR
	NOT
)

func (t GateType) String() string {
	switch t {
	case AND:
		return "AND"
	case OR:
		return "OR"
	case NOT:
		return "NOT"
	default:
		panic("wilma!")
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t GateType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *GateType) UnmarshalText(d []byte) error {
	switch string(d) {
	case "AND":
		*t = AND
	case "OR":
		*t = OR
	case "NOT":
		*t = NOT
	default:
		return fmt.Errorf("unknown gate type %q", d)
	}
	return nil
}

func (t GateType) apply(vs []bool) bool {
	switch t {
	case AND:
		for _, v := range vs {
			if !v {
				return false
			}
		}
		return true
	case OR:
		for _, v := range vs {
			if v {
				return true
			}
		}
		return false
	case NOT:
		return !vs[0]
	default:
		panic("wilma!")
	}
}

// Gate is one gate of a Netlist.  Inputs name variables or outputs of
// earlier gates.
type Gate struct {
	Name   string   `json:"name"`
	Type   GateType `json:"type"`
	Inputs []string `json:"inputs"`
	Output string   `json:"output"`
	Level  int      `json:"level"`
}

func (g *Gate) String() string {
	return fmt.Sprintf("%s = %s%v @%d", g.Output, g.Type, g.Inputs, g.Level)
}
