// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package netlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-air/excite/expr"
)

// Netlist is a gate network with the single sink Out.  Gates are in
// topological order: inverters, then term gates, then combining gates.
type Netlist struct {
	Form  expr.Form `json:"form"`
	Expr  string    `json:"expr"`
	Gates []Gate    `json:"gates"`
}

// Len returns the number of gates.
func (n *Netlist) Len() int {
	return len(n.Gates)
}

// Count returns the number of gates of type t.
func (n *Netlist) Count(t GateType) int {
	k := 0
	for i := range n.Gates {
		if n.Gates[i].Type == t {
			k++
		}
	}
	return k
}

// Gate returns the gate driving output o, or nil.
func (n *Netlist) Gate(o string) *Gate {
	for i := range n.Gates {
		if n.Gates[i].Output == o {
			return &n.Gates[i]
		}
	}
	return nil
}

// Inputs returns the primary inputs of n in order of first use.
func (n *Netlist) Inputs() []string {
	outs := make(map[string]bool, len(n.Gates))
	for i := range n.Gates {
		outs[n.Gates[i].Output] = true
	}
	seen := make(map[string]bool)
	var res []string
	for i := range n.Gates {
		for _, in := range n.Gates[i].Inputs {
			if outs[in] || seen[in] {
				continue
			}
			seen[in] = true
			res = append(res, in)
		}
	}
	return res
}

// Check verifies the structural invariants of n: fan-in bounds, unique
// outputs defined before use, no gate output named like a variable of
// n.Expr, a single sink named Out and no dangling gate.
func (n *Netlist) Check() error {
	if len(n.Gates) == 0 {
		return &EmptyNetlistError{Expr: n.Expr}
	}
	defined := make(map[string]bool, len(n.Gates))
	used := make(map[string]bool, len(n.Gates))
	outs := make(map[string]bool, len(n.Gates))
	for i := range n.Gates {
		outs[n.Gates[i].Output] = true
	}
	if e, err := expr.Parse(n.Expr); err == nil {
		for _, v := range e.Names() {
			if outs[v] {
				return fmt.Errorf("variable %s is also a gate output", v)
			}
		}
	}
	for i := range n.Gates {
		g := &n.Gates[i]
		switch g.Type {
		case NOT:
			if len(g.Inputs) != 1 {
				return fmt.Errorf("gate %s: NOT with %d inputs", g.Name, len(g.Inputs))
			}
		default:
			if len(g.Inputs) == 0 || len(g.Inputs) > FanIn {
				return fmt.Errorf("gate %s: %s with %d inputs", g.Name, g.Type, len(g.Inputs))
			}
		}
		for _, in := range g.Inputs {
			if outs[in] && !defined[in] {
				return fmt.Errorf("gate %s: input %s used before definition", g.Name, in)
			}
			used[in] = true
		}
		if defined[g.Output] {
			return fmt.Errorf("gate %s: output %s defined twice", g.Name, g.Output)
		}
		defined[g.Output] = true
	}
	if !defined[Out] {
		return fmt.Errorf("no %s gate", Out)
	}
	if used[Out] {
		return fmt.Errorf("%s is not a sink", Out)
	}
	for i := range n.Gates {
		if o := n.Gates[i].Output; o != Out && !used[o] {
			return fmt.Errorf("gate %s dangles", n.Gates[i].Name)
		}
	}
	return nil
}

// Eval evaluates n with the primary inputs given in vals and returns the
// value of Out.
func (n *Netlist) Eval(vals map[string]bool) (bool, error) {
	sig := make(map[string]bool, len(n.Gates))
	var buf []bool
	for i := range n.Gates {
		g := &n.Gates[i]
		buf = buf[:0]
		for _, in := range g.Inputs {
			v, ok := sig[in]
			if !ok {
				v, ok = vals[in]
			}
			if !ok {
				return false, fmt.Errorf("gate %s: no value for %s", g.Name, in)
			}
			buf = append(buf, v)
		}
		sig[g.Output] = g.Type.apply(buf)
	}
	v, ok := sig[Out]
	if !ok {
		return false, fmt.Errorf("no %s gate", Out)
	}
	return v, nil
}

// WriteDot writes n in graphviz dot format.
func (n *Netlist) WriteDot(w io.Writer, name string) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %q {\n", name)
	sb.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&sb, "  label=%q;\n", n.Expr)
	for _, in := range n.Inputs() {
		fmt.Fprintf(&sb, "  %q [shape=plaintext];\n", in)
	}
	for i := range n.Gates {
		g := &n.Gates[i]
		shape := "box"
		if g.Type == NOT {
			shape = "invtriangle"
		}
		fmt.Fprintf(&sb, "  %q [shape=%s,label=\"%s\\n%s\"];\n", g.Output, shape, g.Type, g.Name)
	}
	for i := range n.Gates {
		g := &n.Gates[i]
		for _, in := range g.Inputs {
			fmt.Fprintf(&sb, "  %q -> %q;\n", in, g.Output)
		}
	}
	sb.WriteString("}\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
