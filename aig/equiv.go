// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/netlist"
	"github.com/go-air/excite/term"
)

// NotEquivError is returned when a netlist or expression differs from the
// term set it was derived from.
type NotEquivError struct {
	Expr string
	Row  int    // a row on which they differ
	Vars string // the row as a bit pattern
}

func (e *NotEquivError) Error() string {
	return fmt.Sprintf("%s differs from its terms at row %d (%s)", e.Expr, e.Row, e.Vars)
}

// Equiv checks with a miter that n computes the function defined by s
// over vs.  If it does not, Equiv returns a *NotEquivError.
func Equiv(n *netlist.Netlist, s term.Set, vs term.Vars) error {
	if err := vs.Valid(); err != nil {
		return err
	}
	c := New()
	if err := c.checkInputs(n.Inputs(), vs); err != nil {
		return err
	}
	want, err := c.Set(s, vs)
	if err != nil {
		return err
	}
	got, err := c.Netlist(n)
	if err != nil {
		return err
	}
	return c.miter(n.Expr, got, want, vs)
}

// EquivExpr is like Equiv for an expression.
func EquivExpr(e expr.Expr, s term.Set, vs term.Vars) error {
	if err := vs.Valid(); err != nil {
		return err
	}
	c := New()
	if err := c.checkInputs(e.Names(), vs); err != nil {
		return err
	}
	want, err := c.Set(s, vs)
	if err != nil {
		return err
	}
	return c.miter(e.String(), c.Expr(e), want, vs)
}

func (c *Circuit) miter(src string, a, b z.Lit, vs term.Vars) error {
	m := c.S.Xor(a, b)
	g := gini.New()
	c.S.ToCnfFrom(g, m)
	g.Assume(m)
	switch g.Solve() {
	case -1:
		return nil
	case 1:
		r := c.row(vs, g.Value)
		return &NotEquivError{Expr: src, Row: r, Vars: vs.Pattern(r)}
	default:
		return fmt.Errorf("%s: solver gave up", src)
	}
}
