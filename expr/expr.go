// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import (
	"fmt"
	"strings"
)

// Form is the shape of an Expr.
type Form int

const (
	SOP Form = iota // sum of products
	POS             // product of sums
)

func (f Form) String() string {
	switch f {
	case SOP:
		return "sop"
	case POS:
		return "pos"
	default:
		return fmt.Sprintf("form(%d)", int(f))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Form) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Form) UnmarshalText(d []byte) error {
	switch string(d) {
	case "sop":
		*f = SOP
	case "pos":
		*f = POS
	default:
		return fmt.Errorf("unknown form %q", d)
	}
	return nil
}

// Lit is a variable or its negation.
type Lit struct {
	Name string
	Neg  bool
}

func (m Lit) String() string {
	if m.Neg {
		return m.Name + "'"
	}
	return m.Name
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return Lit{Name: m.Name, Neg: !m.Neg}
}

// Term is a literal term: a product in a SOP, a sum in a POS.
type Term []Lit

// Expr is a two level expression.
//
// A SOP with no terms is 0 and a SOP containing an empty product is 1.
// Dually a POS with no terms is 1 and a POS containing an empty sum is 0.
type Expr struct {
	Form  Form
	Terms []Term
}

// Const returns the SOP constant v.
func Const(v bool) Expr {
	if v {
		return Expr{Form: SOP, Terms: []Term{{}}}
	}
	return Expr{Form: SOP}
}

// IsConst returns the value of e and true if e is a constant by its
// shape.  Tautologies such as A + A' are not detected.
func (e Expr) IsConst() (v, ok bool) {
	for _, t := range e.Terms {
		if len(t) == 0 {
			return e.Form == SOP, true
		}
	}
	if len(e.Terms) == 0 {
		return e.Form == POS, true
	}
	return false, false
}

// Len returns the number of literals in e.
func (e Expr) Len() int {
	n := 0
	for _, t := range e.Terms {
		n += len(t)
	}
	return n
}

func (e Expr) String() string {
	if v, ok := e.IsConst(); ok {
		if v {
			return "1"
		}
		return "0"
	}
	var sb strings.Builder
	for i, t := range e.Terms {
		switch e.Form {
		case SOP:
			if i > 0 {
				sb.WriteString(" + ")
			}
			for _, m := range t {
				sb.WriteString(m.String())
			}
		case POS:
			sb.WriteByte('(')
			for j, m := range t {
				if j > 0 {
					sb.WriteByte('+')
				}
				sb.WriteString(m.String())
			}
			sb.WriteByte(')')
		}
	}
	return sb.String()
}

// MarshalText implements encoding.TextMarshaler using the string form.
func (e Expr) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with Parse.
func (e *Expr) UnmarshalText(d []byte) error {
	p, err := Parse(string(d))
	if err != nil {
		return err
	}
	*e = p
	return nil
}

// Names returns the variable names occurring in e in order of first
// occurrence.
func (e Expr) Names() []string {
	seen := make(map[string]bool)
	var res []string
	for _, t := range e.Terms {
		for _, m := range t {
			if !seen[m.Name] {
				seen[m.Name] = true
				res = append(res, m.Name)
			}
		}
	}
	return res
}
