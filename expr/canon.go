// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import "github.com/go-air/excite/term"

// Canonical builds the canonical expression of s over vs: a sum of
// minterm products if s lists minterms, otherwise a product of maxterm
// sums.
//
// s is validated against len(vs) bits before any bit is read.  With no
// terms, the result is the constant 0 for minterms and 1 for maxterms.
func Canonical(s term.Set, vs term.Vars) (Expr, error) {
	if err := s.Validate(vs.Bits()); err != nil {
		return Expr{}, err
	}
	s = s.Sorted()
	e := Expr{Form: SOP, Terms: make([]Term, 0, len(s.Terms))}
	if !s.Minterm {
		e.Form = POS
	}
	for _, r := range s.Terms {
		e.Terms = append(e.Terms, RowTerm(r, vs, e.Form))
	}
	return e, nil
}

// RowTerm gives the literal term of row r over vs.  For SOP this is the
// minterm product, which is true exactly at r; for POS it is the maxterm
// sum, which is false exactly at r.
func RowTerm(r int, vs term.Vars, f Form) Term {
	t := make(Term, len(vs))
	for i, v := range vs {
		one := v.Bit(r) == 1
		if f == SOP {
			t[i] = Lit{Name: v.Name, Neg: !one}
		} else {
			t[i] = Lit{Name: v.Name, Neg: one}
		}
	}
	return t
}
