// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import (
	"fmt"

	"github.com/go-air/excite/term"
)

// Eval evaluates e under vals.  Every variable of e must be
// present in vals.
func (e Expr) Eval(vals map[string]bool) (bool, error) {
	for _, t := range e.Terms {
		v, err := evalTerm(t, e.Form, vals)
		if err != nil {
			return false, err
		}
		switch {
		case e.Form == SOP && v:
			return true, nil
		case e.Form == POS && !v:
			return false, nil
		}
	}
	return e.Form == POS, nil
}

func evalTerm(t Term, f Form, vals map[string]bool) (bool, error) {
	// products are and, sums are or
	res := f == SOP
	for _, m := range t {
		v, ok := vals[m.Name]
		if !ok {
			return false, fmt.Errorf("no value for %s", m.Name)
		}
		if m.Neg {
			v = !v
		}
		if f == SOP {
			res = res && v
		} else {
			res = res || v
		}
	}
	return res, nil
}

// Truth gives the truth table of e over vs, indexed by row.
func (e Expr) Truth(vs term.Vars) ([]bool, error) {
	res := make([]bool, vs.Rows())
	for r := range res {
		v, err := e.Eval(vs.Assign(r))
		if err != nil {
			return nil, err
		}
		res[r] = v
	}
	return res, nil
}
