// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import (
	"errors"
	"testing"
)

func TestParseSOP(t *testing.T) {
	e, err := Parse("Q1'Q0X0 + Q1 X1'")
	if err != nil {
		t.Fatal(err)
	}
	if e.Form != SOP || len(e.Terms) != 2 || len(e.Terms[0]) != 3 || len(e.Terms[1]) != 2 {
		t.Fatalf("bad shape %#v", e)
	}
	if !e.Terms[0][0].Neg || e.Terms[0][1].Neg || !e.Terms[1][1].Neg {
		t.Errorf("negation marks lost: %s", e)
	}
	if e.String() != "Q1'Q0X0 + Q1X1'" {
		t.Errorf("got %s", e)
	}
}

func TestParsePOS(t *testing.T) {
	e, err := Parse("(A + B')(C) * (A'+D)")
	if err != nil {
		t.Fatal(err)
	}
	if e.Form != POS || len(e.Terms) != 3 {
		t.Fatalf("bad shape %#v", e)
	}
	if e.String() != "(A+B')(C)(A'+D)" {
		t.Errorf("got %s", e)
	}
}

func TestParseConst(t *testing.T) {
	for s, want := range map[string]bool{"0": false, " 1 ": true} {
		e, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		v, ok := e.IsConst()
		if !ok || v != want {
			t.Errorf("%q: %v %v", s, v, ok)
		}
	}
	e, _ := Parse("")
	if v, ok := e.IsConst(); !ok || v || len(e.Terms) != 0 {
		t.Errorf("empty string")
	}
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"A''", "A +", "(A+B", "A + (B)", "A$", "1A", "+A", "(A)B"} {
		_, err := Parse(s)
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: expected syntax error, got %v", s, err)
		}
	}
}

func TestEval(t *testing.T) {
	e := MustParse("AB' + C")
	vals := map[string]bool{"A": true, "B": false, "C": false}
	if v, _ := e.Eval(vals); !v {
		t.Errorf("AB' should hold")
	}
	vals["B"] = true
	if v, _ := e.Eval(vals); v {
		t.Errorf("should be false")
	}
	if _, err := e.Eval(map[string]bool{"A": true}); err == nil {
		t.Errorf("missing value not reported")
	}
	p := MustParse("(A+B)(C')")
	if v, _ := p.Eval(map[string]bool{"A": false, "B": true, "C": false}); !v {
		t.Errorf("pos eval")
	}
}

func TestNames(t *testing.T) {
	ns := MustParse("B'A + AC").Names()
	if len(ns) != 3 || ns[0] != "B" || ns[1] != "A" || ns[2] != "C" {
		t.Errorf("names %v", ns)
	}
}
