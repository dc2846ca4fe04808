// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/term"
)

var rnd = rand.New(rand.NewSource(1))

func randSet(n int, minterm bool) term.Set {
	var ts []int
	for r := 0; r < 1<<uint(n); r++ {
		if rnd.Intn(2) == 1 {
			ts = append(ts, r)
		}
	}
	return term.Set{Terms: ts, Minterm: minterm}
}

func TestCanonicalRoundTrip(t *testing.T) {
	for n := 1; n <= 5; n++ {
		vs := term.NewVars(term.Seq("V", n)...)
		for i := 0; i < 20; i++ {
			for _, mt := range []bool{true, false} {
				s := randSet(n, mt)
				e, err := expr.Canonical(s, vs)
				if err != nil {
					t.Fatal(err)
				}
				tt, err := e.Truth(vs)
				if err != nil {
					t.Fatal(err)
				}
				for r, v := range tt {
					if v != s.Value(r) {
						t.Errorf("%s over %d vars: %s wrong at row %d", s, n, e, r)
					}
				}
				// the string form is stable through Parse
				p, err := expr.Parse(e.String())
				if err != nil {
					t.Fatalf("reparse %q: %s", e, err)
				}
				if p.String() != e.String() {
					t.Errorf("reparse %q gave %q", e, p)
				}
			}
		}
	}
}

func TestCanonicalEmpty(t *testing.T) {
	vs := term.NewVars("A", "B")
	e, _ := expr.Canonical(term.Minterms(), vs)
	if e.String() != "0" {
		t.Errorf("empty minterms: %q", e)
	}
	e, _ = expr.Canonical(term.Maxterms(), vs)
	if e.String() != "1" {
		t.Errorf("empty maxterms: %q", e)
	}
}

func TestCanonicalInvalid(t *testing.T) {
	vs := term.NewVars("A", "B")
	_, err := expr.Canonical(term.Minterms(0, 4), vs)
	var ite *term.InvalidTermError
	if !errors.As(err, &ite) {
		t.Errorf("expected InvalidTermError, got %v", err)
	}
}

func TestCanonicalPOS(t *testing.T) {
	vs := term.NewVars("A", "B")
	e, err := expr.Canonical(term.Maxterms(1, 2), vs)
	if err != nil {
		t.Fatal(err)
	}
	if e.String() != "(A+B')(A'+B)" {
		t.Errorf("got %s", e)
	}
}

func TestCanonicalMooreVars(t *testing.T) {
	// a moore output over the state bits alone
	vs := term.NewVars("Q1", "Q0")
	e, _ := expr.Canonical(term.Minterms(3), vs)
	if e.String() != "Q1Q0" {
		t.Errorf("got %s", e)
	}
}

func ExampleCanonical() {
	vs := term.NewVars("A", "B")
	e, _ := expr.Canonical(term.Minterms(0, 3), vs)
	fmt.Println(e)
	// Output: A'B' + AB
}
