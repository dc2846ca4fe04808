// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"context"
	"math/rand"
	"testing"

	"github.com/go-air/excite/design"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/term"
)

func TestSeed(t *testing.T) {
	Seed(7)
	a := Set(5)
	Seed(7)
	b := Set(5)
	if a.String() != b.String() || a.Minterm != b.Minterm {
		t.Errorf("seeded sets differ: %s %s", a, b)
	}
	if err := a.Validate(5); err != nil {
		t.Error(err)
	}
}

func TestProblem(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		c := Configr(r)
		if err := c.Validate(); err != nil {
			t.Fatal(err)
		}
		p := Problemr(c, r)
		if err := fsm.Check(c, p.Terms); err != nil {
			t.Errorf("%s: %s", c, err)
		}
	}
}

func TestCounter(t *testing.T) {
	for _, ff := range []fsm.FlipFlop{fsm.D{}, fsm.T{}, fsm.JK{}} {
		c := fsm.Config{FlipFlop: ff, NumFlipFlops: 3, NumInputs: 2, Machine: fsm.Moore}
		p, err := Counter(c)
		if err != nil {
			t.Fatal(err)
		}
		tab, err := fsm.Build(c, p.Terms)
		if err != nil {
			t.Fatal(err)
		}
		for _, row := range tab.Rows {
			st := row.StateCode()
			in := row.Index & 3
			if row.NextCode() != (st+in)%8 {
				t.Errorf("%s row %d: next %d", ff, row.Index, row.NextCode())
			}
			if (row.Output == 1) != (st == 7) {
				t.Errorf("%s row %d: output %d", ff, row.Index, row.Output)
			}
		}
	}
}

func TestRandomRun(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 10; i++ {
		p := Problemr(Configr(r), r)
		res, err := design.Run(context.Background(), p, &design.Options{Path: design.Both, Verify: true})
		if err != nil {
			t.Fatalf("%s: %s", p.Config, err)
		}
		if fs := res.Failed(); len(fs) != 0 {
			t.Errorf("%s: %s failed: %s", p.Config, fs[0].Name, fs[0].Err)
		}
	}
}

func TestExpr(t *testing.T) {
	vs := term.NewVars("A", "B", "C")
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		e := Exprr(vs, 4, r)
		if len(e.Terms) == 0 || len(e.Terms) > 4 {
			t.Fatalf("%d terms", len(e.Terms))
		}
		if _, err := e.Truth(vs); err != nil {
			t.Error(err)
		}
	}
}

func TestExprNoTerms(t *testing.T) {
	vs := term.NewVars("A", "B")
	r := rand.New(rand.NewSource(3))
	for _, max := range []int{0, -2} {
		if e := Exprr(vs, max, r); len(e.Terms) != 1 {
			t.Errorf("max %d: %d terms", max, len(e.Terms))
		}
	}
}
