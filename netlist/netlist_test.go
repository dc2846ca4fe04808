// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package netlist

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/term"
)

func TestSynthFold(t *testing.T) {
	n, err := Synth("A+B+C+D")
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Gates) != 2 {
		t.Fatalf("got %d gates: %v", len(n.Gates), n.Gates)
	}
	mid, out := n.Gates[0], n.Gates[1]
	if mid.Type != OR || len(mid.Inputs) != 3 || mid.Name != "OUT_mid_1" {
		t.Errorf("mid: %s", &mid)
	}
	if out.Name != Out || len(out.Inputs) != 2 || out.Inputs[0] != mid.Output || out.Inputs[1] != "D" {
		t.Errorf("out: %s", &out)
	}
	if err := n.Check(); err != nil {
		t.Error(err)
	}
}

func TestSynthLongTerm(t *testing.T) {
	n, err := Synth("ABCDEFG")
	if err != nil {
		t.Fatal(err)
	}
	// 7 inputs: 3 + (1+2) + (1+2)
	if len(n.Gates) != 3 {
		t.Fatalf("got %v", n.Gates)
	}
	for i := range n.Gates {
		g := &n.Gates[i]
		if g.Type != AND || g.Level != LevelTerm {
			t.Errorf("gate %s", g)
		}
	}
	if n.Gates[2].Output != Out {
		t.Errorf("last gate %s", &n.Gates[2])
	}
	if err := n.Check(); err != nil {
		t.Error(err)
	}
}

func TestSynthShared(t *testing.T) {
	n, err := Synth("A'B + A'C + AB'")
	if err != nil {
		t.Fatal(err)
	}
	if k := n.Count(NOT); k != 2 {
		t.Errorf("got %d inverters, want 2", k)
	}
	for i := range n.Gates {
		g := &n.Gates[i]
		want := LevelTerm
		switch {
		case g.Type == NOT:
			want = LevelNot
		case g.Output == Out:
			want = LevelOut
		}
		if g.Level != want {
			t.Errorf("gate %s: level %d want %d", g, g.Level, want)
		}
	}
	ins := n.Inputs()
	if strings.Join(ins, ",") != "A,B,C" {
		t.Errorf("inputs %v", ins)
	}
}

func TestSynthPOS(t *testing.T) {
	n, err := Synth("(A+B')(A'+B)")
	if err != nil {
		t.Fatal(err)
	}
	if g := n.Gate(Out); g == nil || g.Type != AND {
		t.Fatalf("bad sink %v", g)
	}
	if n.Count(OR) != 2 || n.Count(NOT) != 2 {
		t.Errorf("gates %v", n.Gates)
	}
}

func TestSynthSingle(t *testing.T) {
	n, err := Synth("AB'")
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Gates) != 2 || n.Gates[1].Output != Out || n.Gates[1].Level != LevelTerm {
		t.Errorf("got %v", n.Gates)
	}
	n, err = Synth("A")
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Gates) != 1 || n.Gates[0].Type != OR || n.Gates[0].Level != LevelOut {
		t.Errorf("got %v", n.Gates)
	}
}

func TestSynthEmpty(t *testing.T) {
	for _, s := range []string{"", "0", "1", "A + (", "A'' +"} {
		_, err := Synth(s)
		var e *EmptyNetlistError
		if !errors.As(err, &e) {
			t.Errorf("%q: got %v", s, err)
		}
	}
}

func randExpr(rnd *rand.Rand, vs term.Vars) expr.Expr {
	e := expr.Expr{Form: expr.Form(rnd.Intn(2))}
	nt := 1 + rnd.Intn(6)
	for i := 0; i < nt; i++ {
		var t expr.Term
		for _, v := range vs {
			if rnd.Intn(3) == 0 {
				continue
			}
			t = append(t, expr.Lit{Name: v.Name, Neg: rnd.Intn(2) == 0})
		}
		if len(t) == 0 {
			t = expr.Term{{Name: vs[0].Name}}
		}
		e.Terms = append(e.Terms, t)
	}
	return e
}

func TestSynthEquiv(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	vs := term.NewVars("A", "B", "C", "D", "E")
	ctx := NewCtx()
	for i := 0; i < 200; i++ {
		e := randExpr(rnd, vs)
		n, err := ctx.Synth(e)
		if err != nil {
			t.Fatalf("%s: %s", e, err)
		}
		if err := n.Check(); err != nil {
			t.Fatalf("%s: %s", e, err)
		}
		for r := 0; r < vs.Rows(); r++ {
			a := vs.Assign(r)
			want, _ := e.Eval(a)
			got, err := n.Eval(a)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Errorf("%s row %s: got %t", e, vs.Pattern(r), got)
			}
		}
	}
}

func TestCtxConcurrent(t *testing.T) {
	exprs := []string{"A'B'C' + AB", "(A+B')(C'+D)", "A'B'C'D' + A'BC'D", "X1'X0 + Q1Q0'"}
	want := make([]*Netlist, len(exprs))
	for i, s := range exprs {
		n, err := Synth(s)
		if err != nil {
			t.Fatal(err)
		}
		want[i] = n
	}
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for k := 0; k < 16; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			i := k % len(exprs)
			n, err := NewCtx().Synth(expr.MustParse(exprs[i]))
			if err != nil {
				errs <- err
				return
			}
			if fmt.Sprint(n.Gates) != fmt.Sprint(want[i].Gates) {
				errs <- fmt.Errorf("%s: got %v want %v", exprs[i], n.Gates, want[i].Gates)
			}
		}(k)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestCheck(t *testing.T) {
	bad := []*Netlist{
		{},
		{Gates: []Gate{{Name: "G1", Type: AND, Inputs: []string{"A", "B", "C", "D"}, Output: Out}}},
		{Gates: []Gate{{Name: "G1", Type: NOT, Inputs: []string{"A", "B"}, Output: Out}}},
		{Gates: []Gate{
			{Name: "G1", Type: NOT, Inputs: []string{"A"}, Output: "G1"},
			{Name: "G2", Type: AND, Inputs: []string{"A", "B"}, Output: Out}}},
		{Gates: []Gate{
			{Name: "G2", Type: AND, Inputs: []string{"G1", "B"}, Output: Out},
			{Name: "G1", Type: NOT, Inputs: []string{"A"}, Output: "G1"}}},
		{Gates: []Gate{{Name: "G1", Type: AND, Inputs: []string{"A", "B"}, Output: "G1"}}},
	}
	for i, n := range bad {
		if err := n.Check(); err == nil {
			t.Errorf("%d: no error", i)
		}
	}
}

func TestSynthGateNameVar(t *testing.T) {
	n, err := Synth("G1 + A'")
	if err != nil {
		t.Fatal(err)
	}
	if err := n.Check(); err != nil {
		t.Fatal(err)
	}
	if g := n.Gate("G1"); g != nil {
		t.Errorf("variable G1 shadowed by %s", g)
	}
	if ins := n.Inputs(); len(ins) != 2 || ins[0] != "A" || ins[1] != "G1" {
		t.Errorf("inputs %v", ins)
	}
	for _, g1 := range []bool{false, true} {
		for _, a := range []bool{false, true} {
			v, err := n.Eval(map[string]bool{"G1": g1, "A": a})
			if err != nil {
				t.Fatal(err)
			}
			if v != (g1 || !a) {
				t.Errorf("G1=%t A=%t: got %t", g1, a, v)
			}
		}
	}

	shadowed := &Netlist{Expr: "G1 + A'", Gates: []Gate{
		{Name: "G1", Type: NOT, Inputs: []string{"A"}, Output: "G1", Level: LevelNot},
		{Name: Out, Type: OR, Inputs: []string{"G1", "G1"}, Output: Out, Level: LevelOut}}}
	if err := shadowed.Check(); err == nil {
		t.Errorf("gate output G1 named like a variable accepted")
	}
}

func TestWriteDot(t *testing.T) {
	n, err := Synth("A'B + C")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := n.WriteDot(&buf, "Z"); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	for _, want := range []string{"digraph \"Z\"", "\"A\" -> \"G1\"", "\"C\" -> \"OUT\"", "invtriangle"} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %q in\n%s", want, s)
		}
	}
}

func ExampleSynth() {
	n, _ := Synth("A'B' + AB")
	for i := range n.Gates {
		fmt.Println(&n.Gates[i])
	}
	// Output:
	// G1 = NOT[A] @1
	// G2 = NOT[B] @1
	// G3 = AND[G1 G2] @2
	// G4 = AND[A B] @2
	// OUT = OR[G3 G4] @3
}
