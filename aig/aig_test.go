// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aig

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/netlist"
	"github.com/go-air/excite/qm"
	"github.com/go-air/excite/term"
)

func randSet(rnd *rand.Rand, bits int) term.Set {
	s := term.Set{Minterm: rnd.Intn(2) == 0}
	for r := 0; r < 1<<uint(bits); r++ {
		if rnd.Intn(2) == 0 {
			s.Terms = append(s.Terms, r)
		}
	}
	return s
}

func TestEquiv(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	vs := term.NewVars("A", "B", "C", "D")
	for i := 0; i < 50; i++ {
		s := randSet(rnd, vs.Bits())
		ce, err := expr.Canonical(s, vs)
		if err != nil {
			t.Fatal(err)
		}
		me, err := qm.Minimize(s, vs)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range []expr.Expr{ce, me} {
			if err := EquivExpr(e, s, vs); err != nil {
				t.Errorf("%s: %s", s, err)
			}
			if _, isConst := e.IsConst(); isConst {
				continue
			}
			n, err := netlist.NewCtx().Synth(e)
			if err != nil {
				t.Fatal(err)
			}
			if err := Equiv(n, s, vs); err != nil {
				t.Errorf("%s: %s", s, err)
			}
		}
	}
}

func TestEquivWitness(t *testing.T) {
	vs := term.NewVars("A", "B")
	n, err := netlist.Synth("A")
	if err != nil {
		t.Fatal(err)
	}
	err = Equiv(n, term.Minterms(3), vs)
	var ne *NotEquivError
	if !errors.As(err, &ne) {
		t.Fatalf("got %v", err)
	}
	if ne.Row != 2 || ne.Vars != "10" {
		t.Errorf("witness %d %s", ne.Row, ne.Vars)
	}
	n, _ = netlist.Synth("AC")
	if err := Equiv(n, term.Minterms(3), vs); err == nil {
		t.Errorf("foreign input accepted")
	}
}

func TestMachineVerify(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, ff := range []fsm.FlipFlop{fsm.D{}, fsm.T{}, fsm.JK{}} {
		for _, mt := range []fsm.Machine{fsm.Mealy, fsm.Moore} {
			c := fsm.Config{FlipFlop: ff, NumFlipFlops: 2 + rnd.Intn(2), NumInputs: 1 + rnd.Intn(2), Machine: mt}
			assign := make(map[string]term.Set)
			for _, eq := range c.Equations() {
				assign[eq.Name] = randSet(rnd, eq.Vars.Bits())
			}
			tab, err := fsm.Build(c, assign)
			if err != nil {
				t.Fatal(err)
			}
			m, err := MachineFor(c, assign)
			if err != nil {
				t.Fatal(err)
			}
			if err := m.Verify(tab); err != nil {
				t.Errorf("%s: %s", c, err)
			}
		}
	}
}

func counter(t *testing.T, ff fsm.FlipFlop) (fsm.Config, map[string]term.Set) {
	c := fsm.Config{FlipFlop: ff, NumFlipFlops: 2, NumInputs: 1}
	next := make([]int, c.Rows())
	out := make([]int, c.Rows())
	for r := range next {
		st, in := r>>1, r&1
		next[r] = (st + in) % 4
		if st == 3 {
			out[r] = 1
		}
	}
	d, err := fsm.Derive(c, next, out)
	if err != nil {
		t.Fatal(err)
	}
	return c, d.Terms
}

func TestMachineSimulate(t *testing.T) {
	for _, ff := range []fsm.FlipFlop{fsm.D{}, fsm.T{}, fsm.JK{}} {
		c, assign := counter(t, ff)
		m, err := MachineFor(c, assign)
		if err != nil {
			t.Fatal(err)
		}
		sts, outs := m.Simulate([]int{1, 1, 1, 0, 1})
		wantSts, wantOuts := []int{1, 2, 3, 3, 0}, []int{0, 0, 0, 1, 1}
		for i := range sts {
			if sts[i] != wantSts[i] || outs[i] != wantOuts[i] {
				t.Errorf("%s: step %d got %d/%d want %d/%d", ff, i, sts[i], outs[i], wantSts[i], wantOuts[i])
			}
		}
		nxt, out, err := m.Step(3, 1)
		if err != nil {
			t.Fatal(err)
		}
		if nxt != 0 || out != 1 {
			t.Errorf("%s: step 3/1 gave %d/%d", ff, nxt, out)
		}
	}
}

func TestNewMachineMissing(t *testing.T) {
	c := fsm.Config{FlipFlop: fsm.D{}, NumFlipFlops: 2, NumInputs: 1}
	_, err := NewMachine(c, map[string]Func{})
	var me *fsm.MissingAssignmentError
	if !errors.As(err, &me) || me.Name != "D1" {
		t.Errorf("got %v", err)
	}
}

func TestNewMachineForeignInput(t *testing.T) {
	c := fsm.Config{FlipFlop: fsm.D{}, NumFlipFlops: 2, NumInputs: 1}
	fs := map[string]Func{
		"D1": {Expr: expr.MustParse("W")},
		"D0": {Expr: expr.Const(false)},
		"Z":  {Expr: expr.Const(false)}}
	_, err := NewMachine(c, fs)
	if err == nil || !strings.HasPrefix(err.Error(), "D1: input W") {
		t.Errorf("got %v", err)
	}
}

func TestWriteAiger(t *testing.T) {
	c, assign := counter(t, fsm.JK{})
	m, err := MachineFor(c, assign)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := m.WriteAiger(&buf, false); err != nil {
		t.Fatal(err)
	}
	s := buf.String()
	if !strings.HasPrefix(s, "aag ") {
		t.Errorf("bad header: %s", s)
	}
	for _, sym := range []string{"\ni0 X0\n", "\nl0 Q1\n", "\nl1 Q0\n", "\no0 Z\n"} {
		if !strings.Contains(s, sym) {
			t.Errorf("missing symbol %q in\n%s", sym, s)
		}
	}
	buf.Reset()
	if err := m.WriteAiger(&buf, true); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "aig ") {
		t.Errorf("bad binary header")
	}
}
