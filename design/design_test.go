// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package design

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/netlist"
	"github.com/go-air/excite/term"
)

// counter is a 2 bit counter incrementing on X0 whose output is set in
// state 3.
func counter(t *testing.T, ff fsm.FlipFlop) *Problem {
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
	require.NoError(t, err)
	return &Problem{Config: c, Terms: d.Terms}
}

func TestRun(t *testing.T) {
	p := counter(t, fsm.D{})
	res, err := Run(context.Background(), p, &Options{Path: Both, Verify: true})
	require.NoError(t, err)
	require.NotNil(t, res.Table)
	require.Len(t, res.Equations, 3)
	assert.Equal(t, []string{"D1", "D0", "Z"},
		[]string{res.Equations[0].Name, res.Equations[1].Name, res.Equations[2].Name})
	assert.Empty(t, res.Failed())

	z := res.Equation("Z")
	require.NotNil(t, z)
	require.NotNil(t, z.Canonical)
	require.NotNil(t, z.Minimized)
	assert.Equal(t, "Q1Q0X0' + Q1Q0X0", z.Canonical.Expr.String())
	assert.Equal(t, "Q1Q0", z.Minimized.Expr.String())
	assert.Equal(t, []string{"11-"}, z.Minimized.Primes)

	n := z.Minimized.Netlist
	require.NotNil(t, n)
	require.Len(t, n.Gates, 1)
	assert.Equal(t, netlist.AND, n.Gates[0].Type)
	assert.Equal(t, netlist.Out, n.Gates[0].Output)
	assert.Less(t, res.Gates(Minimized), res.Gates(Canonical))
}

func TestRunPaths(t *testing.T) {
	p := counter(t, fsm.T{})
	for _, path := range []Path{Canonical, Minimized} {
		res, err := Run(context.Background(), p, &Options{Path: path})
		require.NoError(t, err)
		for _, eq := range res.Equations {
			assert.Equal(t, path == Canonical, eq.Canonical != nil, eq.Name)
			assert.Equal(t, path == Minimized, eq.Minimized != nil, eq.Name)
		}
	}
}

func TestRunLocalFailure(t *testing.T) {
	p := counter(t, fsm.JK{})
	p.Terms["K0"] = term.Minterms(1, 99)
	delete(p.Terms, "Z")
	res, err := Run(context.Background(), p, &Options{Path: Both, Verify: true})
	require.NoError(t, err)
	assert.Nil(t, res.Table)
	require.Len(t, res.Failed(), 2)

	var ie *term.InvalidTermError
	assert.True(t, errors.As(res.Equation("K0").Err, &ie))
	var me *fsm.MissingAssignmentError
	assert.True(t, errors.As(res.Equation("Z").Err, &me))
	for _, nm := range []string{"J1", "K1", "J0"} {
		eq := res.Equation(nm)
		assert.NoError(t, eq.Err, nm)
		assert.NotNil(t, eq.Canonical, nm)
	}
	_, err = res.Machine(Canonical)
	assert.Error(t, err)
}

func TestRunConstant(t *testing.T) {
	p := counter(t, fsm.D{})
	all := make([]int, p.Config.Rows())
	for i := range all {
		all[i] = i
	}
	p.Terms["Z"] = term.Minterms(all...)
	res, err := Run(context.Background(), p, &Options{Path: Both, Verify: true})
	require.NoError(t, err)
	z := res.Equation("Z")
	require.NoError(t, z.Err)
	assert.NotNil(t, z.Canonical.Netlist)
	assert.Nil(t, z.Minimized.Netlist)
	assert.Equal(t, "1", z.Minimized.Expr.String())
}

func TestRunBadConfig(t *testing.T) {
	p := counter(t, fsm.D{})
	p.Config.NumFlipFlops = 4
	_, err := Run(context.Background(), p, nil)
	assert.True(t, errors.Is(err, fsm.ErrConfig))
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, counter(t, fsm.D{}), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunDeterministic(t *testing.T) {
	p := counter(t, fsm.JK{})
	a, err := Run(context.Background(), p, &Options{Path: Both, Workers: 1})
	require.NoError(t, err)
	b, err := Run(context.Background(), p, &Options{Path: Both, Workers: 8})
	require.NoError(t, err)
	if d := cmp.Diff(a.Equations, b.Equations); d != "" {
		t.Errorf("results differ (-1 worker +8 workers):\n%s", d)
	}
}

func TestResultMachine(t *testing.T) {
	res, err := Run(context.Background(), counter(t, fsm.JK{}), &Options{Path: Minimized})
	require.NoError(t, err)
	m, err := res.Machine(Minimized)
	require.NoError(t, err)
	sts, outs := m.Simulate([]int{1, 0, 1, 1, 1})
	assert.Equal(t, []int{1, 1, 2, 3, 0}, sts)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, outs)
}

func TestResultJSON(t *testing.T) {
	res, err := Run(context.Background(), counter(t, fsm.D{}), &Options{Path: Minimized})
	require.NoError(t, err)
	d, err := json.Marshal(res)
	require.NoError(t, err)
	var v struct {
		Path      string `json:"path"`
		Equations []struct {
			Name      string `json:"name"`
			Minimized struct {
				Expr string `json:"expr"`
			} `json:"minimized"`
		} `json:"equations"`
	}
	require.NoError(t, json.Unmarshal(d, &v))
	assert.Equal(t, "minimized", v.Path)
	require.Len(t, v.Equations, 3)
	assert.Equal(t, "Q1Q0", v.Equations[2].Minimized.Expr)
}

func TestParsePath(t *testing.T) {
	for _, s := range []string{"canonical", "minimized", "both"} {
		p, err := ParsePath(s)
		require.NoError(t, err)
		assert.Equal(t, s, p.String())
	}
	_, err := ParsePath("fast")
	assert.Error(t, err)
}
