// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/excite/design"
	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/term"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

// Seed reseeds the package source.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Set generates a random term set over bits variables.  Each row is a
// term with probability one half, and the set is a minterm or a maxterm
// set with probability one half.
func Set(bits int) term.Set {
	mu.Lock() // for package rng
	defer mu.Unlock()
	return Setr(bits, rng)
}

// Setr is like Set using r.
func Setr(bits int, r *rand.Rand) term.Set {
	s := term.Set{Minterm: r.Intn(2) == 0, Terms: []int{}}
	for i := 0; i < 1<<uint(bits); i++ {
		if r.Intn(2) == 0 {
			s.Terms = append(s.Terms, i)
		}
	}
	return s
}

// Config generates a random supported machine configuration.
func Config() fsm.Config {
	mu.Lock()
	defer mu.Unlock()
	return Configr(rng)
}

// Configr is like Config using r.
func Configr(r *rand.Rand) fsm.Config {
	ffs := []fsm.FlipFlop{fsm.D{}, fsm.T{}, fsm.JK{}}
	return fsm.Config{
		FlipFlop:     ffs[r.Intn(len(ffs))],
		NumFlipFlops: 2 + r.Intn(2),
		NumInputs:    1 + r.Intn(2),
		Machine:      fsm.Machine(r.Intn(2))}
}

// Problem generates a random term set for every equation of c.
func Problem(c fsm.Config) *design.Problem {
	mu.Lock()
	defer mu.Unlock()
	return Problemr(c, rng)
}

// Problemr is like Problem using r.
func Problemr(c fsm.Config, r *rand.Rand) *design.Problem {
	p := &design.Problem{Config: c, Terms: make(map[string]term.Set)}
	for _, eq := range c.Equations() {
		p.Terms[eq.Name] = Setr(eq.Vars.Bits(), r)
	}
	return p
}

// Counter generates the problem of an up counter over the states of c
// which advances by the input code and whose output is set in the last
// state.
func Counter(c fsm.Config) (*design.Problem, error) {
	next := make([]int, c.Rows())
	out := make([]int, c.Rows())
	nin := uint(c.NumInputs)
	for i := range next {
		st, in := i>>nin, i&(1<<nin-1)
		next[i] = (st + in) % c.States()
		if st == c.States()-1 {
			out[i] = 1
		}
	}
	d, err := fsm.Derive(c, next, out)
	if err != nil {
		return nil, err
	}
	return &design.Problem{Config: c, Terms: d.Terms}, nil
}

// Expr generates a random expression over the non-empty vs with at most
// maxTerms terms, none of them empty.  maxTerms below 1 is taken as 1.
func Expr(vs term.Vars, maxTerms int) expr.Expr {
	mu.Lock()
	defer mu.Unlock()
	return Exprr(vs, maxTerms, rng)
}

// Exprr is like Expr using r.
func Exprr(vs term.Vars, maxTerms int, r *rand.Rand) expr.Expr {
	if maxTerms < 1 {
		maxTerms = 1
	}
	e := expr.Expr{Form: expr.Form(r.Intn(2))}
	nt := 1 + r.Intn(maxTerms)
	for i := 0; i < nt; i++ {
		var t expr.Term
		for _, v := range vs {
			if r.Intn(3) == 0 {
				continue
			}
			t = append(t, expr.Lit{Name: v.Name, Neg: r.Intn(2) == 0})
		}
		if len(t) == 0 {
			v := vs[r.Intn(len(vs))]
			t = expr.Term{{Name: v.Name, Neg: r.Intn(2) == 0}}
		}
		e.Terms = append(e.Terms, t)
	}
	return e
}
