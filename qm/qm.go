// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package qm

import (
	"sort"
	"strconv"
	"strings"

	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/term"
)

// Dash marks an eliminated variable in an Implicant pattern.
const Dash = '-'

// Implicant is a cube over {0,1,-} with the minterms it covers.
type Implicant struct {
	Pattern []byte // most significant first
	Covers  []int  // sorted
	Used    bool   // combined in the pass that examined it
}

func (m *Implicant) String() string {
	return string(m.Pattern)
}

// Ones counts the 1s of the pattern, ignoring dashes.
func (m *Implicant) Ones() int {
	n := 0
	for _, c := range m.Pattern {
		if c == '1' {
			n++
		}
	}
	return n
}

// Dashes counts the eliminated variables.
func (m *Implicant) Dashes() int {
	n := 0
	for _, c := range m.Pattern {
		if c == Dash {
			n++
		}
	}
	return n
}

func (m *Implicant) key() string {
	var sb strings.Builder
	sb.Write(m.Pattern)
	for _, c := range m.Covers {
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

func newMinterm(r, n int) *Implicant {
	return &Implicant{
		Pattern: []byte(term.Pattern(r, n)),
		Covers:  []int{r}}
}

// combine returns the merge of a and b if they differ in exactly one
// position which is determined in both.
func combine(a, b *Implicant) (*Implicant, bool) {
	at := -1
	for i := range a.Pattern {
		if a.Pattern[i] == b.Pattern[i] {
			continue
		}
		if at != -1 || a.Pattern[i] == Dash || b.Pattern[i] == Dash {
			return nil, false
		}
		at = i
	}
	if at == -1 {
		return nil, false
	}
	p := make([]byte, len(a.Pattern))
	copy(p, a.Pattern)
	p[at] = Dash
	cs := make([]int, 0, len(a.Covers)+len(b.Covers))
	cs = append(cs, a.Covers...)
	cs = append(cs, b.Covers...)
	sort.Ints(cs)
	return &Implicant{Pattern: p, Covers: cs}, true
}

// groups partitions ms by number of ones.
func groups(ms []*Implicant, n int) [][]*Implicant {
	gs := make([][]*Implicant, n+1)
	for _, m := range ms {
		w := m.Ones()
		gs[w] = append(gs[w], m)
	}
	return gs
}

func dedup(ms []*Implicant) []*Implicant {
	seen := make(map[string]bool, len(ms))
	res := ms[:0]
	for _, m := range ms {
		k := m.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, m)
	}
	return res
}

// Primes returns the prime implicants of the function over n variables
// whose minterms are ms.
func Primes(ms []int, n int) ([]Implicant, error) {
	if err := term.Minterms(ms...).Validate(n); err != nil {
		return nil, err
	}
	member := make([]bool, 1<<uint(n))
	for _, r := range ms {
		member[r] = true
	}
	var cur []*Implicant
	for r, in := range member {
		if in {
			cur = append(cur, newMinterm(r, n))
		}
	}
	var primes []*Implicant
	for len(cur) > 0 {
		gs := groups(cur, n)
		var next []*Implicant
		combined := false
		for w := 0; w < n; w++ {
			for _, a := range gs[w] {
				for _, b := range gs[w+1] {
					c, ok := combine(a, b)
					if !ok {
						continue
					}
					a.Used, b.Used = true, true
					combined = true
					next = append(next, c)
				}
			}
		}
		for _, m := range cur {
			if !m.Used {
				primes = append(primes, m)
			}
		}
		if !combined {
			break
		}
		cur = dedup(next)
	}
	primes = dedup(primes)
	res := make([]Implicant, len(primes))
	for i, m := range primes {
		res[i] = *m
	}
	return res, nil
}

// Term converts an implicant pattern over vs to a product term.  Dashed
// positions are left out.
func Term(m *Implicant, vs term.Vars) expr.Term {
	t := make(expr.Term, 0, len(vs))
	for i, c := range m.Pattern {
		switch c {
		case '1':
			t = append(t, expr.Lit{Name: vs[i].Name})
		case '0':
			t = append(t, expr.Lit{Name: vs[i].Name, Neg: true})
		}
	}
	return t
}

// Expr converts prime implicants over vs to a sum of products.
func Expr(ps []Implicant, vs term.Vars) expr.Expr {
	e := expr.Expr{Form: expr.SOP}
	for i := range ps {
		if ps[i].Dashes() == len(ps[i].Pattern) {
			return expr.Const(true)
		}
		e.Terms = append(e.Terms, Term(&ps[i], vs))
	}
	return e
}

// Minimize returns the sum of the prime implicants of the function defined
// by s over vs.  Maxterm sets are complemented first, so the result is
// always a sum of products.
func Minimize(s term.Set, vs term.Vars) (expr.Expr, error) {
	if err := s.Validate(vs.Bits()); err != nil {
		return expr.Expr{}, err
	}
	ps, err := Primes(s.Minterms(vs.Bits()), vs.Bits())
	if err != nil {
		return expr.Expr{}, err
	}
	return Expr(ps, vs), nil
}
