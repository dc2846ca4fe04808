// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Type Set is the defining term assignment of one Boolean function.
//
// If Minterm is true, Terms lists the rows where the function is 1,
// otherwise Terms lists the rows where it is 0.
type Set struct {
	Terms   []int `json:"terms" toml:"terms"`
	Minterm bool  `json:"minterm" toml:"minterm"`
}

// Minterms creates a minterm Set.
func Minterms(ts ...int) Set {
	return Set{Terms: ts, Minterm: true}
}

// Maxterms creates a maxterm Set.
func Maxterms(ts ...int) Set {
	return Set{Terms: ts, Minterm: false}
}

// Type InvalidTermError is returned when a Set has
// an out of range or duplicate index.
type InvalidTermError struct {
	Var   string // name of the defined variable, may be empty
	Index int
	Bits  int
	Dup   bool
}

func (e *InvalidTermError) Error() string {
	pre := "term"
	if e.Var != "" {
		pre = fmt.Sprintf("%s: term", e.Var)
	}
	if e.Dup {
		return fmt.Sprintf("%s %d listed twice", pre, e.Index)
	}
	return fmt.Sprintf("%s %d out of range [0, %d)", pre, e.Index, 1<<uint(e.Bits))
}

// Validate checks that every index of s lies in [0, 2^bits) and
// that no index is repeated.
func (s Set) Validate(bits int) error {
	return s.ValidateFor("", bits)
}

// ValidateFor is Validate with the defined variable named in
// the error.
func (s Set) ValidateFor(nm string, bits int) error {
	n := 1 << uint(bits)
	seen := make(map[int]bool, len(s.Terms))
	for _, t := range s.Terms {
		if t < 0 || t >= n {
			return &InvalidTermError{Var: nm, Index: t, Bits: bits}
		}
		if seen[t] {
			return &InvalidTermError{Var: nm, Index: t, Bits: bits, Dup: true}
		}
		seen[t] = true
	}
	return nil
}

// Has returns whether row i is listed in s.
func (s Set) Has(i int) bool {
	for _, t := range s.Terms {
		if t == i {
			return true
		}
	}
	return false
}

// Value returns the value of the function defined by s at row i.
func (s Set) Value(i int) bool {
	return s.Has(i) == s.Minterm
}

// Sorted returns a copy of s with the terms in increasing order.
func (s Set) Sorted() Set {
	ts := make([]int, len(s.Terms))
	copy(ts, s.Terms)
	sort.Ints(ts)
	return Set{Terms: ts, Minterm: s.Minterm}
}

// Minterms returns the sorted rows over bits variables where the
// function defined by s is 1.
func (s Set) Minterms(bits int) []int {
	if s.Minterm {
		return s.Sorted().Terms
	}
	return s.complement(bits)
}

// Maxterms returns the sorted rows over bits variables where the
// function defined by s is 0.
func (s Set) Maxterms(bits int) []int {
	if !s.Minterm {
		return s.Sorted().Terms
	}
	return s.complement(bits)
}

func (s Set) complement(bits int) []int {
	n := 1 << uint(bits)
	in := make([]bool, n)
	for _, t := range s.Terms {
		if t >= 0 && t < n {
			in[t] = true
		}
	}
	res := make([]int, 0, n-len(s.Terms))
	for i := 0; i < n; i++ {
		if !in[i] {
			res = append(res, i)
		}
	}
	return res
}

// String gives the conventional sigma/pi notation, e.g. "m(0,3)" or
// "M(1,2)".
func (s Set) String() string {
	parts := make([]string, len(s.Terms))
	for i, t := range s.Terms {
		parts[i] = strconv.Itoa(t)
	}
	c := "M"
	if s.Minterm {
		c = "m"
	}
	return fmt.Sprintf("%s(%s)", c, strings.Join(parts, ","))
}
