// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"fmt"
	"strings"
)

// Type Var is a named Boolean signal with a fixed bit position.
type Var struct {
	Name string `json:"name"`
	Pos  int    `json:"pos"` // bit significance, 0 is least significant
}

func (v Var) String() string {
	return fmt.Sprintf("%s@%d", v.Name, v.Pos)
}

// Bit returns the value of v in row i, 0 or 1.
func (v Var) Bit(i int) int {
	return (i >> uint(v.Pos)) & 1
}

// Type Vars is an ordered sequence of variables, most
// significant first.
type Vars []Var

// NewVars creates a Vars from names, most significant first.
func NewVars(names ...string) Vars {
	n := len(names)
	vs := make(Vars, n)
	for i, nm := range names {
		vs[i] = Var{Name: nm, Pos: n - 1 - i}
	}
	return vs
}

// Seq creates the names prefix<n-1>, ..., prefix0.
func Seq(prefix string, n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("%s%d", prefix, n-1-i)
	}
	return res
}

// Bits returns the number of variables, which is the width
// of a row index over vs.
func (vs Vars) Bits() int {
	return len(vs)
}

// Rows returns 2^len(vs).
func (vs Vars) Rows() int {
	return 1 << uint(len(vs))
}

// Names returns the variable names in order.
func (vs Vars) Names() []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = v.Name
	}
	return res
}

// Index returns the position in vs of the variable named
// nm, or -1 if there is none.
func (vs Vars) Index(nm string) int {
	for i, v := range vs {
		if v.Name == nm {
			return i
		}
	}
	return -1
}

// Row computes the row index of an assignment.  vals maps
// variable names to values; missing names are false.
func (vs Vars) Row(vals map[string]bool) int {
	r := 0
	for _, v := range vs {
		if vals[v.Name] {
			r |= 1 << uint(v.Pos)
		}
	}
	return r
}

// Assign is the inverse of Row.
func (vs Vars) Assign(row int) map[string]bool {
	res := make(map[string]bool, len(vs))
	for _, v := range vs {
		res[v.Name] = v.Bit(row) == 1
	}
	return res
}

// Pattern returns the len(vs)-wide binary representation of
// row, most significant first.
func (vs Vars) Pattern(row int) string {
	return Pattern(row, len(vs))
}

// Valid checks that positions are consistent with the order
// and names are unique.
func (vs Vars) Valid() error {
	seen := make(map[string]bool, len(vs))
	for i, v := range vs {
		if v.Pos != len(vs)-1-i {
			return fmt.Errorf("variable %s at %d has position %d", v.Name, i, v.Pos)
		}
		if v.Name == "" {
			return fmt.Errorf("variable at %d has no name", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate variable %s", v.Name)
		}
		seen[v.Name] = true
	}
	return nil
}

func (vs Vars) String() string {
	return strings.Join(vs.Names(), ",")
}

// Pattern returns the n-bit binary representation of i, most
// significant bit first.
func Pattern(i, n int) string {
	buf := make([]byte, n)
	for j := 0; j < n; j++ {
		buf[j] = '0' + byte((i>>uint(n-1-j))&1)
	}
	return string(buf)
}
