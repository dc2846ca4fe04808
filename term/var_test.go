// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import (
	"fmt"
	"testing"
)

func TestVars(t *testing.T) {
	vs := NewVars("Q1", "Q0", "X0")
	if vs.Bits() != 3 || vs.Rows() != 8 {
		t.Errorf("wrong size %d %d", vs.Bits(), vs.Rows())
	}
	if vs[0].Pos != 2 || vs[2].Pos != 0 {
		t.Errorf("msb first violated: %v", vs)
	}
	if err := vs.Valid(); err != nil {
		t.Errorf("valid: %s", err)
	}
	if vs.Index("X0") != 2 || vs.Index("Z") != -1 {
		t.Errorf("index")
	}
	if fmt.Sprintf("%s", vs[0]) != "Q1@2" {
		t.Errorf("format %s", vs[0])
	}
}

func TestVarsRowAssign(t *testing.T) {
	vs := NewVars("A", "B", "C", "D")
	for r := 0; r < vs.Rows(); r++ {
		if vs.Row(vs.Assign(r)) != r {
			t.Errorf("row/assign round trip at %d", r)
		}
	}
	if vs.Pattern(5) != "0101" {
		t.Errorf("pattern %s", vs.Pattern(5))
	}
}

func TestVarsInvalid(t *testing.T) {
	vs := Vars{{Name: "A", Pos: 0}, {Name: "B", Pos: 1}}
	if vs.Valid() == nil {
		t.Errorf("positions out of order not detected")
	}
	vs = NewVars("A", "A")
	if vs.Valid() == nil {
		t.Errorf("duplicate not detected")
	}
}

func TestSeq(t *testing.T) {
	ns := Seq("Q", 3)
	if len(ns) != 3 || ns[0] != "Q2" || ns[2] != "Q0" {
		t.Errorf("seq %v", ns)
	}
}
