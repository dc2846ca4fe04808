// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package design

import (
	"fmt"
	"strings"
)

// Path selects which expressions feed the netlist synthesizer.
type Path int

const (
	Canonical Path = iota
	Minimized
	Both
)

func (p Path) String() string {
	switch p {
	case Canonical:
		return "canonical"
	case Minimized:
		return "minimized"
	case Both:
		return "both"
	default:
		panic("wilma!")
	}
}

// ParsePath parses the string form of a Path.
func ParsePath(s string) (Path, error) {
	switch strings.ToLower(s) {
	case "canonical", "canon", "":
		return Canonical, nil
	case "minimized", "min", "qm":
		return Minimized, nil
	case "both":
		return Both, nil
	}
	return 0, fmt.Errorf("unknown path %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Path) UnmarshalText(d []byte) error {
	q, err := ParsePath(string(d))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

func (p Path) canonical() bool { return p != Minimized }
func (p Path) minimized() bool { return p != Canonical }
