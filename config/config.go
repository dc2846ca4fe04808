// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package config

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/go-air/excite/design"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/term"
)

// Format is a problem file format.
type Format int

const (
	TOML Format = iota
	YAML
	JSON
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	default:
		panic("wilma!")
	}
}

// ParseFormat parses the name of a format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "toml":
		return TOML, nil
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// PathFormat gives the format of the file at p from its extension.
func PathFormat(p string) (Format, error) {
	if p == "-" {
		return TOML, nil
	}
	q := strings.TrimSuffix(p, ".gz")
	switch {
	case strings.HasSuffix(q, ".toml"):
		return TOML, nil
	case strings.HasSuffix(q, ".yaml"), strings.HasSuffix(q, ".yml"):
		return YAML, nil
	case strings.HasSuffix(q, ".json"):
		return JSON, nil
	}
	return 0, fmt.Errorf("%s: extension is not .toml, .yaml, .yml or .json", p)
}

const (
	minterms = "minterms"
	maxterms = "maxterms"
)

// Terms holds one of the keys "minterms" or "maxterms".
type Terms map[string][]int

// Set converts ts to a term.Set.
func (ts Terms) Set() (term.Set, error) {
	if len(ts) != 1 {
		return term.Set{}, errors.Errorf("want exactly one of %s or %s, got %d keys", minterms, maxterms, len(ts))
	}
	if r, ok := ts[minterms]; ok {
		return term.Minterms(r...), nil
	}
	if r, ok := ts[maxterms]; ok {
		return term.Maxterms(r...), nil
	}
	for k := range ts {
		return term.Set{}, errors.Errorf("unknown key %q", k)
	}
	panic("wilma!")
}

// TermsOf converts s to Terms.
func TermsOf(s term.Set) Terms {
	r := make([]int, len(s.Terms))
	copy(r, s.Terms)
	if s.Minterm {
		return Terms{minterms: r}
	}
	return Terms{maxterms: r}
}

// File is the contents of a problem file.
type File struct {
	FlipFlop  string           `toml:"flip_flop" json:"flip_flop"`
	FlipFlops int              `toml:"flip_flops" json:"flip_flops"`
	Inputs    int              `toml:"inputs" json:"inputs"`
	Machine   string           `toml:"machine,omitempty" json:"machine,omitempty"`
	Path      string           `toml:"path,omitempty" json:"path,omitempty"`
	Verify    bool             `toml:"verify,omitempty" json:"verify,omitempty"`
	Terms     map[string]Terms `toml:"terms" json:"terms"`
}

// Config parses the machine configuration of f.
func (f *File) Config() (fsm.Config, error) {
	ff, err := fsm.ParseFlipFlop(f.FlipFlop)
	if err != nil {
		return fsm.Config{}, err
	}
	m := fsm.Mealy
	if f.Machine != "" {
		if m, err = fsm.ParseMachine(f.Machine); err != nil {
			return fsm.Config{}, err
		}
	}
	c := fsm.Config{FlipFlop: ff, NumFlipFlops: f.FlipFlops, NumInputs: f.Inputs, Machine: m}
	return c, c.Validate()
}

// Problem converts f to a design problem.  Terms of equations which the
// configuration does not have are an error.
func (f *File) Problem() (*design.Problem, error) {
	c, err := f.Config()
	if err != nil {
		return nil, err
	}
	p := &design.Problem{Config: c, Terms: make(map[string]term.Set, len(f.Terms))}
	for _, nm := range sortedKeys(f.Terms) {
		if _, ok := c.Equation(nm); !ok {
			return nil, errors.Errorf("terms for %s: no such equation in %s", nm, c)
		}
		s, err := f.Terms[nm].Set()
		if err != nil {
			return nil, errors.Wrapf(err, "terms for %s", nm)
		}
		p.Terms[nm] = s
	}
	return p, nil
}

// Options gives the synthesis options of f.
func (f *File) Options() (design.Options, error) {
	p, err := design.ParsePath(f.Path)
	if err != nil {
		return design.Options{}, err
	}
	return design.Options{Path: p, Verify: f.Verify}, nil
}

// FromProblem creates a File for p.
func FromProblem(p *design.Problem) *File {
	f := &File{
		FlipFlop:  p.Config.FlipFlop.String(),
		FlipFlops: p.Config.NumFlipFlops,
		Inputs:    p.Config.NumInputs,
		Machine:   p.Config.Machine.String(),
		Terms:     make(map[string]Terms, len(p.Terms))}
	for nm, s := range p.Terms {
		f.Terms[nm] = TermsOf(s)
	}
	return f
}

func sortedKeys(m map[string]Terms) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Decode reads a File in format ft from r.
func Decode(r io.Reader, ft Format) (*File, error) {
	f := &File{}
	switch ft {
	case TOML:
		md, err := toml.NewDecoder(r).Decode(f)
		if err != nil {
			return nil, errors.Wrap(err, "decoding toml")
		}
		if un := md.Undecoded(); len(un) > 0 {
			return nil, errors.Errorf("unknown key %s", un[0])
		}
	case YAML:
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(d, f); err != nil {
			return nil, errors.Wrap(err, "decoding yaml")
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, errors.Wrap(err, "decoding json")
		}
	default:
		panic("wilma!")
	}
	return f, nil
}

// Encode writes f to w in format ft.
func (f *File) Encode(w io.Writer, ft Format) error {
	switch ft {
	case TOML:
		return toml.NewEncoder(w).Encode(f)
	case YAML:
		d, err := yaml.Marshal(f)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case JSON:
		d, err := json.MarshalIndent(f, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	default:
		panic("wilma!")
	}
}

// Load reads the problem file at path.
func Load(path string) (*File, error) {
	ft, err := PathFormat(path)
	if err != nil {
		return nil, err
	}
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		d, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		r = bytes.NewReader(d)
		if strings.HasSuffix(path, ".gz") {
			gz, err := gzip.NewReader(r)
			if err != nil {
				return nil, errors.Wrapf(err, "%s", path)
			}
			defer gz.Close()
			r = gz
		}
	}
	f, err := Decode(r, ft)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return f, nil
}

// Save writes f to path in the format given by its extension.
func (f *File) Save(path string) error {
	ft, err := PathFormat(path)
	if err != nil {
		return err
	}
	if path == "-" {
		return f.Encode(os.Stdout, ft)
	}
	var buf bytes.Buffer
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(&buf)
		if err := f.Encode(gz, ft); err != nil {
			return err
		}
		if err := gz.Close(); err != nil {
			return err
		}
	} else if err := f.Encode(&buf, ft); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
