// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package design

import (
	"context"
	"io"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/go-air/excite/aig"
	"github.com/go-air/excite/expr"
	"github.com/go-air/excite/fsm"
	"github.com/go-air/excite/netlist"
	"github.com/go-air/excite/qm"
	"github.com/go-air/excite/term"
)

// Problem is a machine configuration with a term assignment per equation.
type Problem struct {
	Config fsm.Config          `json:"config"`
	Terms  map[string]term.Set `json:"terms"`
}

// Options control Run.
type Options struct {
	Path    Path               // which expressions to synthesize
	Verify  bool               // check every result with the SAT solver
	Workers int                // bound on concurrent equations, GOMAXPROCS if 0
	Log     logrus.FieldLogger // nil discards
}

func (o *Options) logger() logrus.FieldLogger {
	if o.Log != nil {
		return o.Log
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Synthesis is an expression and the netlist realising it.  Constant
// expressions have no netlist.
type Synthesis struct {
	Expr    expr.Expr        `json:"expr"`
	Primes  []string         `json:"primes,omitempty"`
	Netlist *netlist.Netlist `json:"netlist,omitempty"`
}

// Equation is the outcome of the synthesis of one equation.
type Equation struct {
	Name      string     `json:"name"`
	Vars      term.Vars  `json:"vars"`
	Terms     term.Set   `json:"terms"`
	Canonical *Synthesis `json:"canonical,omitempty"`
	Minimized *Synthesis `json:"minimized,omitempty"`
	Err       error      `json:"-"`
	Error     string     `json:"error,omitempty"`
}

// Synthesis returns the synthesis for path p, preferring the minimized
// one for Both.
func (e *Equation) Synthesis(p Path) *Synthesis {
	if p.minimized() && e.Minimized != nil {
		return e.Minimized
	}
	return e.Canonical
}

// Result is the outcome of Run.
type Result struct {
	Config    fsm.Config `json:"config"`
	Path      Path       `json:"path"`
	Table     *fsm.Table `json:"table,omitempty"` // nil if some equation is invalid
	Equations []Equation `json:"equations"`
}

// Equation returns the equation named nm.
func (r *Result) Equation(nm string) *Equation {
	for i := range r.Equations {
		if r.Equations[i].Name == nm {
			return &r.Equations[i]
		}
	}
	return nil
}

// Failed returns the equations which could not be synthesized.
func (r *Result) Failed() []*Equation {
	var res []*Equation
	for i := range r.Equations {
		if r.Equations[i].Err != nil {
			res = append(res, &r.Equations[i])
		}
	}
	return res
}

// Gates counts the gates of all netlists on path p.
func (r *Result) Gates(p Path) int {
	n := 0
	for i := range r.Equations {
		if s := r.Equations[i].Synthesis(p); s != nil && s.Netlist != nil {
			n += s.Netlist.Len()
		}
	}
	return n
}

// Machine builds the sequential circuit of the synthesized netlists on
// path p.
func (r *Result) Machine(p Path) (*aig.Machine, error) {
	if fs := r.Failed(); len(fs) > 0 {
		return nil, errors.Wrapf(fs[0].Err, "equation %s", fs[0].Name)
	}
	funcs := make(map[string]aig.Func, len(r.Equations))
	for i := range r.Equations {
		eq := &r.Equations[i]
		s := eq.Synthesis(p)
		if s == nil {
			return nil, errors.Errorf("equation %s: no %s synthesis", eq.Name, p)
		}
		funcs[eq.Name] = aig.Func{Netlist: s.Netlist, Expr: s.Expr}
	}
	return aig.NewMachine(r.Config, funcs)
}

// Run synthesizes every equation of p.  Errors concerning the problem as a
// whole are returned; errors concerning a single equation, including a
// missing or invalid term assignment, are recorded in that Equation.
func Run(ctx context.Context, p *Problem, o *Options) (*Result, error) {
	if o == nil {
		o = &Options{}
	}
	log := o.logger()
	if err := p.Config.Validate(); err != nil {
		return nil, err
	}
	tab, err := fsm.Build(p.Config, p.Terms)
	if err != nil {
		log.WithError(err).Warn("no excitation table")
		tab = nil
	}
	eqs := p.Config.Equations()
	res := &Result{Config: p.Config, Path: o.Path, Table: tab, Equations: make([]Equation, len(eqs))}
	g, gctx := errgroup.WithContext(ctx)
	n := o.Workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(n)
	for i := range eqs {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			eq := &res.Equations[i]
			eq.Name, eq.Vars = eqs[i].Name, eqs[i].Vars
			elog := log.WithField("equation", eq.Name)
			ts, ok := p.Terms[eq.Name]
			if !ok {
				eq.fail(&fsm.MissingAssignmentError{Name: eq.Name}, elog)
				return nil
			}
			eq.Terms = ts
			synth(eq, o, elog)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if !o.Verify || tab == nil || len(res.Failed()) > 0 {
		return res, nil
	}
	m, err := res.Machine(o.Path)
	if err != nil {
		return nil, errors.Wrap(err, "building machine")
	}
	if err := m.Verify(tab); err != nil {
		return nil, errors.Wrap(err, "verifying machine")
	}
	log.WithField("rows", len(tab.Rows)).Debug("machine verified")
	return res, nil
}

func (eq *Equation) fail(err error, log logrus.FieldLogger) {
	eq.Err = err
	eq.Error = err.Error()
	log.WithError(err).Warn("synthesis failed")
}

func synth(eq *Equation, o *Options, log logrus.FieldLogger) {
	fail := func(err error) { eq.fail(err, log) }
	ctx := netlist.NewCtx()
	if o.Path.canonical() {
		e, err := expr.Canonical(eq.Terms, eq.Vars)
		if err != nil {
			fail(err)
			return
		}
		s, err := realise(ctx, e, eq, o.Verify)
		if err != nil {
			fail(errors.Wrap(err, "canonical"))
			return
		}
		eq.Canonical = s
		log.WithField("expr", e.String()).Debug("canonical")
	}
	if o.Path.minimized() {
		bits := eq.Vars.Bits()
		if err := eq.Terms.Validate(bits); err != nil {
			fail(err)
			return
		}
		ps, err := qm.Primes(eq.Terms.Minterms(bits), bits)
		if err != nil {
			fail(err)
			return
		}
		e := qm.Expr(ps, eq.Vars)
		s, err := realise(ctx, e, eq, o.Verify)
		if err != nil {
			fail(errors.Wrap(err, "minimized"))
			return
		}
		s.Primes = make([]string, len(ps))
		for i := range ps {
			s.Primes[i] = ps[i].String()
		}
		eq.Minimized = s
		log.WithFields(logrus.Fields{"expr": e.String(), "primes": len(ps)}).Debug("minimized")
	}
}

// realise synthesizes e in ctx.  Constants have no netlist.
func realise(ctx *netlist.Ctx, e expr.Expr, eq *Equation, verify bool) (*Synthesis, error) {
	s := &Synthesis{Expr: e}
	if _, isConst := e.IsConst(); !isConst {
		n, err := ctx.Synth(e)
		if err != nil {
			return nil, err
		}
		s.Netlist = n
	}
	if !verify {
		return s, nil
	}
	if s.Netlist != nil {
		return s, aig.Equiv(s.Netlist, eq.Terms, eq.Vars)
	}
	return s, aig.EquivExpr(e, eq.Terms, eq.Vars)
}
