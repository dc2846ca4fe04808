// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package expr

import "fmt"

// SyntaxError is returned by Parse.
type SyntaxError struct {
	Src string
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d in %q: %s", e.Pos, e.Src, e.Msg)
}

type tokType int

const (
	tIdent tokType = iota
	tNeg
	tPlus
	tAnd
	tLParen
	tRParen
	tZero
	tOne
	tEOF
)

type token struct {
	typ tokType
	lex string
	pos int
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func lex(s string) ([]token, error) {
	var ts []token
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '\'':
			ts = append(ts, token{tNeg, "'", i})
			i++
		case c == '+':
			ts = append(ts, token{tPlus, "+", i})
			i++
		case c == '*' || c == '.':
			ts = append(ts, token{tAnd, string(c), i})
			i++
		case c == '(':
			ts = append(ts, token{tLParen, "(", i})
			i++
		case c == ')':
			ts = append(ts, token{tRParen, ")", i})
			i++
		case c == '0':
			ts = append(ts, token{tZero, "0", i})
			i++
		case c == '1':
			ts = append(ts, token{tOne, "1", i})
			i++
		case isLetter(c):
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			ts = append(ts, token{tIdent, s[i:j], i})
			i = j
		default:
			return nil, &SyntaxError{Src: s, Pos: i, Msg: fmt.Sprintf("unexpected %q", c)}
		}
	}
	return append(ts, token{tEOF, "", len(s)}), nil
}

type parser struct {
	src string
	ts  []token
	i   int
}

func (p *parser) peek() token {
	return p.ts[p.i]
}

func (p *parser) next() token {
	t := p.ts[p.i]
	if t.typ != tEOF {
		p.i++
	}
	return t
}

func (p *parser) errf(t token, format string, args ...interface{}) error {
	return &SyntaxError{Src: p.src, Pos: t.pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse parses the string form of an expression.  A leading parenthesis
// selects the product of sums form.  The empty string parses to a SOP
// with no terms.
func Parse(s string) (Expr, error) {
	ts, err := lex(s)
	if err != nil {
		return Expr{}, err
	}
	p := &parser{src: s, ts: ts}
	switch p.peek().typ {
	case tEOF:
		return Expr{Form: SOP}, nil
	case tZero, tOne:
		t := p.next()
		if e := p.peek(); e.typ != tEOF {
			return Expr{}, p.errf(e, "trailing %q after constant", e.lex)
		}
		return Const(t.typ == tOne), nil
	case tLParen:
		return p.pos()
	default:
		return p.sop()
	}
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Expr {
	e, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *parser) lit() (Lit, error) {
	t := p.next()
	if t.typ != tIdent {
		return Lit{}, p.errf(t, "expected variable, got %q", t.lex)
	}
	m := Lit{Name: t.lex}
	if p.peek().typ == tNeg {
		p.next()
		m.Neg = true
		if n := p.peek(); n.typ == tNeg {
			return Lit{}, p.errf(n, "double negation of %s", m.Name)
		}
	}
	return m, nil
}

func (p *parser) sop() (Expr, error) {
	e := Expr{Form: SOP}
	for {
		var t Term
		for {
			if p.peek().typ == tAnd {
				p.next()
			}
			m, err := p.lit()
			if err != nil {
				return Expr{}, err
			}
			t = append(t, m)
			if k := p.peek().typ; k != tIdent && k != tAnd {
				break
			}
		}
		e.Terms = append(e.Terms, t)
		switch tk := p.next(); tk.typ {
		case tEOF:
			return e, nil
		case tPlus:
		default:
			return Expr{}, p.errf(tk, "unexpected %q in sum of products", tk.lex)
		}
	}
}

func (p *parser) pos() (Expr, error) {
	e := Expr{Form: POS}
	for {
		if tk := p.next(); tk.typ != tLParen {
			return Expr{}, p.errf(tk, "expected '(', got %q", tk.lex)
		}
		var t Term
		for {
			m, err := p.lit()
			if err != nil {
				return Expr{}, err
			}
			t = append(t, m)
			tk := p.next()
			if tk.typ == tRParen {
				break
			}
			if tk.typ != tPlus {
				return Expr{}, p.errf(tk, "unexpected %q in sum", tk.lex)
			}
		}
		e.Terms = append(e.Terms, t)
		if p.peek().typ == tAnd {
			p.next()
		}
		if p.peek().typ == tEOF {
			return e, nil
		}
	}
}
