package sema

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// CheckTokens checks a scanned statement list:
//
//	int x;          declaration
//	int x = expr;   initialized declaration
//	x = expr;       assignment
//	return expr;    return
//	{ ... }         block
//
// Names read by an expression go through CheckUse, declarations enter the
// symbol table, assignments mark their target initialized and braces open
// and close scopes. A malformed statement is reported and skipped up to
// the next ';' or brace. Error tokens are ignored; the scanner has already
// reported them.
func (c *Checker) CheckTokens(toks []syntax.Token) {
	s := &stmtChecker{c: c, toks: toks}
	s.next()
	for s.tok.Kind != syntax.EOF {
		s.stmt()
	}
	for ; s.depth > 0; s.depth-- {
		s.errorAt(s.tok, "missing '}' at end of input")
		c.PopScope()
	}
}

type stmtChecker struct {
	c     *Checker
	toks  []syntax.Token
	i     int
	tok   syntax.Token
	depth int // open blocks
}

func (s *stmtChecker) next() {
	for s.i < len(s.toks) {
		s.tok = s.toks[s.i]
		s.i++
		if s.tok.Kind != syntax.Error {
			return
		}
	}
	if s.tok.Kind != syntax.EOF {
		s.tok = syntax.Token{Kind: syntax.EOF, Text: "<EOF>", Pos: s.tok.Pos}
	}
}

func (s *stmtChecker) got(k syntax.Kind) bool {
	if s.tok.Kind == k {
		s.next()
		return true
	}
	return false
}

func (s *stmtChecker) errorAt(tok syntax.Token, format string, args ...interface{}) {
	s.c.diags.Errorf(diag.Semantic, int(tok.Pos.Line()), int(tok.Pos.Col()), format, args...)
}

// skip advances past the next ';', or up to the next brace or EOF.
func (s *stmtChecker) skip() {
	for {
		switch s.tok.Kind {
		case syntax.Semi:
			s.next()
			return
		case syntax.Lbrace, syntax.Rbrace, syntax.EOF:
			return
		}
		s.next()
	}
}

// end consumes the ';' terminating a statement.
func (s *stmtChecker) end() {
	if s.got(syntax.Semi) {
		return
	}
	s.errorAt(s.tok, "expected ';', found %s", describe(s.tok))
	s.skip()
}

func (s *stmtChecker) stmt() {
	switch tok := s.tok; tok.Kind {
	case syntax.Int:
		s.next()
		if s.tok.Kind != syntax.Name {
			s.errorAt(s.tok, "expected name after int, found %s", describe(s.tok))
			s.skip()
			return
		}
		name := s.tok
		s.next()
		initialized := false
		if s.got(syntax.Assign) {
			if !s.expr() {
				s.skip()
				return
			}
			initialized = true
		}
		line := int(name.Pos.Line())
		if _, err := s.c.Declare(name.Text, types.Int, initialized, line); err == nil && initialized {
			s.c.CheckAssignment(name.Text, types.Int, types.Int, line)
		}
		s.end()

	case syntax.Name:
		s.next()
		if !s.got(syntax.Assign) {
			s.errorAt(s.tok, "expected '=' after %s, found %s", tok.Text, describe(s.tok))
			s.skip()
			return
		}
		if !s.expr() {
			s.skip()
			return
		}
		line := int(tok.Pos.Line())
		if sym := s.c.table.Lookup(tok.Text); sym == nil {
			s.errorAt(tok, "use of undeclared identifier '%s'", tok.Text)
		} else {
			s.c.CheckAssignment(tok.Text, sym.Type, types.Int, line)
			sym.Initialized = true
		}
		s.end()

	case syntax.Return:
		s.next()
		if !s.expr() {
			s.skip()
			return
		}
		s.end()

	case syntax.Lbrace:
		s.next()
		s.c.PushScope()
		s.depth++

	case syntax.Rbrace:
		s.next()
		if s.depth == 0 {
			s.errorAt(tok, "unmatched '}'")
			return
		}
		s.c.PopScope()
		s.depth--

	case syntax.Semi:
		s.next()

	default:
		s.errorAt(tok, "unexpected %s at start of statement", describe(tok))
		s.next()
		s.skip()
	}
}

// expr checks an integer expression and reports whether it was well formed.
func (s *stmtChecker) expr() bool {
	if !s.term() {
		return false
	}
	for s.tok.Kind == syntax.Add || s.tok.Kind == syntax.Sub {
		s.next()
		if !s.term() {
			return false
		}
	}
	return true
}

func (s *stmtChecker) term() bool {
	if !s.factor() {
		return false
	}
	for s.tok.Kind == syntax.Mul || s.tok.Kind == syntax.Div {
		s.next()
		if !s.factor() {
			return false
		}
	}
	return true
}

func (s *stmtChecker) factor() bool {
	switch tok := s.tok; tok.Kind {
	case syntax.Literal:
		s.next()
		return true
	case syntax.Name:
		s.c.checkUse(tok.Text, int(tok.Pos.Line()), int(tok.Pos.Col()))
		s.next()
		return true
	case syntax.Sub:
		s.next()
		return s.factor()
	case syntax.Lparen:
		s.next()
		if !s.expr() {
			return false
		}
		if !s.got(syntax.Rparen) {
			s.errorAt(s.tok, "expected ')', found %s", describe(s.tok))
			return false
		}
		return true
	}
	s.errorAt(s.tok, "expected expression, found %s", describe(s.tok))
	return false
}

func describe(tok syntax.Token) string {
	switch tok.Kind {
	case syntax.EOF:
		return "end of input"
	case syntax.Name:
		return "name " + tok.Text
	case syntax.Literal:
		return "literal " + tok.Text
	}
	return fmt.Sprintf("'%s'", tok.Text)
}
