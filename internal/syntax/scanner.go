package syntax

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Scanner turns source text into tokens on demand.
//
// Unrecognised characters are reported through the error handler and
// returned as Error tokens; scanning resumes at the next character.
type Scanner struct {
	source
	tok Token
}

// NewScanner creates a Scanner reading all of src.
// The errh function is called for each lexical error; if nil, errors are
// silently ignored (the Error tokens are still produced).
func NewScanner(filename string, src io.Reader, errh ErrorHandler) *Scanner {
	return &Scanner{source: newSource(filename, src, errh)}
}

// Token returns the current token.
func (s *Scanner) Token() Token { return s.tok }

// Kind returns the current token's kind.
func (s *Scanner) Kind() Kind { return s.tok.Kind }

// Literal returns the current token's lexeme.
func (s *Scanner) Literal() string { return s.tok.Text }

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos { return s.tok.Pos }

// Next advances to the next token. At end of input it keeps
// producing EOF tokens.
func (s *Scanner) Next() {
	s.skipSpace()

	s.tok = Token{Pos: s.pos()}

	switch {
	case s.ch < 0:
		s.tok.Kind = EOF
		s.tok.Text = "<EOF>"

	case isDigit(s.ch):
		s.number()

	case isLetter(s.ch):
		s.ident()

	default:
		if k, ok := singles[s.ch]; ok {
			s.tok.Kind = k
			s.tok.Text = string(s.ch)
			s.nextch()
			return
		}
		s.tok.Kind = Error
		s.tok.Text = string(s.ch)
		s.errorf(fmt.Sprintf("unexpected character %q", s.ch))
		s.nextch()
	}
}

// skipSpace skips whitespace and comments until neither applies.
func (s *Scanner) skipSpace() {
	for {
		switch {
		case isWhitespace(s.ch):
			s.nextch()
		case s.ch == '/' && s.peek() == '/':
			s.lineComment()
		case s.ch == '/' && s.peek() == '*':
			s.blockComment()
		default:
			return
		}
	}
}

func (s *Scanner) lineComment() {
	for s.ch >= 0 && s.ch != '\n' {
		s.nextch()
	}
}

// blockComment skips a /* */ comment. An unterminated comment runs to the
// end of input.
func (s *Scanner) blockComment() {
	start := s.pos()
	s.nextch() // /
	s.nextch() // *
	for s.ch >= 0 {
		if s.ch == '*' && s.peek() == '/' {
			s.nextch()
			s.nextch()
			return
		}
		s.nextch()
	}
	s.errorAt(start, "comment not terminated")
}

// number scans a run of decimal digits. Values that do not fit in an
// int64 are reported and saturate at math.MaxInt64.
func (s *Scanner) number() {
	var b strings.Builder
	var v int64
	overflow := false
	for isDigit(s.ch) {
		d := int64(s.ch - '0')
		if !overflow && v > (math.MaxInt64-d)/10 {
			overflow = true
		}
		if !overflow {
			v = v*10 + d
		}
		b.WriteRune(s.ch)
		s.nextch()
	}
	if overflow {
		v = math.MaxInt64
		s.errorAt(s.tok.Pos, "integer literal overflows int64")
	}
	s.tok.Kind = Literal
	s.tok.Text = b.String()
	s.tok.Value = v
}

func (s *Scanner) ident() {
	var b strings.Builder
	for isLetter(s.ch) || isDigit(s.ch) {
		b.WriteRune(s.ch)
		s.nextch()
	}
	s.tok.Text = b.String()
	s.tok.Kind = LookupKeyword(s.tok.Text)
}
