package syntax

import (
	"io"
	"strings"

	"github.com/you-not-fish/minic/internal/diag"
)

// Maximum number of syntax errors before the parser gives up.
const maxErrors = 10

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Pos Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// Parser is an LL(1) recursive descent parser for arithmetic expressions:
//
//	expr   = term { ("+" | "-") term } .
//	term   = factor { ("*" | "/") factor } .
//	factor = INTEGER | "(" expr ")" | "-" factor .
//
// The parser never aborts on bad input. It reports the error, substitutes a
// zero literal for the broken operand and carries on, so ParseExpr always
// returns a complete tree.
type Parser struct {
	src tokenSource
	tok Token // lookahead

	errh    ErrorHandler
	errcnt  int
	first   error
	lastErr Pos // position of the last reported error
	abort   bool
}

// NewParser creates a Parser reading source text from src.
// Lexical and syntax errors are both reported to errh.
func NewParser(filename string, src io.Reader, errh ErrorHandler) *Parser {
	p := &Parser{errh: errh}
	p.src = NewScanner(filename, src, errh)
	p.next()
	return p
}

func newTokenParser(toks []Token, errh ErrorHandler) *Parser {
	p := &Parser{src: &sliceSource{toks: toks}, errh: errh}
	p.next()
	return p
}

// Parse parses src as a single expression.
func Parse(src string) (Expr, []diag.Diagnostic) {
	var dl diag.List
	p := &Parser{errh: stageHandler(&dl, diag.Syntax)}
	p.src = NewScanner("", strings.NewReader(src), stageHandler(&dl, diag.Lex))
	p.next()
	x := p.ParseExpr()
	return x, dl.Items()
}

// ParseTokens parses an already scanned token stream as a single expression.
// A missing trailing EOF token is implied.
func ParseTokens(toks []Token) (Expr, []diag.Diagnostic) {
	var dl diag.List
	p := newTokenParser(toks, stageHandler(&dl, diag.Syntax))
	x := p.ParseExpr()
	return x, dl.Items()
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) next() {
	p.src.Next()
	p.tok = p.src.Token()
}

// got consumes the current token if it has kind k.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes a token of kind k or reports that it is missing.
func (p *Parser) want(k Kind) {
	if !p.got(k) {
		p.syntaxError("expected " + k.String())
	}
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) syntaxError(msg string) {
	p.syntaxErrorAt(p.tok.Pos, msg)
}

func (p *Parser) syntaxErrorAt(pos Pos, msg string) {
	if p.abort {
		return
	}
	if p.errcnt == 0 {
		p.first = &SyntaxError{Pos: pos, Msg: msg}
	}
	p.errcnt++
	p.lastErr = pos

	if p.errh != nil {
		p.errh(pos, msg)
	}

	if p.errcnt >= maxErrors {
		p.abort = true
		if p.errh != nil {
			p.errh(pos, "too many errors; aborting parse")
		}
		p.tok = Token{Kind: EOF, Text: "<EOF>", Pos: pos}
	}
}

// Errors returns the number of syntax errors reported.
func (p *Parser) Errors() int {
	return p.errcnt
}

// FirstError returns the first syntax error, or nil.
func (p *Parser) FirstError() error {
	return p.first
}

// ----------------------------------------------------------------------------
// Grammar

// ParseExpr parses one expression that must span the whole input.
func (p *Parser) ParseExpr() Expr {
	x := p.expr()
	// A token that factor already rejected is not reported again.
	if p.tok.Kind != EOF && (p.errcnt == 0 || p.tok.Pos != p.lastErr) {
		p.syntaxError("unexpected " + tokDesc(p.tok) + " after expression")
	}
	return x
}

// expr = term { ("+" | "-") term } .
func (p *Parser) expr() Expr {
	x := p.term()
	for !p.abort && (p.tok.Kind == Add || p.tok.Kind == Sub) {
		op, pos := p.tok.Kind, p.tok.Pos
		p.next()
		x = NewOperation(pos, op, x, p.term())
	}
	return x
}

// term = factor { ("*" | "/") factor } .
func (p *Parser) term() Expr {
	x := p.factor()
	for !p.abort && (p.tok.Kind == Mul || p.tok.Kind == Div) {
		op, pos := p.tok.Kind, p.tok.Pos
		p.next()
		x = NewOperation(pos, op, x, p.factor())
	}
	return x
}

// factor = INTEGER | "(" expr ")" | "-" factor .
func (p *Parser) factor() Expr {
	pos := p.tok.Pos
	switch p.tok.Kind {
	case Sub:
		p.next()
		return NewNegation(pos, p.factor())

	case Lparen:
		p.next()
		x := p.expr()
		p.want(Rparen)
		return x

	case Literal:
		v := p.tok.Value
		p.next()
		return NewIntLit(pos, v)

	case Error:
		// Already reported by the scanner; skip it so recovery makes progress.
		p.next()
		return NewIntLit(pos, 0)

	default:
		p.syntaxError("unexpected " + tokDesc(p.tok))
		return NewIntLit(pos, 0)
	}
}

// tokDesc describes a token for error messages.
func tokDesc(t Token) string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Name:
		return "name " + t.Text
	case Literal:
		return "literal " + t.Text
	case Error:
		return "character " + t.Text
	}
	if t.Kind.IsKeyword() {
		return "keyword " + t.Text
	}
	return t.Kind.String()
}
