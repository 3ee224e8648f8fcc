// Package syntax implements lexical and syntactic analysis for a small
// C-subset: integer arithmetic expressions plus the handful of keywords and
// punctuation needed for declarations.
package syntax

import "fmt"

// Kind is the type of a lexical token.
type Kind uint8

const (
	// Special tokens
	EOF   Kind = iota // end of input
	Error             // unrecognised character

	// Literals
	Name    // identifier: x, _count, ptr2
	Literal // integer literal: 42

	// Operators
	Add    // +
	Sub    // -
	Mul    // *
	Div    // /
	Assign // =

	// Delimiters
	Semi   // ;
	Lparen // (
	Rparen // )
	Lbrace // {
	Rbrace // }

	// Keywords
	Int    // int
	Return // return

	kindCount
)

var kindNames = [...]string{
	EOF:     "EOF",
	Error:   "ERROR",
	Name:    "NAME",
	Literal: "LITERAL",
	Add:     "+",
	Sub:     "-",
	Mul:     "*",
	Div:     "/",
	Assign:  "=",
	Semi:    ";",
	Lparen:  "(",
	Rparen:  ")",
	Lbrace:  "{",
	Rbrace:  "}",
	Int:     "int",
	Return:  "return",
}

// String returns the lexeme for operators, delimiters and keywords, and an
// upper-case class name for the other kinds.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k == Int || k == Return
}

// IsOperator reports whether k is an arithmetic or assignment operator.
func (k Kind) IsOperator() bool {
	return k >= Add && k <= Assign
}

// Precedence returns the binding strength of a binary operator, or 0.
//
//	1: + -
//	2: * /
func (k Kind) Precedence() int {
	switch k {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	}
	return 0
}

// singles maps each single-character token to its kind.
var singles = map[rune]Kind{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
	'=': Assign,
	';': Semi,
	'(': Lparen,
	')': Rparen,
	'{': Lbrace,
	'}': Rbrace,
}

var keywords = map[string]Kind{
	"int":    Int,
	"return": Return,
}

// LookupKeyword returns the keyword kind for ident, or Name.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Name
}

// Token is a single lexical token. Tokens are plain values.
type Token struct {
	Kind  Kind
	Text  string // lexeme; "<EOF>" at end of input
	Value int64  // decoded value, only for Literal
	Pos   Pos    // position of the first character
}

func (t Token) String() string {
	switch t.Kind {
	case Name, Literal, Error:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
	return t.Kind.String()
}
