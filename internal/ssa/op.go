// Package ssa implements a single-assignment intermediate representation
// for integer expressions. Every Value is defined once, before any of its
// uses, so a Func is a straight-line list of three-address instructions.
package ssa

import "github.com/you-not-fish/minic/internal/syntax"

// Op represents an SSA operation code.
type Op int

const (
	OpInvalid Op = iota

	OpConst // integer constant; AuxInt = value

	OpAdd // x + y
	OpSub // x - y
	OpMul // x * y
	OpDiv // x / y, truncating; yields 0 when y is 0
	OpNeg // -x

	opCount // sentinel; must be last
)

// OpInfo holds metadata about an SSA operation.
type OpInfo struct {
	Name        string // human-readable name
	Symbol      string // operator spelling in three-address form
	NumArgs     int
	IsPure      bool // no side effects; may be CSE'd and DCE'd
	Commutative bool
}

var opInfoTable = [opCount]OpInfo{
	OpInvalid: {Name: "Invalid"},

	OpConst: {Name: "Const", IsPure: true},

	OpAdd: {Name: "Add", Symbol: "+", NumArgs: 2, IsPure: true, Commutative: true},
	OpSub: {Name: "Sub", Symbol: "-", NumArgs: 2, IsPure: true},
	OpMul: {Name: "Mul", Symbol: "*", NumArgs: 2, IsPure: true, Commutative: true},
	OpNeg: {Name: "Neg", Symbol: "-", NumArgs: 1, IsPure: true},

	// Division reports a runtime error on a zero divisor.
	OpDiv: {Name: "Div", Symbol: "/", NumArgs: 2},
}

// String returns the human-readable name of the op.
func (o Op) String() string {
	return o.Info().Name
}

// Info returns the OpInfo for this op.
func (o Op) Info() OpInfo {
	if o >= 0 && o < opCount {
		return opInfoTable[o]
	}
	return OpInfo{Name: "unknown"}
}

// IsPure returns true if this op has no side effects.
func (o Op) IsPure() bool {
	return o.Info().IsPure
}

// binaryOps maps operator tokens to their ops.
var binaryOps = map[syntax.Kind]Op{
	syntax.Add: OpAdd,
	syntax.Sub: OpSub,
	syntax.Mul: OpMul,
	syntax.Div: OpDiv,
}
