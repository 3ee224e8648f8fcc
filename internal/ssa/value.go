package ssa

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
)

// ID is a unique identifier for Values within a Func.
type ID int32

// Value represents a single SSA computation.
// Each Value has exactly one definition and may be used by other Values.
type Value struct {
	// ID is a unique identifier within the containing Func.
	ID ID

	// Op is the operation this value computes.
	Op Op

	// Args are the input values to this operation.
	Args []*Value

	// AuxInt holds the value of an OpConst.
	AuxInt int64

	// Uses tracks the number of references to this value, including the
	// function result. Used by DCE to identify dead values.
	Uses int32

	// Pos is the source position associated with this value.
	Pos syntax.Pos
}

// String returns a short string representation of the value (e.g., "v5").
func (v *Value) String() string {
	return fmt.Sprintf("v%d", v.ID)
}

// LongString returns a detailed string representation including op and args.
func (v *Value) LongString() string {
	s := fmt.Sprintf("v%d = %s", v.ID, v.Op)
	if v.Op == OpConst {
		s += fmt.Sprintf(" [%d]", v.AuxInt)
	}
	for _, arg := range v.Args {
		s += " " + arg.String()
	}
	return s
}

// AddArg appends a value to the argument list and increments the arg's use count.
func (v *Value) AddArg(arg *Value) {
	v.Args = append(v.Args, arg)
	arg.Uses++
}

// ResetArgs drops all arguments, adjusting use counts.
func (v *Value) ResetArgs() {
	for _, old := range v.Args {
		old.Uses--
	}
	v.Args = nil
}

// ReplaceArg replaces the argument at index i, adjusting use counts.
func (v *Value) ReplaceArg(i int, new *Value) {
	old := v.Args[i]
	old.Uses--
	v.Args[i] = new
	new.Uses++
}

// SetConst turns v into the constant c in place. Users of v are unaffected.
func (v *Value) SetConst(c int64) {
	v.ResetArgs()
	v.Op = OpConst
	v.AuxInt = c
}

// IsConst reports whether v is a constant, returning its value.
func (v *Value) IsConst() (int64, bool) {
	if v.Op == OpConst {
		return v.AuxInt, true
	}
	return 0, false
}

// IsPure returns true if this value's op has no side effects.
func (v *Value) IsPure() bool {
	return v.Op.IsPure()
}
