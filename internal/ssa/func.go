package ssa

import "github.com/you-not-fish/minic/internal/syntax"

// Func is a straight-line SSA function with no parameters returning a
// single integer. Values are kept in definition order: every argument
// precedes its users.
type Func struct {
	// Name is the function name.
	Name string

	// Values is the ordered list of computed values.
	Values []*Value

	// Result is the returned value.
	Result *Value

	// nextValueID is the next available value ID.
	nextValueID ID
}

// NewFunc creates an empty function with the given name.
func NewFunc(name string) *Func {
	return &Func{Name: name}
}

// NewValue creates a new Value at the end of the function.
func (f *Func) NewValue(op Op, args ...*Value) *Value {
	v := &Value{
		ID: f.nextValueID,
		Op: op,
	}
	f.nextValueID++
	for _, arg := range args {
		v.AddArg(arg)
	}
	f.Values = append(f.Values, v)
	return v
}

// NewValuePos creates a new Value with source position.
func (f *Func) NewValuePos(op Op, pos syntax.Pos, args ...*Value) *Value {
	v := f.NewValue(op, args...)
	v.Pos = pos
	return v
}

// ConstInt creates a new constant value.
func (f *Func) ConstInt(pos syntax.Pos, c int64) *Value {
	v := f.NewValuePos(OpConst, pos)
	v.AuxInt = c
	return v
}

// SetResult makes v the returned value, adjusting use counts.
func (f *Func) SetResult(v *Value) {
	if f.Result != nil {
		f.Result.Uses--
	}
	f.Result = v
	if v != nil {
		v.Uses++
	}
}

// ReplaceUses redirects every use of old, including the result, to new.
func (f *Func) ReplaceUses(old, new *Value) {
	if old == new {
		return
	}
	for _, v := range f.Values {
		for i, arg := range v.Args {
			if arg == old {
				v.ReplaceArg(i, new)
			}
		}
	}
	if f.Result == old {
		f.SetResult(new)
	}
}

// NumValues returns the number of values in the function.
func (f *Func) NumValues() int { return len(f.Values) }
