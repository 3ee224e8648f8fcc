// Package types implements the mini type system, symbols and the scoped
// symbol table used by semantic analysis.
package types

import "fmt"

// Type is one of the types a variable can be declared with.
// The set is closed: three numeric types, a pointer to each, and void.
type Type uint8

const (
	Int Type = iota
	Float
	Char
	IntPtr   // int*
	FloatPtr // float*
	CharPtr  // char*
	Void
	Unknown // type of an unresolvable expression

	typeCount
)

// Types lists every declarable type in table order (Unknown excluded).
var Types = []Type{Int, Float, Char, IntPtr, FloatPtr, CharPtr, Void}

// String returns the C spelling of the type.
func (t Type) String() string {
	if t < typeCount {
		return typeInfos[t].name
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Elem returns the pointee of a pointer type, or Unknown.
func (t Type) Elem() Type {
	if t < typeCount {
		return typeInfos[t].elem
	}
	return Unknown
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if t >= typeCount {
		return nil, fmt.Errorf("invalid type %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using LookupType.
func (t *Type) UnmarshalText(text []byte) error {
	typ, ok := LookupType(string(text))
	if !ok {
		return fmt.Errorf("unknown type %q", text)
	}
	*t = typ
	return nil
}
