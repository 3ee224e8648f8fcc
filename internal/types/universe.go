package types

import "strings"

// typeNames maps every accepted spelling to its type.
var typeNames map[string]Type

func init() {
	typeNames = make(map[string]Type, len(Types))
	for _, t := range Types {
		typeNames[t.String()] = t
	}
}

// LookupType resolves a type spelling such as "int", "char *" or "float*".
// Whitespace before the star is ignored.
func LookupType(name string) (Type, bool) {
	name = strings.TrimSpace(name)
	if base, ok := strings.CutSuffix(name, "*"); ok {
		name = strings.TrimSpace(base) + "*"
	}
	t, ok := typeNames[name]
	return t, ok
}

// PointerTo returns the pointer type whose element is t, or Unknown when the
// mini type system has no such pointer.
func PointerTo(t Type) Type {
	switch t {
	case Int:
		return IntPtr
	case Float:
		return FloatPtr
	case Char:
		return CharPtr
	}
	return Unknown
}
