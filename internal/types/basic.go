package types

// Info describes properties of a type.
type Info uint8

const (
	IsInteger Info = 1 << iota
	IsFloat
	IsPointer
	IsNumeric = IsInteger | IsFloat
)

type typeInfo struct {
	name string
	info Info
	elem Type // pointee for pointer types
}

var typeInfos = [...]typeInfo{
	Int:      {name: "int", info: IsInteger, elem: Unknown},
	Float:    {name: "float", info: IsFloat, elem: Unknown},
	Char:     {name: "char", info: IsInteger, elem: Unknown},
	IntPtr:   {name: "int*", info: IsPointer, elem: Int},
	FloatPtr: {name: "float*", info: IsPointer, elem: Float},
	CharPtr:  {name: "char*", info: IsPointer, elem: Char},
	Void:     {name: "void", elem: Unknown},
	Unknown:  {name: "<unknown>", elem: Unknown},
}

// Info returns the property flags of t.
func (t Type) Info() Info {
	if t < typeCount {
		return typeInfos[t].info
	}
	return 0
}
