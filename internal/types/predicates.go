package types

import "fmt"

// IsPointer reports whether t is int*, float* or char*.
func (t Type) IsPointer() bool {
	return t.Info()&IsPointer != 0
}

// IsNumeric reports whether t is int, float or char.
func (t Type) IsNumeric() bool {
	return t.Info()&IsNumeric != 0
}

// Verdict classifies an assignment.
type Verdict uint8

const (
	OK Verdict = iota
	Warning
	Error
)

func (v Verdict) String() string {
	switch v {
	case OK:
		return "ok"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("Verdict(%d)", v)
}

// Reason identifies which rule of the assignment table applied.
type Reason uint8

const (
	SameType          Reason = iota // identical types
	PointerMismatch                 // pointer <- different pointer
	PointerNumeric                  // pointer <-> numeric without a cast
	FloatToInt                      // int <- float, fractional part lost
	IntToFloat                      // float <- int, precision may be lost
	CharIntConversion               // char <- int or int <- char
	NumericConversion               // any other numeric pair
	Incompatible                    // everything else
)

var reasonText = [...]string{
	SameType:          "types match",
	PointerMismatch:   "incompatible pointer types",
	PointerNumeric:    "assignment between pointer and numeric type without a cast",
	FloatToInt:        "implicit float to int conversion loses data",
	IntToFloat:        "implicit int to float conversion may lose precision",
	CharIntConversion: "implicit conversion between char and int",
	NumericConversion: "implicit numeric conversion",
	Incompatible:      "incompatible types",
}

func (r Reason) String() string {
	if int(r) < len(reasonText) {
		return reasonText[r]
	}
	return fmt.Sprintf("Reason(%d)", r)
}

// Compat is the classification of assigning a value of type RHS to a
// variable of type LHS.
type Compat struct {
	LHS, RHS Type
	Verdict  Verdict
	Reason   Reason
}

// String describes the result, e.g. "warning: implicit int to float
// conversion may lose precision (float <- int)".
func (c Compat) String() string {
	return fmt.Sprintf("%s: %s (%s <- %s)", c.Verdict, c.Reason, c.LHS, c.RHS)
}

// AssignCompat classifies the assignment lhs = rhs. The rules are checked in
// order and the first match wins:
//
//	identical types                       ok
//	pointer <- different pointer          error
//	pointer <- numeric, numeric <- pointer error
//	int <- float                          warning
//	float <- int                          warning
//	char <- int, int <- char              warning
//	other numeric pairs                   ok
//	anything else                         error
func AssignCompat(lhs, rhs Type) Compat {
	c := Compat{LHS: lhs, RHS: rhs}
	switch {
	case lhs == rhs:
		c.Verdict, c.Reason = OK, SameType
	case lhs.IsPointer() && rhs.IsPointer():
		c.Verdict, c.Reason = Error, PointerMismatch
	case lhs.IsPointer() && rhs.IsNumeric(), lhs.IsNumeric() && rhs.IsPointer():
		c.Verdict, c.Reason = Error, PointerNumeric
	case lhs == Int && rhs == Float:
		c.Verdict, c.Reason = Warning, FloatToInt
	case lhs == Float && rhs == Int:
		c.Verdict, c.Reason = Warning, IntToFloat
	case lhs == Char && rhs == Int, lhs == Int && rhs == Char:
		c.Verdict, c.Reason = Warning, CharIntConversion
	case lhs.IsNumeric() && rhs.IsNumeric():
		c.Verdict, c.Reason = OK, NumericConversion
	default:
		c.Verdict, c.Reason = Error, Incompatible
	}
	return c
}
