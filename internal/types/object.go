package types

import "fmt"

// Symbol is a declared variable. Symbols are owned by the SymbolTable that
// created them and become unreachable when their scope is popped.
type Symbol struct {
	Name        string
	Type        Type
	Scope       int  // scope level of the declaration, 0 is global
	Initialized bool // whether the variable has been assigned
	Line        int  // source line of the declaration

	next *Symbol // bucket chain
}

func (s *Symbol) String() string {
	init := "no"
	if s.Initialized {
		init = "yes"
	}
	return fmt.Sprintf("%s %s (scope=%d, line=%d, init=%s)", s.Type, s.Name, s.Scope, s.Line, init)
}

// RedeclaredError is returned by Insert when a name is declared twice in
// the same scope.
type RedeclaredError struct {
	Name     string
	Line     int // line of the rejected declaration
	Previous *Symbol
}

func (e *RedeclaredError) Error() string {
	return fmt.Sprintf("'%s' already declared in this scope (line %d)", e.Name, e.Previous.Line)
}
