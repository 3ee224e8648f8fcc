// Package sema performs semantic checks over declarations and uses of
// variables: scoping, initialization and assignment compatibility.
package sema

import (
	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/types"
)

// Checker applies semantic rules against a scoped symbol table.
// All problems are recorded as diagnostics; checking never stops early.
type Checker struct {
	table *types.SymbolTable
	diags *diag.List
}

// NewChecker returns a Checker with an empty symbol table.
func NewChecker() *Checker {
	dl := new(diag.List)
	return &Checker{
		table: types.NewSymbolTable(dl),
		diags: dl,
	}
}

// Table returns the checker's symbol table.
func (c *Checker) Table() *types.SymbolTable { return c.table }

// Diagnostics returns the diagnostics recorded so far, including those
// reported by the symbol table.
func (c *Checker) Diagnostics() *diag.List { return c.diags }

// Errors returns the number of errors recorded so far.
func (c *Checker) Errors() int { return c.diags.Errors() }

// Warnings returns the number of warnings recorded so far.
func (c *Checker) Warnings() int { return c.diags.Warnings() }

// Declare inserts name into the current scope.
func (c *Checker) Declare(name string, typ types.Type, initialized bool, line int) (*types.Symbol, error) {
	return c.table.Insert(name, typ, initialized, line)
}

// CheckAssignment classifies assigning a value of type rhs to the variable
// name of type lhs and records a warning or error when the assignment table
// calls for one.
func (c *Checker) CheckAssignment(name string, lhs, rhs types.Type, line int) types.Compat {
	compat := types.AssignCompat(lhs, rhs)
	switch compat.Verdict {
	case types.Warning:
		c.diags.Warnf(diag.Semantic, line, 0, "assignment to '%s': %s (%s <- %s)", name, compat.Reason, lhs, rhs)
	case types.Error:
		c.diags.Errorf(diag.Semantic, line, 0, "assignment to '%s': %s (%s <- %s)", name, compat.Reason, lhs, rhs)
	}
	return compat
}

// CheckUse reports a read of name: an error if it is not declared, a
// warning if it has not been initialized. It returns the symbol, if any.
func (c *Checker) CheckUse(name string, line int) *types.Symbol {
	return c.checkUse(name, line, 0)
}

func (c *Checker) checkUse(name string, line, col int) *types.Symbol {
	sym := c.table.Lookup(name)
	if sym == nil {
		c.diags.Errorf(diag.Semantic, line, col, "use of undeclared identifier '%s'", name)
		return nil
	}
	if !sym.Initialized {
		c.diags.Warnf(diag.Semantic, line, col, "'%s' is used uninitialized", name)
	}
	return sym
}

// MarkInitialized records that name has been assigned. It reports whether
// a visible symbol was found.
func (c *Checker) MarkInitialized(name string) bool {
	sym := c.table.Lookup(name)
	if sym == nil {
		return false
	}
	sym.Initialized = true
	return true
}

// PushScope enters a nested block.
func (c *Checker) PushScope() { c.table.PushScope() }

// PopScope leaves the current block, dropping its declarations.
func (c *Checker) PopScope() { c.table.PopScope() }
