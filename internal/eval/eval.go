// Package eval folds expression trees into integer results.
package eval

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/syntax"
)

// Evaluator computes the value of expressions.
//
// Runtime errors are reported to the error handler and the offending
// subexpression evaluates to 0; evaluation always completes.
type Evaluator struct {
	errh   syntax.ErrorHandler
	errors int
}

// New returns an Evaluator that reports runtime errors to errh.
// If errh is nil, errors are only counted.
func New(errh syntax.ErrorHandler) *Evaluator {
	return &Evaluator{errh: errh}
}

// Errors returns the number of runtime errors reported so far.
func (e *Evaluator) Errors() int {
	return e.errors
}

// Eval returns the value of x.
//
// Arithmetic is int64 with Go semantics: + - * wrap on overflow and
// division truncates toward zero. Dividing math.MinInt64 by -1 yields
// math.MinInt64.
func (e *Evaluator) Eval(x syntax.Expr) int64 {
	switch n := x.(type) {
	case *syntax.IntLit:
		return n.Value

	case *syntax.Operation:
		l := e.Eval(n.X)
		r := e.Eval(n.Y)
		switch n.Op {
		case syntax.Add:
			return l + r
		case syntax.Sub:
			return l - r
		case syntax.Mul:
			return l * r
		case syntax.Div:
			if r == 0 {
				e.errorAt(n.OpPos, "division by zero")
				return 0
			}
			return l / r
		}
		e.errorAt(n.OpPos, fmt.Sprintf("invalid operator %s", n.Op))
		return 0

	case *syntax.Negation:
		return -e.Eval(n.X)

	case nil:
		return 0
	}
	e.errorAt(x.Pos(), fmt.Sprintf("cannot evaluate %T", x))
	return 0
}

func (e *Evaluator) errorAt(pos syntax.Pos, msg string) {
	e.errors++
	if e.errh != nil {
		e.errh(pos, msg)
	}
}

// Eval evaluates x and returns its value with any runtime diagnostics.
func Eval(x syntax.Expr) (int64, []diag.Diagnostic) {
	var dl diag.List
	e := New(func(pos syntax.Pos, msg string) {
		dl.Errorf(diag.Runtime, int(pos.Line()), int(pos.Col()), "%s", msg)
	})
	v := e.Eval(x)
	return v, dl.Items()
}

// Result is the outcome of running source text through the whole pipeline.
type Result struct {
	Value int64
	Tree  syntax.Expr
	Diags []diag.Diagnostic // lexical and syntax in report order, then runtime
}

// Failed reports whether any stage reported an error.
func (r *Result) Failed() bool {
	return len(r.Diags) > 0
}

// Source tokenizes, parses and evaluates src.
// A tree recovered from syntax errors is still evaluated.
func Source(src string) *Result {
	x, diags := syntax.Parse(src)
	v, rdiags := Eval(x)
	return &Result{Value: v, Tree: x, Diags: append(diags, rdiags...)}
}
