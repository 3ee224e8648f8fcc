package ssa

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
)

// builder holds the state for lowering one expression tree.
type builder struct {
	fn *Func
}

// Build lowers the expression tree x into a function called name that
// returns its value. Operands are lowered before their operator, left
// before right, so value order matches evaluation order.
func Build(name string, x syntax.Expr) *Func {
	b := &builder{fn: NewFunc(name)}
	if x == nil {
		b.fn.SetResult(b.fn.ConstInt(syntax.Pos{}, 0))
		return b.fn
	}
	b.fn.SetResult(b.expr(x))
	return b.fn
}

func (b *builder) expr(x syntax.Expr) *Value {
	switch n := x.(type) {
	case *syntax.IntLit:
		return b.fn.ConstInt(n.Pos(), n.Value)

	case *syntax.Operation:
		l := b.expr(n.X)
		r := b.expr(n.Y)
		op, ok := binaryOps[n.Op]
		if !ok {
			panic(fmt.Sprintf("ssa.Build: invalid operator %s", n.Op))
		}
		return b.fn.NewValuePos(op, n.OpPos, l, r)

	case *syntax.Negation:
		return b.fn.NewValuePos(OpNeg, n.Pos(), b.expr(n.X))
	}
	panic(fmt.Sprintf("ssa.Build: unexpected node %T", x))
}
