package passes

import "github.com/you-not-fish/minic/internal/ssa"

// Fold replaces every operation whose operands are all constants with the
// constant it computes. Arithmetic wraps like int64. A division by a
// constant zero is left in place so that it still reports at run time.
func Fold(f *ssa.Func) {
	for _, v := range f.Values {
		if c, ok := foldValue(v); ok {
			v.SetConst(c)
		}
	}
}

func foldValue(v *ssa.Value) (int64, bool) {
	var args [2]int64
	for i, arg := range v.Args {
		c, ok := arg.IsConst()
		if !ok {
			return 0, false
		}
		args[i] = c
	}
	x, y := args[0], args[1]

	switch v.Op {
	case ssa.OpAdd:
		return x + y, true
	case ssa.OpSub:
		return x - y, true
	case ssa.OpMul:
		return x * y, true
	case ssa.OpNeg:
		return -x, true
	case ssa.OpDiv:
		if y == 0 {
			return 0, false
		}
		return x / y, true
	}
	return 0, false
}
