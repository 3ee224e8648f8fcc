package ssa

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
)

// Interp executes f and returns its result. A zero divisor is reported to
// errh at the division's position and the division yields 0, matching the
// tree evaluator. errh may be nil.
func Interp(f *Func, errh syntax.ErrorHandler) int64 {
	vals := make(map[*Value]int64, len(f.Values))
	for _, v := range f.Values {
		var x, y int64
		if len(v.Args) > 0 {
			x = vals[v.Args[0]]
		}
		if len(v.Args) > 1 {
			y = vals[v.Args[1]]
		}

		var r int64
		switch v.Op {
		case OpConst:
			r = v.AuxInt
		case OpAdd:
			r = x + y
		case OpSub:
			r = x - y
		case OpMul:
			r = x * y
		case OpNeg:
			r = -x
		case OpDiv:
			if y == 0 {
				if errh != nil {
					errh(v.Pos, "division by zero")
				}
				break
			}
			r = x / y
		default:
			panic(fmt.Sprintf("ssa.Interp: unexpected op %s", v.Op))
		}
		vals[v] = r
	}
	if f.Result == nil {
		return 0
	}
	return vals[f.Result]
}
