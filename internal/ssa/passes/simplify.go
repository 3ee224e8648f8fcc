package passes

import "github.com/you-not-fish/minic/internal/ssa"

// Simplify applies algebraic identities:
//
//	x + 0, 0 + x, x - 0, x * 1, 1 * x, x / 1  =>  x
//	x * 0, 0 * x, x - x                       =>  0  (x pure)
//	0 - x                                     =>  -x
//	-(-x)                                     =>  x
//	x * -1, -1 * x                            =>  -x
//
// Replaced values are left without uses for DCE to remove.
func Simplify(f *ssa.Func) {
	for _, v := range f.Values {
		simplifyValue(f, v)
	}
}

func simplifyValue(f *ssa.Func, v *ssa.Value) {
	switch v.Op {
	case ssa.OpAdd:
		if isConst(v.Args[1], 0) {
			f.ReplaceUses(v, v.Args[0])
		} else if isConst(v.Args[0], 0) {
			f.ReplaceUses(v, v.Args[1])
		}

	case ssa.OpSub:
		x, y := v.Args[0], v.Args[1]
		switch {
		case isConst(y, 0):
			f.ReplaceUses(v, x)
		case x == y && x.IsPure():
			v.SetConst(0)
		case isConst(x, 0):
			toNeg(v, y)
		}

	case ssa.OpMul:
		x, y := v.Args[0], v.Args[1]
		switch {
		case isConst(y, 1):
			f.ReplaceUses(v, x)
		case isConst(x, 1):
			f.ReplaceUses(v, y)
		case isConst(y, 0) && x.IsPure(), isConst(x, 0) && y.IsPure():
			v.SetConst(0)
		case isConst(y, -1):
			toNeg(v, x)
		case isConst(x, -1):
			toNeg(v, y)
		}

	case ssa.OpDiv:
		if isConst(v.Args[1], 1) {
			f.ReplaceUses(v, v.Args[0])
		}

	case ssa.OpNeg:
		if x := v.Args[0]; x.Op == ssa.OpNeg {
			f.ReplaceUses(v, x.Args[0])
		}
	}
}

// toNeg rewrites v in place as -x.
func toNeg(v, x *ssa.Value) {
	x.Uses++ // keep x alive across ResetArgs
	v.ResetArgs()
	v.Op = ssa.OpNeg
	v.Args = []*ssa.Value{x}
}

func isConst(v *ssa.Value, c int64) bool {
	k, ok := v.IsConst()
	return ok && k == c
}
