package passes

import "github.com/you-not-fish/minic/internal/ssa"

type cseKey struct {
	op     ssa.Op
	auxInt int64
	x, y   ssa.ID
}

// CSE eliminates common subexpressions: a pure value computing the same op
// over the same arguments as an earlier value is replaced by that value.
// Arguments of commutative ops are compared in either order.
func CSE(f *ssa.Func) {
	seen := make(map[cseKey]*ssa.Value)
	for _, v := range f.Values {
		if !v.IsPure() || v.Uses == 0 {
			continue
		}
		key := cseKey{op: v.Op, auxInt: v.AuxInt, x: -1, y: -1}
		if len(v.Args) > 0 {
			key.x = v.Args[0].ID
		}
		if len(v.Args) > 1 {
			key.y = v.Args[1].ID
		}
		if v.Op.Info().Commutative && key.x > key.y {
			key.x, key.y = key.y, key.x
		}

		if prev, ok := seen[key]; ok {
			f.ReplaceUses(v, prev)
			continue
		}
		seen[key] = v
	}
}
