package passes

import "github.com/you-not-fish/minic/internal/ssa"

// DCE removes values that have no uses and cannot fault. Users always
// follow their arguments, so a single backward sweep also removes values
// that become dead when their last user is removed.
func DCE(f *ssa.Func) {
	live := make([]bool, len(f.Values))
	for i := len(f.Values) - 1; i >= 0; i-- {
		v := f.Values[i]
		if v.Uses == 0 && removable(v) {
			v.ResetArgs()
			continue
		}
		live[i] = true
	}

	kept := f.Values[:0]
	for i, v := range f.Values {
		if live[i] {
			kept = append(kept, v)
		}
	}
	f.Values = kept
}

// removable reports whether dropping v cannot hide a runtime error.
func removable(v *ssa.Value) bool {
	if v.IsPure() {
		return true
	}
	if v.Op == ssa.OpDiv {
		c, ok := v.Args[1].IsConst()
		return ok && c != 0
	}
	return false
}
