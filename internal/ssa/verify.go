package ssa

import (
	"fmt"
	"strings"
)

// Verify checks the structural integrity of an SSA function.
// It returns an error describing all violations found, or nil if valid.
func Verify(f *Func) error {
	var errs []string

	add := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Sprintf(format, args...))
	}

	if f.Result == nil {
		add("func %s: no result", f.Name)
	}

	// Values defined so far; an argument must already be in this set.
	defined := make(map[*Value]bool, len(f.Values))
	ids := make(map[ID]*Value, len(f.Values))
	uses := make(map[*Value]int32, len(f.Values))

	for _, v := range f.Values {
		// 1. IDs are unique
		if other, ok := ids[v.ID]; ok && other != v {
			add("func %s: duplicate value ID %s", f.Name, v)
		}
		ids[v.ID] = v

		// 2. Op is valid and has the right number of arguments
		if v.Op <= OpInvalid || v.Op >= opCount {
			add("func %s, %s: invalid op %d", f.Name, v, int(v.Op))
		} else if n := v.Op.Info().NumArgs; len(v.Args) != n {
			add("func %s, %s (%s): has %d args, want %d", f.Name, v, v.Op, len(v.Args), n)
		}

		// 3. Args are non-nil and defined before use
		for i, arg := range v.Args {
			if arg == nil {
				add("func %s, %s: arg[%d] is nil", f.Name, v, i)
				continue
			}
			if !defined[arg] {
				add("func %s, %s: arg[%d] %s is not defined before use", f.Name, v, i, arg)
			}
			uses[arg]++
		}
		defined[v] = true
	}

	// 4. Result belongs to the function
	if f.Result != nil {
		if !defined[f.Result] {
			add("func %s: result %s is not in the function", f.Name, f.Result)
		}
		uses[f.Result]++
	}

	// 5. Use counts are accurate
	for _, v := range f.Values {
		if v.Uses != uses[v] {
			add("func %s, %s: Uses = %d, actual %d", f.Name, v, v.Uses, uses[v])
		}
	}

	return combineErrors(errs)
}

func combineErrors(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("ssa verification failed:\n  %s", strings.Join(errs, "\n  "))
}
