package ssa

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes the SSA representation of a function to w.
//
// Format:
//
//	func expr:
//	  v0 = Const [3]
//	  v1 = Const [4]
//	  v2 = Add v0 v1
//	  Return v2
func Fprint(w io.Writer, f *Func) {
	fmt.Fprintf(w, "func %s:\n", f.Name)
	for _, v := range f.Values {
		fmt.Fprintf(w, "  %s\n", v.LongString())
	}
	if f.Result != nil {
		fmt.Fprintf(w, "  Return %s\n", f.Result)
	} else {
		fmt.Fprintf(w, "  Return\n")
	}
}

// Sprint returns the SSA representation of a function as a string.
func Sprint(f *Func) string {
	var sb strings.Builder
	Fprint(&sb, f)
	return sb.String()
}

// FprintTAC writes f as three-address code. Constants are written in
// operand position, negative ones parenthesized, and temporaries are
// numbered t1, t2, ... in order:
//
//	t1 = 4 * 2
//	t2 = 3 + t1
//	return t2
func FprintTAC(w io.Writer, f *Func) {
	names := make(map[*Value]string)
	operand := func(v *Value) string {
		if c, ok := v.IsConst(); ok {
			if c < 0 {
				return "(" + strconv.FormatInt(c, 10) + ")"
			}
			return strconv.FormatInt(c, 10)
		}
		return names[v]
	}

	for _, v := range f.Values {
		if v.Op == OpConst {
			continue
		}
		names[v] = fmt.Sprintf("t%d", len(names)+1)
		info := v.Op.Info()
		switch info.NumArgs {
		case 1:
			fmt.Fprintf(w, "%s = %s%s\n", names[v], info.Symbol, operand(v.Args[0]))
		case 2:
			fmt.Fprintf(w, "%s = %s %s %s\n", names[v], operand(v.Args[0]), info.Symbol, operand(v.Args[1]))
		}
	}
	if f.Result != nil {
		if c, ok := f.Result.IsConst(); ok {
			fmt.Fprintf(w, "return %d\n", c)
		} else {
			fmt.Fprintf(w, "return %s\n", names[f.Result])
		}
	}
}
