package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes an indented tree view of the expression to w:
//
//	BINOP '+'
//	  ├─L: INT(3)
//	  └─R: BINOP '*'
//	    ├─L: INT(4)
//	    └─R: INT(2)
func Fprint(w io.Writer, x Expr) {
	p := &printer{w: w}
	p.print(x, 0, "")
}

type printer struct {
	w io.Writer
}

func (p *printer) print(x Expr, depth int, prefix string) {
	if x == nil {
		return
	}
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", depth), prefix)

	switch n := x.(type) {
	case *IntLit:
		fmt.Fprintf(p.w, "INT(%d)\n", n.Value)

	case *Operation:
		fmt.Fprintf(p.w, "BINOP '%s'\n", n.Op)
		p.print(n.X, depth+1, "├─L: ")
		p.print(n.Y, depth+1, "└─R: ")

	case *Negation:
		fmt.Fprintf(p.w, "NEG\n")
		p.print(n.X, depth+1, "└─ ")

	default:
		fmt.Fprintf(p.w, "%T\n", x)
	}
}

// String returns the expression in fully parenthesized infix form,
// e.g. "((3 + (4 * 2)) - 1)". Negations print as "-x".
func String(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch n := x.(type) {
	case *IntLit:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *Operation:
		b.WriteByte('(')
		writeExpr(b, n.X)
		b.WriteString(" " + n.Op.String() + " ")
		writeExpr(b, n.Y)
		b.WriteByte(')')
	case *Negation:
		b.WriteByte('-')
		writeExpr(b, n.X)
	case nil:
		b.WriteString("<nil>")
	default:
		fmt.Fprintf(b, "%T", x)
	}
}
