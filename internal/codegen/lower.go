package codegen

import (
	"strconv"

	"github.com/you-not-fish/minic/internal/rtabi"
	"github.com/you-not-fish/minic/internal/ssa"
)

// lowerFunc emits the LLVM IR for a single SSA function.
func (g *generator) lowerFunc(fn *ssa.Func) {
	g.e.emitComment("func " + fn.Name)
	g.e.emit("define %s @%s() {", rtabi.LLVMTypeInt, rtabi.EntryName)
	g.e.emit("entry:")

	for _, v := range fn.Values {
		g.lowerValue(v)
	}

	g.e.emitInst("ret %s %s", rtabi.LLVMTypeInt, g.operand(fn.Result))
	g.e.emit("}")
}

// lowerValue emits the LLVM IR for a single SSA value.
func (g *generator) lowerValue(v *ssa.Value) {
	switch v.Op {
	// Constants are inlined at use sites; no instruction emitted.
	case ssa.OpConst:
		return

	case ssa.OpAdd:
		g.emitBinOp("add", v)
	case ssa.OpSub:
		g.emitBinOp("sub", v)
	case ssa.OpMul:
		g.emitBinOp("mul", v)
	case ssa.OpNeg:
		g.e.emitInst("%s = sub %s 0, %s", valueName(v), rtabi.LLVMTypeInt, g.operand(v.Args[0]))
	case ssa.OpDiv:
		g.lowerDiv(v)

	default:
		g.e.emitInst("; unknown op %s", v.Op)
		g.e.emitInst("unreachable")
	}
}

// lowerDiv emits a division that yields 0 for a zero divisor and wraps
// for MinInt64 / -1, where a bare sdiv would be undefined.
func (g *generator) lowerDiv(v *ssa.Value) {
	x, y := g.operand(v.Args[0]), g.operand(v.Args[1])
	i64 := rtabi.LLVMTypeInt

	if c, ok := v.Args[1].IsConst(); ok {
		switch c {
		case 0:
			g.e.emitInst("%s = add %s 0, 0 ; division by zero", valueName(v), i64)
		case -1:
			g.e.emitInst("%s = sub %s 0, %s", valueName(v), i64, x)
		default:
			g.emitBinOp("sdiv", v)
		}
		return
	}

	zero := g.e.nextTmp()
	g.e.emitInst("%s = icmp eq %s %s, 0", zero, i64, y)
	minus := g.e.nextTmp()
	g.e.emitInst("%s = icmp eq %s %s, -1", minus, i64, y)
	bad := g.e.nextTmp()
	g.e.emitInst("%s = or %s %s, %s", bad, rtabi.LLVMTypeBool, zero, minus)
	safe := g.e.nextTmp()
	g.e.emitInst("%s = select %s %s, %s 1, %s %s", safe, rtabi.LLVMTypeBool, bad, i64, i64, y)
	quo := g.e.nextTmp()
	g.e.emitInst("%s = sdiv %s %s, %s", quo, i64, x, safe)
	neg := g.e.nextTmp()
	g.e.emitInst("%s = sub %s 0, %s", neg, i64, x)
	res := g.e.nextTmp()
	g.e.emitInst("%s = select %s %s, %s %s, %s %s", res, rtabi.LLVMTypeBool, minus, i64, neg, i64, quo)
	g.e.emitInst("%s = select %s %s, %s 0, %s %s", valueName(v), rtabi.LLVMTypeBool, zero, i64, i64, res)
}

// operand returns the LLVM IR operand string for an SSA value.
// Constants are inlined, others use their %vN name.
func (g *generator) operand(v *ssa.Value) string {
	if c, ok := v.IsConst(); ok {
		return strconv.FormatInt(c, 10)
	}
	return valueName(v)
}

// emitBinOp emits a binary operation instruction.
func (g *generator) emitBinOp(inst string, v *ssa.Value) {
	g.e.emitInst("%s = %s %s %s, %s", valueName(v), inst, rtabi.LLVMTypeInt, g.operand(v.Args[0]), g.operand(v.Args[1]))
}
