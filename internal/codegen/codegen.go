// Package codegen translates SSA functions into textual LLVM IR.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/minic/internal/rtabi"
	"github.com/you-not-fish/minic/internal/ssa"
)

// Config controls module generation.
type Config struct {
	Triple string // target triple; left to the compiler driver when empty
	Main   bool   // also emit a main function that prints the result
}

type generator struct {
	e   *emitter
	cfg Config
}

// Generate writes an LLVM module for f to w. The function is emitted as
// rtabi.EntryName taking no arguments and returning i64.
func Generate(w io.Writer, f *ssa.Func, cfg Config) error {
	if err := ssa.Verify(f); err != nil {
		return fmt.Errorf("codegen: %w", err)
	}

	g := &generator{e: &emitter{w: w}, cfg: cfg}
	g.header(f)
	g.lowerFunc(f)
	if cfg.Main {
		g.e.emitLine()
		g.lowerMain()
	}
	return g.e.err
}

func (g *generator) header(f *ssa.Func) {
	g.e.emit("; ModuleID = '%s'", f.Name)
	g.e.emit("source_filename = %q", f.Name)
	if g.cfg.Triple != "" {
		g.e.emit("target triple = %q", g.cfg.Triple)
	}
	g.e.emitLine()

	if !g.cfg.Main {
		return
	}
	g.e.emit("@%s = private unnamed_addr constant [%d x i8] c\"%s\\00\"",
		rtabi.FmtI64, len(rtabi.FmtI64Text)+1, llvmEscapeString(rtabi.FmtI64Text))
	g.e.emitLine()
	for _, fn := range rtabi.ExternalFunctions() {
		params := strings.Join(fn.ParamTypes, ", ")
		if fn.Variadic {
			params += ", ..."
		}
		g.e.emit("declare %s @%s(%s)", fn.ReturnType, fn.Name, params)
	}
	g.e.emitLine()
}

// lowerMain emits a main that prints the entry function's result.
func (g *generator) lowerMain() {
	g.e.emit("define %s @%s() {", rtabi.LLVMTypeI32, rtabi.MainName)
	g.e.emit("entry:")
	r := g.e.nextTmp()
	g.e.emitInst("%s = call %s @%s()", r, rtabi.LLVMTypeInt, rtabi.EntryName)
	t := g.e.nextTmp()
	g.e.emitInst("%s = call %s (%s, ...) @%s(%s @%s, %s %s)", t,
		rtabi.LLVMTypeI32, rtabi.LLVMTypePtr, rtabi.FnPrintf,
		rtabi.LLVMTypePtr, rtabi.FmtI64, rtabi.LLVMTypeInt, r)
	g.e.emitInst("ret %s 0", rtabi.LLVMTypeI32)
	g.e.emit("}")
}

// llvmEscapeString returns an LLVM IR escaped string literal.
// Non-printable characters and backslash are escaped as \HH.
func llvmEscapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' || c == '"' || c < 0x20 || c >= 0x7f {
			fmt.Fprintf(&b, "\\%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}
