// Package rtabi defines the names and types shared between generated code
// and the C library it links against.
package rtabi

// Generated symbols
const (
	// EntryName is the function computing the expression's value.
	EntryName = "minic_expr"

	// MainName is the program entry point that prints the value.
	MainName = "main"

	// FmtI64 is the global holding the printf format for a result.
	FmtI64 = ".fmt.i64"

	// FmtI64Text is the C format string stored in FmtI64.
	FmtI64Text = "%lld\n"
)

// C library functions
const (
	FnPrintf = "printf"
)

// LLVM type names for code generation
const (
	LLVMTypeInt  = "i64"
	LLVMTypeI32  = "i32"
	LLVMTypeBool = "i1"
	LLVMTypePtr  = "ptr" // opaque pointer (LLVM 15+)
)

// FuncSignature describes an external function's signature for code generation.
type FuncSignature struct {
	Name       string   // Function name
	ReturnType string   // LLVM return type
	ParamTypes []string // LLVM parameter types
	Variadic   bool     // Whether the function takes "..."
}

// ExternalFunctions returns the signatures of the C functions generated
// programs call.
func ExternalFunctions() []FuncSignature {
	return []FuncSignature{
		{Name: FnPrintf, ReturnType: LLVMTypeI32, ParamTypes: []string{LLVMTypePtr}, Variadic: true},
	}
}
