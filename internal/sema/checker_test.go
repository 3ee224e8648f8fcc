package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

func TestCheckUse(t *testing.T) {
	c := NewChecker()
	_, err := c.Declare("ready", types.Int, true, 1)
	require.NoError(t, err)
	_, err = c.Declare("pending", types.Float, false, 2)
	require.NoError(t, err)

	assert.NotNil(t, c.CheckUse("ready", 3))
	assert.Zero(t, c.Errors())
	assert.Zero(t, c.Warnings())

	assert.NotNil(t, c.CheckUse("pending", 4))
	assert.Equal(t, 1, c.Warnings())

	assert.Nil(t, c.CheckUse("missing", 5))
	assert.Equal(t, 1, c.Errors())

	items := c.Diagnostics().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "line 4: warning: 'pending' is used uninitialized", items[0].String())
	assert.Equal(t, "line 5: error: use of undeclared identifier 'missing'", items[1].String())
}

func TestMarkInitialized(t *testing.T) {
	c := NewChecker()
	_, _ = c.Declare("v", types.Char, false, 1)

	assert.True(t, c.MarkInitialized("v"))
	assert.False(t, c.MarkInitialized("w"))

	c.CheckUse("v", 2)
	assert.Zero(t, c.Warnings())
	assert.Zero(t, c.Errors())
}

func TestCheckAssignment(t *testing.T) {
	tests := []struct {
		lhs, rhs types.Type
		errors   int
		warnings int
	}{
		{types.Int, types.Int, 0, 0},
		{types.Int, types.Float, 0, 1},
		{types.Float, types.Int, 0, 1},
		{types.Char, types.Int, 0, 1},
		{types.Float, types.Char, 0, 0},
		{types.IntPtr, types.FloatPtr, 1, 0},
		{types.IntPtr, types.Int, 1, 0},
		{types.Void, types.Int, 1, 0},
	}

	for _, tt := range tests {
		c := NewChecker()
		compat := c.CheckAssignment("v", tt.lhs, tt.rhs, 7)
		assert.Equal(t, types.AssignCompat(tt.lhs, tt.rhs), compat)
		assert.Equal(t, tt.errors, c.Errors(), "%s <- %s", tt.lhs, tt.rhs)
		assert.Equal(t, tt.warnings, c.Warnings(), "%s <- %s", tt.lhs, tt.rhs)
	}

	c := NewChecker()
	c.CheckAssignment("ptr", types.IntPtr, types.FloatPtr, 7)
	items := c.Diagnostics().Items()
	require.Len(t, items, 1)
	assert.Equal(t, diag.Semantic, items[0].Stage)
	assert.Equal(t, 7, items[0].Line)
	assert.Equal(t, "assignment to 'ptr': incompatible pointer types (int* <- float*)", items[0].Msg)
}

func TestCheckerSharesTableDiagnostics(t *testing.T) {
	c := NewChecker()
	_, _ = c.Declare("x", types.Int, true, 1)
	_, err := c.Declare("x", types.Int, true, 2)
	require.Error(t, err)

	c.PushScope()
	_, err = c.Declare("x", types.Float, true, 3)
	require.NoError(t, err)
	c.PopScope()

	assert.Equal(t, 1, c.Errors())
	assert.Equal(t, 1, c.Warnings())
	assert.Equal(t, c.Table().Errors(), c.Errors())
	assert.Equal(t, types.Int, c.Table().Lookup("x").Type)
}

func TestCheckTokens(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		errors   int
		warnings int
	}{
		{"clean", "int x = 1; int y; y = x + 2; return y;", 0, 0},
		{"uninitialized", "int x; return x;", 0, 1},
		{"self assignment", "int y; y = y + 1; return y;", 0, 1},
		{"undeclared", "return z;", 1, 0},
		{"assign undeclared", "z = 1;", 1, 0},
		{"shadow", "int x = 1; { int x = 2; return x; } return x;", 0, 1},
		{"redeclared", "int a; int a;", 1, 0},
		{"out of scope", "{ int t = 1; } return t;", 1, 0},
		{"nested blocks", "int a = 1; { int b = a; { int c = a * b; return c; } }", 0, 0},
		{"unmatched brace", "}", 1, 0},
		{"unclosed brace", "{ int q = 1;", 1, 0},
		{"missing name", "int = 5; int ok = 1;", 1, 0},
		{"missing assign", "int x = 1; x 5;", 1, 0},
		{"bad expression", "int x = (1 + ; return 0;", 1, 0},
		{"missing paren", "int x = (1 + 2; return 0;", 1, 0},
		{"stray literal", "5; return 0;", 1, 0},
		{"empty statements", ";; int x = -(2);", 0, 0},
		{"empty input", "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, lexErrs := syntax.Tokenize(tt.src)
			require.Empty(t, lexErrs)

			c := NewChecker()
			c.CheckTokens(toks)
			assert.Equal(t, tt.errors, c.Errors(), "diagnostics: %v", c.Diagnostics().Items())
			assert.Equal(t, tt.warnings, c.Warnings(), "diagnostics: %v", c.Diagnostics().Items())
			assert.Equal(t, 0, c.Table().Scope())
		})
	}
}

func TestCheckTokensPositions(t *testing.T) {
	toks, _ := syntax.Tokenize("int a;\nreturn b + a;")
	c := NewChecker()
	c.CheckTokens(toks)

	items := c.Diagnostics().Items()
	require.Len(t, items, 2)
	assert.Equal(t, "2:8: error: use of undeclared identifier 'b'", items[0].String())
	assert.Equal(t, "2:12: warning: 'a' is used uninitialized", items[1].String())
}

func TestCheckTokensSkipsLexErrors(t *testing.T) {
	toks, lexErrs := syntax.Tokenize("int x = 1 @ + 2; return x;")
	require.Len(t, lexErrs, 1)

	c := NewChecker()
	c.CheckTokens(toks)
	assert.Zero(t, c.Errors())
	assert.Zero(t, c.Warnings())
}

func TestCheckTokensWithoutEOF(t *testing.T) {
	toks, _ := syntax.Tokenize("int x = 1;")
	c := NewChecker()
	c.CheckTokens(toks[:len(toks)-1])
	assert.Zero(t, c.Errors())
	assert.NotNil(t, c.Table().Lookup("x"))

	c = NewChecker()
	c.CheckTokens(nil)
	assert.Zero(t, c.Diagnostics().Len())
}
