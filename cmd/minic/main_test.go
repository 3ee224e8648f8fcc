package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeTempSource(t *testing.T, src string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "input.mc")
	require.NoError(t, os.WriteFile(filename, []byte(src), 0o600))
	return filename
}

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"3 + 4 * 2", "11\n"},
		{"(3 + 4) * 2", "14\n"},
		{"10 - 2 * 3 + 8 / 4", "6\n"},
		{"-5 + 3", "-2\n"},
		{"(10 + 20) * 3 - 50 / (2 + 3)", "80\n"},
	}
	for _, tt := range tests {
		code, out, errOut := runCmd(t, "", "eval", "-e", tt.expr)
		assert.Equal(t, 0, code, tt.expr)
		assert.Equal(t, tt.want, out, tt.expr)
		assert.Empty(t, errOut, tt.expr)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	code, out, errOut := runCmd(t, "", "eval", "-e", "10 / 0")
	assert.Equal(t, 1, code)
	assert.Equal(t, "0\n", out)
	assert.Equal(t, "1:4: error: division by zero\n", errOut)
}

func TestEvalTree(t *testing.T) {
	code, out, _ := runCmd(t, "", "eval", "--tree", "-e", "(3+4)*2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "((3 + 4) * 2) = 14\n", out)
}

func TestEvalFileAndStdin(t *testing.T) {
	filename := writeTempSource(t, "// answer\n6 * 7\n")
	code, out, _ := runCmd(t, "", "eval", filename)
	assert.Equal(t, 0, code)
	assert.Equal(t, "42\n", out)

	code, out, _ = runCmd(t, "2 * (3 + 4)", "eval", "-")
	assert.Equal(t, 0, code)
	assert.Equal(t, "14\n", out)

	code, _, errOut := runCmd(t, "", "eval", "-e", "1 +", filename)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "both -e and a file given")
}

func TestEvalSyntaxErrorNamesFile(t *testing.T) {
	filename := writeTempSource(t, "1 + )")
	code, _, errOut := runCmd(t, "", "eval", filename)
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(errOut, filename+": 1:5: error: "), errOut)
}

func TestParseText(t *testing.T) {
	code, out, errOut := runCmd(t, "", "parse", "-e", "3 + 4 * 2")
	require.Equal(t, 0, code, errOut)
	want := "BINOP '+'\n" +
		"  ├─L: INT(3)\n" +
		"  └─R: BINOP '*'\n" +
		"    ├─L: INT(4)\n" +
		"    └─R: INT(2)\n"
	assert.Equal(t, want, out)
}

func TestParseJSON(t *testing.T) {
	code, out, _ := runCmd(t, "", "parse", "--format", "json", "-e", "-7")
	require.Equal(t, 0, code)

	var tree map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &tree))
	assert.Equal(t, "Negation", tree["type"])
	x, ok := tree["x"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "IntLit", x["type"])
	assert.Equal(t, float64(7), x["value"])
}

func TestParseUnknownFormat(t *testing.T) {
	code, out, errOut := runCmd(t, "", "parse", "--format", "xml", "-e", "1")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `unknown format "xml"`)
}

func TestTokens(t *testing.T) {
	code, out, errOut := runCmd(t, "", "tokens", "-e", "x = 12;")
	require.Equal(t, 0, code, errOut)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "#    KIND     TEXT         LINE:COL", lines[0])
	assert.Equal(t, "0    NAME     x            1:1", lines[2])
	assert.Equal(t, "2    LITERAL  12           1:5", lines[4])
	assert.True(t, strings.HasPrefix(lines[6], "4    EOF      <EOF>"), lines[6])
}

func TestTokensLexError(t *testing.T) {
	code, out, errOut := runCmd(t, "", "tokens", "-e", "1 @ 2")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, errOut, "1:3: error: unexpected character '@'")
}

func TestCheckSource(t *testing.T) {
	code, out, errOut := runCmd(t, "", "check", "-e", "int x; return y;")
	assert.Equal(t, 1, code)
	assert.Equal(t, "1 error(s), 0 warning(s)\n", out)
	assert.Contains(t, errOut, "use of undeclared identifier 'y'")
}

func TestCheckWerror(t *testing.T) {
	code, out, errOut := runCmd(t, "", "check", "-e", "int x; return x;")
	assert.Equal(t, 0, code)
	assert.Equal(t, "0 error(s), 1 warning(s)\n", out)
	assert.Contains(t, errOut, "'x' is used uninitialized")

	code, _, _ = runCmd(t, "", "--werror", "check", "-e", "int x; return x;")
	assert.Equal(t, 1, code)
}

func TestCheckDump(t *testing.T) {
	code, out, _ := runCmd(t, "", "check", "--dump", "-e", "int a = 1; { int b = a; }")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "int a (scope=0, line=1, init=yes)")
	assert.NotContains(t, out, " b ")
}

func TestCheckScenario(t *testing.T) {
	dir := filepath.Join("..", "..", "internal", "sema", "testdata")

	code, out, errOut := runCmd(t, "", "check", "--scenario", filepath.Join(dir, "full.yaml"))
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasSuffix(out, "2 error(s), 3 warning(s)\n"), out)
	assert.Contains(t, errOut, "incompatible pointer types")
	assert.NotContains(t, errOut, "expected")

	code, out, _ = runCmd(t, "", "check", "--scenario", filepath.Join(dir, "symtab.yaml"))
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "lookup(x) -> int (scope 0)\n")
	assert.Contains(t, out, "lookup(z) -> not found\n")
}

func TestCheckScenarioMismatch(t *testing.T) {
	filename := writeTempSource(t, `
steps:
  - {op: use, name: x, line: 1}
expect:
  errors: 0
  warnings: 0
`)
	code, _, errOut := runCmd(t, "", "check", "--scenario", filename)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "expected 0 error(s), 0 warning(s)")
}

func TestIR(t *testing.T) {
	code, out, errOut := runCmd(t, "", "ir", "-e", "3 + 4 * 2")
	require.Equal(t, 0, code, errOut)
	want := "func expr:\n" +
		"  v0 = Const [3]\n" +
		"  v1 = Const [4]\n" +
		"  v2 = Const [2]\n" +
		"  v3 = Mul v1 v2\n" +
		"  v4 = Add v0 v3\n" +
		"  Return v4\n"
	assert.Equal(t, want, out)

	code, out, _ = runCmd(t, "", "ir", "-O", "-e", "3 + 4 * 2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "func expr:\n  v4 = Const [11]\n  Return v4\n", out)

	code, out, _ = runCmd(t, "", "ir", "--tac", "-e", "3 + 4 * 2")
	assert.Equal(t, 0, code)
	assert.Equal(t, "t1 = 4 * 2\nt2 = 3 + t1\nreturn t2\n", out)
}

func TestIRPasses(t *testing.T) {
	code, out, errOut := runCmd(t, "", "ir", "--passes", "fold", "--dump-after", "fold", "--ssa-verify", "-e", "6 * 7")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "  v2 = Const [42]\n")
	assert.Contains(t, out, "  v0 = Const [6]\n")
	assert.True(t, strings.HasPrefix(errOut, "--- after fold (expr) ---\n"), errOut)

	code, _, errOut = runCmd(t, "", "ir", "--passes", "fold,bogus", "-e", "1")
	assert.Equal(t, 1, code)
	assert.Equal(t, "minic: unknown pass \"bogus\"\n", errOut)
}

func TestIRInterp(t *testing.T) {
	code, out, _ := runCmd(t, "", "ir", "-O", "--interp", "-e", "(10 + 20) * 3 - 50 / (2 + 3)")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasSuffix(out, "; result = 80\n"), out)

	code, out, errOut := runCmd(t, "", "ir", "--interp", "-e", "8 / (2 - 2)")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasSuffix(out, "; result = 0\n"), out)
	assert.Equal(t, "1:3: error: division by zero\n", errOut)
}

func TestIRSyntaxError(t *testing.T) {
	code, out, errOut := runCmd(t, "", "ir", "-e", "1 +")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error:")
}

func TestBuild(t *testing.T) {
	code, out, errOut := runCmd(t, "", "build", "-e", "3 + 4 * 2")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "define i64 @minic_expr() {")
	assert.Contains(t, out, "  %v3 = mul i64 4, 2\n")
	assert.NotContains(t, out, "@main")

	src := writeTempSource(t, "3 + 4 * 2\n")
	llFile := filepath.Join(t.TempDir(), "out.ll")
	code, out, errOut = runCmd(t, "", "build", "--main", "-O", "--triple", "x86_64-pc-linux-gnu", "-o", llFile, src)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)

	data, err := os.ReadFile(llFile)
	require.NoError(t, err)
	ll := string(data)
	assert.True(t, strings.HasPrefix(ll, "; ModuleID = 'input'\n"), ll)
	assert.Contains(t, ll, `target triple = "x86_64-pc-linux-gnu"`)
	assert.Contains(t, ll, "  ret i64 11\n")
	assert.Contains(t, ll, "define i32 @main() {")
}

func TestNoInput(t *testing.T) {
	code, _, errOut := runCmd(t, "", "eval")
	assert.Equal(t, 1, code)
	assert.Equal(t, "minic: no input: give a file or use -e\n", errOut)

	code, _, errOut = runCmd(t, "", "eval", filepath.Join(t.TempDir(), "missing.mc"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "reading source")
}

func TestVersion(t *testing.T) {
	code, out, _ := runCmd(t, "", "--version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "minic version "+Version+"\n", out)
}
