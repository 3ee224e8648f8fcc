package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-not-fish/minic/internal/codegen"
	"github.com/you-not-fish/minic/internal/eval"
	"github.com/you-not-fish/minic/internal/ssa"
	"github.com/you-not-fish/minic/internal/ssa/passes"
	"github.com/you-not-fish/minic/internal/syntax"
)

// TestE2E runs every .mc file in testdata through the whole pipeline.
// Each test:
//  1. Parses the source and evaluates the tree
//  2. Builds SSA, interprets it, runs the default passes and interprets again
//  3. Compares all three results against the .golden file
//  4. If clang is available, compiles the LLVM IR, runs it and compares
//     its output as well
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.mc")
	require.NoError(t, err)
	require.NotEmpty(t, testFiles, "no .mc test files found in testdata/")

	clang, _ := exec.LookPath("clang")

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".mc")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile, clang)
		})
	}
}

func runE2ETest(t *testing.T, srcFile, clang string) {
	t.Helper()

	golden, err := os.ReadFile(strings.TrimSuffix(srcFile, ".mc") + ".golden")
	require.NoError(t, err, "reading golden file")
	want, err := strconv.ParseInt(strings.TrimSpace(string(golden)), 10, 64)
	require.NoError(t, err, "golden file must hold one integer")

	src, err := os.ReadFile(srcFile)
	require.NoError(t, err)

	tree, diags := syntax.Parse(string(src))
	require.Empty(t, diags, "parse errors")

	got, diags := eval.Eval(tree)
	require.Empty(t, diags, "eval errors")
	assert.Equal(t, want, got, "tree evaluation")

	f := ssa.Build(baseName(srcFile), tree)
	require.NoError(t, ssa.Verify(f))
	assert.Equal(t, want, interp(t, f), "SSA before passes")

	require.NoError(t, passes.Run(f, passes.Default(), passes.Config{Verify: true}))
	assert.Equal(t, want, interp(t, f), "SSA after passes")

	if clang == "" {
		t.Log("clang not found, skipping native run")
		return
	}

	tmpDir := t.TempDir()
	llFile := filepath.Join(tmpDir, "output.ll")
	binFile := filepath.Join(tmpDir, "output")

	out, err := os.Create(llFile)
	require.NoError(t, err)
	err = codegen.Generate(out, f, codegen.Config{Main: true})
	require.NoError(t, out.Close())
	require.NoError(t, err)

	if msg, err := exec.Command(clang, "-Wno-override-module", llFile, "-o", binFile).CombinedOutput(); err != nil {
		t.Fatalf("clang failed:\n%s\n%v", msg, err)
	}
	stdout, err := exec.Command(binFile).Output()
	require.NoError(t, err, "running binary")
	assert.Equal(t, string(golden), string(stdout), "native output")
}

func interp(t *testing.T, f *ssa.Func) int64 {
	t.Helper()
	return ssa.Interp(f, func(pos syntax.Pos, msg string) {
		t.Errorf("%s: %s", pos, msg)
	})
}

func baseName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
}
