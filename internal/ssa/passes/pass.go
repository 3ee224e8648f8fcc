// Package passes implements optimization passes over SSA functions.
package passes

import (
	"fmt"
	"io"
	"os"

	"github.com/you-not-fish/minic/internal/ssa"
)

// Pass describes a single SSA optimization pass.
type Pass struct {
	Name string
	Fn   func(f *ssa.Func)
}

// Config controls pass execution behavior.
type Config struct {
	DumpBefore string    // dump SSA before this pass ("*" for all)
	DumpAfter  string    // dump SSA after this pass ("*" for all)
	Verify     bool      // verify SSA before/after each pass
	Out        io.Writer // destination for dumps; os.Stderr if nil
}

// Default returns the standard optimization pipeline.
func Default() []Pass {
	return []Pass{
		{Name: "simplify", Fn: Simplify},
		{Name: "cse", Fn: CSE},
		{Name: "fold", Fn: Fold},
		{Name: "dce", Fn: DCE},
	}
}

// Lookup returns the named pass from the default pipeline.
func Lookup(name string) (Pass, bool) {
	for _, p := range Default() {
		if p.Name == name {
			return p, true
		}
	}
	return Pass{}, false
}

// Run executes the given passes on f in order.
func Run(f *ssa.Func, passes []Pass, cfg Config) error {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	for _, p := range passes {
		if shouldDump(cfg.DumpBefore, p.Name) {
			fmt.Fprintf(out, "--- before %s (%s) ---\n", p.Name, f.Name)
			ssa.Fprint(out, f)
			fmt.Fprintln(out)
		}

		if cfg.Verify {
			if err := ssa.Verify(f); err != nil {
				return fmt.Errorf("verify before %s: %w", p.Name, err)
			}
		}

		p.Fn(f)

		if cfg.Verify {
			if err := ssa.Verify(f); err != nil {
				return fmt.Errorf("verify after %s: %w", p.Name, err)
			}
		}

		if shouldDump(cfg.DumpAfter, p.Name) {
			fmt.Fprintf(out, "--- after %s (%s) ---\n", p.Name, f.Name)
			ssa.Fprint(out, f)
			fmt.Fprintln(out)
		}
	}
	return nil
}

func shouldDump(pattern, name string) bool {
	return pattern == "*" || pattern == name
}
