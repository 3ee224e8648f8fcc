package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minic/internal/ssa"
	"github.com/you-not-fish/minic/internal/ssa/passes"
	"github.com/you-not-fish/minic/internal/syntax"
)

// irFlags are the flags shared by commands that build SSA.
type irFlags struct {
	optimize   bool
	passList   string
	verify     bool
	dumpBefore string
	dumpAfter  string
}

func (f *irFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.optimize, "optimize", "O", false, "run the default pass pipeline")
	cmd.Flags().StringVar(&f.passList, "passes", "", "comma-separated passes to run instead of the default pipeline")
	cmd.Flags().BoolVar(&f.verify, "ssa-verify", false, "verify SSA before and after each pass")
	cmd.Flags().StringVar(&f.dumpBefore, "dump-before", "", `dump SSA before pass (name or "*")`)
	cmd.Flags().StringVar(&f.dumpAfter, "dump-after", "", `dump SSA after pass (name or "*")`)
}

// pipeline returns the passes selected by the flags.
func (f *irFlags) pipeline() ([]passes.Pass, error) {
	if f.passList == "" {
		if f.optimize {
			return passes.Default(), nil
		}
		return nil, nil
	}
	var pl []passes.Pass
	for _, name := range strings.Split(f.passList, ",") {
		name = strings.TrimSpace(name)
		p, ok := passes.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown pass %q", name)
		}
		pl = append(pl, p)
	}
	return pl, nil
}

// buildFunc parses the input and lowers it to SSA, running the selected
// passes. It returns errFailed after reporting syntax errors.
func buildFunc(cmd *cobra.Command, opts *options, flags *irFlags, args []string) (*ssa.Func, error) {
	pl, err := flags.pipeline()
	if err != nil {
		return nil, err
	}
	src, name, err := readSource(cmd, opts, args)
	if err != nil {
		return nil, err
	}
	x, diags := syntax.Parse(src)
	report(cmd, name, diags)
	if errs, _ := count(diags); errs > 0 {
		return nil, errFailed
	}

	fn := ssa.Build(funcName(name), x)
	if flags.verify {
		if err := ssa.Verify(fn); err != nil {
			return nil, fmt.Errorf("before passes: %w", err)
		}
	}
	cfg := passes.Config{
		DumpBefore: flags.dumpBefore,
		DumpAfter:  flags.dumpAfter,
		Verify:     flags.verify,
		Out:        cmd.ErrOrStderr(),
	}
	if err := passes.Run(fn, pl, cfg); err != nil {
		return nil, fmt.Errorf("pass pipeline failed for %s: %w", fn.Name, err)
	}
	return fn, nil
}

// funcName derives an SSA function name from a source name.
func funcName(source string) string {
	if source == "" || source == "<stdin>" {
		return "expr"
	}
	return strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
}

func newIRCmd(opts *options) *cobra.Command {
	var (
		flags  irFlags
		tac    bool
		interp bool
	)

	cmd := &cobra.Command{
		Use:   "ir [file]",
		Short: "Print the SSA form of an expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := buildFunc(cmd, opts, &flags, args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if tac {
				ssa.FprintTAC(w, fn)
			} else {
				ssa.Fprint(w, fn)
			}
			if !interp {
				return nil
			}

			var errs int
			v := ssa.Interp(fn, func(pos syntax.Pos, msg string) {
				errs++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: error: %s\n", pos, msg)
			})
			fmt.Fprintf(w, "; result = %d\n", v)
			return status(opts, errs, 0)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&tac, "tac", false, "print three-address code instead of SSA")
	cmd.Flags().BoolVar(&interp, "interp", false, "interpret the SSA and print the result")
	return cmd
}
