package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minic/internal/sema"
	"github.com/you-not-fish/minic/internal/syntax"
)

func newCheckCmd(opts *options) *cobra.Command {
	var (
		scenario string
		dump     bool
	)

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Run semantic checks over statements or a scenario",
		Long: `check analyzes a statement list such as

  int x = 1;
  { int y = x * 2; x = y; }
  return x;

reporting undeclared and uninitialized names, redeclarations, shadowing
and incompatible assignments. With --scenario it instead runs a YAML
scenario of symbol table operations.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scenario != "" {
				return runScenario(cmd, opts, scenario)
			}

			src, name, err := readSource(cmd, opts, args)
			if err != nil {
				return err
			}
			toks, lexDiags := syntax.Tokenize(src)
			c := sema.NewChecker()
			c.CheckTokens(toks)
			if dump {
				fmt.Fprint(cmd.OutOrStdout(), c.Table())
			}

			report(cmd, name, lexDiags)
			report(cmd, name, c.Diagnostics().Items())
			lexErrs, _ := count(lexDiags)
			errs, warnings := lexErrs+c.Errors(), c.Warnings()
			fmt.Fprintf(cmd.OutOrStdout(), "%d error(s), %d warning(s)\n", errs, warnings)
			return status(opts, errs, warnings)
		},
	}
	cmd.Flags().StringVar(&scenario, "scenario", "", "run a YAML scenario file")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the global symbol table after checking")
	return cmd
}

func runScenario(cmd *cobra.Command, opts *options, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()

	sc, err := sema.LoadScenario(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	rep, err := sema.RunScenario(sc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	w := cmd.OutOrStdout()
	for _, l := range rep.Lookups {
		fmt.Fprintln(w, l)
	}
	report(cmd, path, rep.Diagnostics)
	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", rep.Errors, rep.Warnings)

	if !rep.Matches(sc.Expect) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: expected %d error(s), %d warning(s)\n",
			path, sc.Expect.Errors, sc.Expect.Warnings)
		return errFailed
	}
	return status(opts, rep.Errors, rep.Warnings)
}
