package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minic/internal/diag"
)

// Version information
const Version = "0.1.0-dev"

// errFailed is returned by a command that has already reported its
// diagnostics and only needs a non-zero exit status.
var errFailed = errors.New("diagnostics reported")

type options struct {
	expr   string // inline source given with -e
	werror bool   // treat warnings as errors
}

func newRootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{
		Use:   "minic",
		Short: "Mini compiler front end",
		Long: `minic runs the stages of a small compiler front end.

Commands:
  tokens  Print the token stream
  parse   Print the expression tree
  eval    Evaluate an integer expression
  check   Run semantic checks over statements or a scenario
  ir      Print the SSA form of an expression
  build   Compile an expression to LLVM IR
`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().StringVarP(&opts.expr, "expr", "e", "", "inline source instead of a file")
	root.PersistentFlags().BoolVar(&opts.werror, "werror", false, "treat warnings as errors")

	root.AddCommand(
		newTokensCmd(opts),
		newParseCmd(opts),
		newEvalCmd(opts),
		newCheckCmd(opts),
		newIRCmd(opts),
		newBuildCmd(opts),
	)
	return root
}

// run executes the command line args and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "minic: %v\n", err)
		}
		return 1
	}
	return 0
}

// readSource returns the source text and a display name for it: the -e
// flag wins, then a file argument, where "-" means standard input.
func readSource(cmd *cobra.Command, opts *options, args []string) (string, string, error) {
	if opts.expr != "" {
		if len(args) > 0 {
			return "", "", errors.New("both -e and a file given")
		}
		return opts.expr, "", nil
	}
	if len(args) == 0 {
		return "", "", errors.New("no input: give a file or use -e")
	}

	name := args[0]
	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		name = "<stdin>"
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", "", fmt.Errorf("reading source: %w", err)
	}
	return string(data), name, nil
}

// report writes diags to the command's error stream, prefixed with the
// source name when there is one.
func report(cmd *cobra.Command, name string, diags []diag.Diagnostic) {
	w := cmd.ErrOrStderr()
	for _, d := range diags {
		if name != "" {
			fmt.Fprintf(w, "%s: %s\n", name, d)
		} else {
			fmt.Fprintln(w, d)
		}
	}
}

// status turns counted diagnostics into a command result.
func status(opts *options, errs, warnings int) error {
	if errs > 0 || (opts.werror && warnings > 0) {
		return errFailed
	}
	return nil
}

func count(diags []diag.Diagnostic) (errs, warnings int) {
	for _, d := range diags {
		if d.Severity == diag.Warning {
			warnings++
		} else {
			errs++
		}
	}
	return errs, warnings
}
