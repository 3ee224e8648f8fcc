package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minic/internal/eval"
	"github.com/you-not-fish/minic/internal/syntax"
)

func newEvalCmd(opts *options) *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate an integer expression",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd, opts, args)
			if err != nil {
				return err
			}
			res := eval.Source(src)
			report(cmd, name, res.Diags)

			w := cmd.OutOrStdout()
			if showTree {
				fmt.Fprintf(w, "%s = %d\n", syntax.String(res.Tree), res.Value)
			} else {
				fmt.Fprintln(w, res.Value)
			}
			errs, warnings := count(res.Diags)
			return status(opts, errs, warnings)
		},
	}
	cmd.Flags().BoolVar(&showTree, "tree", false, "print the parenthesized expression with the result")
	return cmd
}
