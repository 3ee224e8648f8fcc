package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minic/internal/syntax"
)

func newTokensCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readSource(cmd, opts, args)
			if err != nil {
				return err
			}
			toks, diags := syntax.Tokenize(src)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-4s %-8s %-12s %s\n", "#", "KIND", "TEXT", "LINE:COL")
			fmt.Fprintf(w, "%-4s %-8s %-12s %s\n", strings.Repeat("-", 4), strings.Repeat("-", 8),
				strings.Repeat("-", 12), strings.Repeat("-", 8))
			for i, tok := range toks {
				fmt.Fprintf(w, "%-4d %-8s %-12s %d:%d\n", i, tok.Kind, tok.Text, tok.Pos.Line(), tok.Pos.Col())
			}

			report(cmd, name, diags)
			errs, warnings := count(diags)
			return status(opts, errs, warnings)
		},
	}
}
