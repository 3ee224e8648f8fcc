package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minic/internal/syntax"
)

func newParseCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the expression tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unknown format %q (want text or json)", format)
			}
			src, name, err := readSource(cmd, opts, args)
			if err != nil {
				return err
			}
			x, diags := syntax.Parse(src)
			report(cmd, name, diags)

			switch format {
			case "json":
				if err := syntax.FprintJSON(cmd.OutOrStdout(), x); err != nil {
					return fmt.Errorf("writing json: %w", err)
				}
			default:
				syntax.Fprint(cmd.OutOrStdout(), x)
			}
			errs, warnings := count(diags)
			return status(opts, errs, warnings)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format (text or json)")
	return cmd
}
