package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/minic/internal/codegen"
)

func newBuildCmd(opts *options) *cobra.Command {
	var (
		flags  irFlags
		output string
		cfg    codegen.Config
	)

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Compile an expression to LLVM IR",
		Long: `build compiles an expression to textual LLVM IR. The expression becomes
a function minic_expr returning i64. With --main the module also defines
main, which prints the result, so it can be linked with clang:

  minic build --main -O -o expr.ll expr.mc
  clang expr.ll -o expr
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := buildFunc(cmd, opts, &flags, args)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return codegen.Generate(cmd.OutOrStdout(), fn, cfg)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			if err := codegen.Generate(f, fn, cfg); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&cfg.Main, "main", false, "emit a main function that prints the result")
	cmd.Flags().StringVar(&cfg.Triple, "triple", "", "target triple")
	return cmd
}
