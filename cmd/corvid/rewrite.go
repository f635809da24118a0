package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/printer"
)

var (
	rewriteMatch string
	rewriteWith  string
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite <file>",
	Short: "Replace every subtree matching an expression pattern",
	Long: `Rewrite parses the source file, substitutes a fresh copy of the
template expression for every subtree that structurally matches the pattern
expression, and prints the resulting source text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := parseSnippet(rewriteMatch)
		if err != nil {
			return err
		}
		template, err := parseSnippet(rewriteWith)
		if err != nil {
			return err
		}

		file, err := loadFile(args[0])
		if err != nil {
			return err
		}

		count, err := applyRewrite(file, pattern, template)
		if err != nil {
			return err
		}
		slog.Debug("rewrite complete", "file", args[0], "replacements", count)

		fmt.Fprint(cmd.OutOrStdout(), printer.Format(file))
		fmt.Fprintf(cmd.ErrOrStderr(), "%d replacement(s)\n", count)
		return nil
	},
}

// applyRewrite validates the pattern/template pair and runs the substitution.
// An identifier pattern can match binding-name positions, which only hold
// identifiers, so any other template kind would be spliced into a slot it
// cannot fill. The engine treats that as caller misuse; here it is user
// input, so it has to surface as an error instead.
func applyRewrite(file *ast.File, pattern, template ast.Expr) (int, error) {
	if _, ok := pattern.(*ast.Ident); ok {
		if _, ok := template.(*ast.Ident); !ok {
			return 0, fmt.Errorf("pattern %q matches identifiers, which can appear as binding names; the replacement must be an identifier too, got %s", printer.Format(pattern), template.Kind())
		}
	}
	template.SetSynthetic(true)
	return ast.Replace(file, pattern, template), nil
}

func init() {
	rewriteCmd.Flags().StringVar(&rewriteMatch, "match", "", "expression pattern to search for")
	rewriteCmd.Flags().StringVar(&rewriteWith, "with", "", "expression template to substitute")
	rewriteCmd.MarkFlagRequired("match")
	rewriteCmd.MarkFlagRequired("with")
	rootCmd.AddCommand(rewriteCmd)
}
