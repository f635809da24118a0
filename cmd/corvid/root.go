package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvid-lang/corvid/internal/ast"
	"github.com/corvid-lang/corvid/internal/parser"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "corvid",
	Short: "Corvid language front-end tooling",
	Long: `Corvid front-end tooling built on the shared syntax-tree core.

Commands parse source text into a tree, optionally transform it, and render
it back out as source code or a structural dump.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadFile parses the named source file, surfacing every lexer and parser
// diagnostic on stderr. The tree is returned even when diagnostics were
// reported, so best-effort tooling keeps working on broken input.
func loadFile(path string) (*ast.File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	p := parser.New(string(src), parser.WithFilename(path))
	file := p.ParseFile()

	diags := p.Diagnostics()
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
	if len(diags) > 0 {
		slog.Debug("parsed with diagnostics", "file", path, "count", len(diags))
	}
	return file, nil
}

// parseSnippet parses an expression fragment used as a pattern or template.
func parseSnippet(src string) (ast.Expr, error) {
	p := parser.New(src)
	expr := p.ParseExpr()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, fmt.Errorf("parse %q: %s", src, errs[0].Message)
	}
	if expr == nil {
		return nil, fmt.Errorf("parse %q: empty expression", src)
	}
	return expr, nil
}
