package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corvid-lang/corvid/internal/ast"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and dump its syntax tree as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := loadFile(args[0])
		if err != nil {
			return err
		}

		out, err := ast.EncodeYAML(file)
		if err != nil {
			return fmt.Errorf("encode tree: %w", err)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), string(out))
		return err
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
