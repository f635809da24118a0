package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corvid-lang/corvid/internal/printer"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Reprint a source file from its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := loadFile(args[0])
		if err != nil {
			return err
		}

		out := printer.Format(file)
		if fmtWrite {
			return os.WriteFile(args[0], []byte(out), 0o644)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "write result back to the source file")
	rootCmd.AddCommand(fmtCmd)
}
