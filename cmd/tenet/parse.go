package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tenet/internal/diagfmt"
	"tenet/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.c",
	Short: "Parse a C source file and dump its tree",
	Long: `Parse builds the syntax tree of a C source file and prints it one node
per line, children indented beneath their parent. No rules are run.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	diagfmt.DumpAST(os.Stdout, result.Builder, result.Interner, result.FileSet, result.ASTFile)

	if result.Bag.HasBlockers() {
		return silentExit(cmd, 2)
	}
	return nil
}
