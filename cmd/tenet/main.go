package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tenet/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tenet",
	Short: "Safety-rules linter for C sources",
	Long:  `Tenet checks C source files against a configurable set of safety-critical coding rules`,
}

// exitCodeError carries a process exit code through cobra's error
// plumbing. Diagnostics were already printed by the time it is raised.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string { return "" }

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 256, "maximum number of diagnostics to show per file")

	if err := rootCmd.Execute(); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			os.Exit(ec.code)
		}
		// Flag misuse, configuration errors, internal failures.
		os.Exit(2)
	}
}

// isTerminal reports whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the persistent --color flag against the stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}
