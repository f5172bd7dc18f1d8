// Package main implements the umlc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"umlc/internal/errors"
	"umlc/internal/logger"
	"umlc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "umlc",
	Short: "UML class diagram to source code converter",
	Long: `umlc converts PlantUML-style class diagrams into Python, C#, or Java
source skeletons: one file per class, interface, and enum, plus a
relationship manifest per diagram.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, err := cmd.Root().PersistentFlags().GetString("log")
		if err != nil {
			return err
		}
		return logger.Initialize(mode)
	},
}

// main registers the subcommands and persistent flags, executes the
// root command, and maps the outcome onto the exit codes: 0 on
// success, 1 when diagnostics were reported, 2 for usage and IO
// failures.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("log", "off", "structured log output (json|off)")

	err := rootCmd.Execute()
	logger.Sync()
	if err == nil {
		return
	}
	if errors.Is(err, errDiagnosticsReported) {
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
	}
	os.Exit(2)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
