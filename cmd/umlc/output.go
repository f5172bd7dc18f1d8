package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"umlc/internal/diag"
	"umlc/internal/diagfmt"
	"umlc/internal/errors"
	"umlc/internal/source"
)

// errDiagnosticsReported tells main that the failure was already
// rendered to stderr as diagnostics, so the process exits 1 without a
// second error line.
var errDiagnosticsReported = errors.New("diagnostics reported")

// stderrColor resolves the --color flag against the terminal.
func stderrColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stderr)), nil
}

// renderDiagnostics pretty-prints the bag to stderr with two lines of
// source context per diagnostic.
func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	useColor, err := stderrColor(cmd)
	if err != nil {
		return err
	}
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   2,
		ShowNotes: true,
	})
	return nil
}

// renderWarnings wraps loose warning diagnostics into a bag and
// renders them.
func renderWarnings(cmd *cobra.Command, warnings []diag.Diagnostic, fs *source.FileSet) error {
	if len(warnings) == 0 {
		return nil
	}
	bag := diag.NewBag(len(warnings))
	for _, w := range warnings {
		bag.Add(w)
	}
	return renderDiagnostics(cmd, bag, fs)
}

// displayDir renders path relative to the working directory when it
// lies underneath it, matching how the output location was requested.
func displayDir(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
