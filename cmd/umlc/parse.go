package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"umlc/internal/diagfmt"
	"umlc/internal/driver"
	"umlc/internal/errors"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.puml|directory>",
	Short: "Parse a diagram file and dump its model",
	Long: `Parse analyzes a class diagram file, or every diagram file under a
directory, and dumps the resulting model: packages, structures,
members, and relationships with their resolution state`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	st, err := os.Stat(inputPath)
	if err != nil {
		return errors.Wrapf(err, "stat %q", inputPath)
	}

	if !st.IsDir() {
		result, err := driver.Parse(inputPath, maxDiagnostics)
		if err != nil {
			return err
		}
		if result.Bag.Len() > 0 {
			result.Bag.Sort()
			if err := renderDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
				return err
			}
		}
		switch format {
		case "pretty":
			err = diagfmt.FormatDiagramPretty(os.Stdout, result.Diagram)
		case "json":
			err = diagfmt.FormatDiagramJSON(os.Stdout, result.Diagram)
		default:
			return errors.Newf("unknown format: %s", format)
		}
		if err != nil {
			return err
		}
		if result.Bag.HasErrors() {
			return errDiagnosticsReported
		}
		return nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	fs, results, err := driver.ParseDir(cmd.Context(), inputPath, maxDiagnostics, jobs)
	if err != nil {
		return err
	}

	hadErrors := false
	for _, r := range results {
		if r.Bag.Len() > 0 {
			r.Bag.Sort()
			if err := renderDiagnostics(cmd, r.Bag, fs); err != nil {
				return err
			}
		}
		if r.Bag.HasErrors() {
			hadErrors = true
		}
	}

	switch format {
	case "pretty":
		for idx, r := range results {
			if !quiet {
				fmt.Fprintf(os.Stdout, "== %s ==\n", filepath.ToSlash(r.Path))
			}
			if r.Diagram != nil {
				if err := diagfmt.FormatDiagramPretty(os.Stdout, r.Diagram); err != nil {
					return err
				}
			}
			if !quiet && idx < len(results)-1 {
				fmt.Fprintln(os.Stdout)
			}
		}
	case "json":
		output := make(map[string]*diagfmt.DiagramOutput, len(results))
		for _, r := range results {
			if r.Diagram == nil {
				output[filepath.ToSlash(r.Path)] = nil
				continue
			}
			d := diagfmt.BuildDiagramOutput(r.Diagram)
			output[filepath.ToSlash(r.Path)] = &d
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	default:
		return errors.Newf("unknown format: %s", format)
	}

	if hadErrors {
		return errDiagnosticsReported
	}
	return nil
}
