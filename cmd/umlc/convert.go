package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"umlc/internal/backend"
	"umlc/internal/diag"
	"umlc/internal/driver"
	"umlc/internal/errors"
	"umlc/internal/project"
	"umlc/internal/source"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] file.puml",
	Short: "Convert a class diagram into source skeletons",
	Long: `Convert parses a PlantUML-style class diagram and writes one source
file per class, interface, and enum under a directory named after the
diagram, plus a relationship manifest. The target language comes from
--target or from the [output] section of umlc.toml.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("target", "t", "", "output language (python|csharp|java)")
	convertCmd.Flags().StringP("out", "o", "", "output root directory")
	convertCmd.Flags().StringP("namespace", "n", "", "namespace override for csharp/java")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	targetFlag, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	outFlag, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	namespaceFlag, err := cmd.Flags().GetString("namespace")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	text, err := os.ReadFile(inputPath)
	if err != nil {
		return errors.Wrapf(err, "read input %q", inputPath)
	}

	// Manifest defaults fill in whatever the flags leave unset.
	manifest, err := discoverManifest(cmd, inputPath)
	if err != nil {
		return err
	}

	req := driver.Request{
		Text:           text,
		Path:           inputPath,
		Namespace:      namespaceFlag,
		OutputRoot:     outFlag,
		MaxDiagnostics: maxDiagnostics,
	}
	switch {
	case targetFlag != "":
		req.Target, err = backend.ParseTarget(targetFlag)
		if err != nil {
			return err
		}
	case manifest != nil && manifest.HasTarget:
		req.Target = manifest.Target
	default:
		return errors.WithHint(
			errors.New("no target language selected"),
			"pass --target python|csharp|java or set [output].target in umlc.toml")
	}
	if outFlag == "" && manifest != nil {
		req.OutputRoot = manifest.OutputRoot
	}
	if namespaceFlag == "" && manifest != nil {
		req.Namespace = manifest.Namespace
	}

	res, err := driver.Convert(cmd.Context(), req)
	if err != nil {
		var runErr *driver.RunError
		if errors.As(err, &runErr) {
			if renderErr := renderDiagnostics(cmd, runErr.Bag, runErr.FileSet); renderErr != nil {
				return renderErr
			}
			if timings {
				fmt.Fprint(os.Stdout, res.Timings.Summary())
			}
			return errDiagnosticsReported
		}
		return err
	}

	if err := renderWarnings(cmd, res.Warnings, res.FileSet); err != nil {
		return err
	}
	if !quiet {
		fmt.Fprintf(os.Stdout, "generated %d files in %s\n", res.Files, displayDir(res.RootDir))
	}
	if timings {
		fmt.Fprint(os.Stdout, res.Timings.Summary())
	}
	return nil
}

// discoverManifest walks up from the input file looking for umlc.toml.
// A missing manifest is not an error; a broken one is reported as a
// project diagnostic.
func discoverManifest(cmd *cobra.Command, inputPath string) (*project.Manifest, error) {
	manifestPath, found, err := project.Find(filepath.Dir(inputPath))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	manifest, err := project.Load(manifestPath)
	if err != nil {
		return nil, reportManifestError(cmd, manifestPath, err)
	}
	return manifest, nil
}

// reportManifestError renders a manifest failure as a PRJ diagnostic
// and returns the sentinel so the process exits 1.
func reportManifestError(cmd *cobra.Command, manifestPath string, err error) error {
	code := diag.PrjManifestBad
	if errors.Is(err, project.ErrBadTarget) {
		code = diag.PrjBadTarget
	}
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(code, source.Span{}, err.Error()))

	// The diagnostic has no span; register the manifest so the header
	// names it as the offending file.
	fs := source.NewFileSet()
	fs.AddVirtual(manifestPath, nil)
	if renderErr := renderDiagnostics(cmd, bag, fs); renderErr != nil {
		return renderErr
	}
	return errDiagnosticsReported
}
