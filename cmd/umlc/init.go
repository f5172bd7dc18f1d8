package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"umlc/internal/backend"
	"umlc/internal/errors"
	"umlc/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new umlc project",
	Long: `Initialize a new umlc project by creating a project manifest (umlc.toml)
and a sample class diagram (diagram.puml). If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided,
a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringP("target", "t", "python", "default target language written to the manifest")
}

func runInit(cmd *cobra.Command, args []string) error {
	targetFlag, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	target, err := backend.ParseTarget(targetFlag)
	if err != nil {
		return err
	}

	// Resolve target directory
	var targetDir string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		targetDir = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			targetDir = filepath.Join(wd, arg)
		} else {
			targetDir = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(targetDir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(targetDir, 0o755); err != nil {
				return errors.Wrapf(err, "create directory %q", targetDir)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return errors.Newf("%q is not a directory", targetDir)
	}

	// Determine project name from directory basename
	name := strings.TrimSpace(filepath.Base(targetDir))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "umlc-project"
	}

	manifestPath := filepath.Join(targetDir, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return errors.Newf("project already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name, target)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o600); err != nil {
		return errors.Wrap(err, "write manifest")
	}

	diagramPath := filepath.Join(targetDir, "diagram.puml")
	createdDiagram := false
	if _, err := os.Stat(diagramPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(diagramPath, []byte(defaultDiagram(name)), 0o600); err != nil {
			return errors.Wrap(err, "write sample diagram")
		}
		createdDiagram = true
	}

	rel := targetDir
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, targetDir); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized umlc project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdDiagram {
		fmt.Fprintf(os.Stdout, "  - diagram.puml\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - diagram.puml (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest for a umlc
// project using the provided project name and target language.
func buildDefaultManifest(name string, target backend.Target) string {
	return fmt.Sprintf(`# umlc project manifest
[project]
name = "%s"

[output]
root = "generated"
target = "%s"
`, name, target)
}

// defaultDiagram returns the sample class diagram written by init: a
// package with an interface, an implementing class, and an enum, which
// exercises every structure kind a conversion can emit.
func defaultDiagram(name string) string {
	return fmt.Sprintf(`@startuml "%s"
package "core" {
  interface Greeter {
    + greet(): string
  }
  class ConsoleGreeter implements Greeter {
    + name: string
    + greet(): string
  }
  enum Mood {
    HAPPY
    GRUMPY
  }
}
ConsoleGreeter --> Mood : feels
@enduml
`, name)
}
