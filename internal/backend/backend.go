// Package backend defines the target-language strategy surface shared
// by the per-language generators under backend/python, backend/csharp,
// and backend/java.
package backend

import (
	"strings"

	"umlc/internal/errors"
	"umlc/internal/uml"
)

// Target selects the language a conversion run emits.
type Target uint8

const (
	TargetPython Target = iota
	TargetCSharp
	TargetJava
)

var targetNames = [...]string{
	TargetPython: "python",
	TargetCSharp: "csharp",
	TargetJava:   "java",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "unknown"
}

// Targets lists every supported target.
func Targets() []Target {
	return []Target{TargetPython, TargetCSharp, TargetJava}
}

// ParseTarget resolves a user-facing target name. Short aliases are
// accepted alongside the canonical spellings.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python", "py":
		return TargetPython, nil
	case "csharp", "cs", "c#":
		return TargetCSharp, nil
	case "java":
		return TargetJava, nil
	}
	return 0, errors.Newf("unknown target language %q", s)
}

// File is one rendered companion file. Name is relative to the
// directory the file accompanies.
type File struct {
	Name    string
	Content string
}

// Generator is the per-target strategy: type mapping, import planning,
// structure rendering, and file naming live behind it. A generator is
// bound to one diagram for the duration of a conversion run and is not
// safe for concurrent use.
type Generator interface {
	// Target identifies the language this generator emits.
	Target() Target

	// FileName names the source file holding one structure.
	FileName(s uml.Structure) string

	// DirSegment sanitizes one package name into a directory segment.
	DirSegment(pkgName string) string

	// Render produces the complete source file for one structure.
	Render(s uml.Structure) string

	// PackageFiles returns companion files for one package directory.
	PackageFiles(pkg *uml.Package) []File

	// ProjectFiles returns run-level companion files for the diagram
	// root directory, named after it where the target requires that.
	ProjectFiles(rootDir string) []File

	// OpaqueTypes lists the distinct type names that resolved to
	// neither a table entry nor a declared structure, sorted. Only
	// meaningful after the run's structures have been rendered.
	OpaqueTypes() []string
}
