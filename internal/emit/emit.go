// Package emit orchestrates the output side of a conversion run. It
// renders every file of the run into an in-memory plan first, then
// flushes the plan under a collision-safe diagram directory, so a run
// either lands its complete output tree or nothing at all.
package emit

import (
	"path"

	"umlc/internal/backend"
	"umlc/internal/backend/csharp"
	"umlc/internal/backend/java"
	"umlc/internal/backend/python"
	"umlc/internal/errors"
	"umlc/internal/uml"
)

// NewGenerator builds the per-target strategy bound to d. The
// namespace override applies to targets with a namespace root; Python
// has none and ignores it.
func NewGenerator(t backend.Target, d *uml.Diagram, namespace string) (backend.Generator, error) {
	switch t {
	case backend.TargetPython:
		return python.New(d), nil
	case backend.TargetCSharp:
		return csharp.New(d, namespace), nil
	case backend.TargetJava:
		return java.New(d, namespace), nil
	}
	return nil, errors.Newf("unknown target language %q", t)
}

// PlannedFile is one rendered output artifact. Path is relative to
// the diagram root and uses forward slashes.
type PlannedFile struct {
	Path    string
	Content string
}

// Plan is the complete rendered output set for one conversion run.
type Plan struct {
	dirName string
	files   []PlannedFile
}

// DirName returns the preferred diagram directory name, before any
// collision suffix.
func (p *Plan) DirName() string { return p.dirName }

// Files returns the planned artifacts in write order.
func (p *Plan) Files() []PlannedFile { return p.files }

// BuildPlan renders every file of the run: one source file per
// structure, package marker files where the target needs them,
// project descriptors, and the relationship manifest. No filesystem
// work happens here.
func BuildPlan(gen backend.Generator, d *uml.Diagram) *Plan {
	plan := &Plan{dirName: gen.DirSegment(d.Name)}

	d.Root.Walk(func(pkg *uml.Package) {
		dir := packageDir(gen, pkg)
		for _, s := range pkg.Structures {
			plan.add(dir, gen.FileName(s), gen.Render(s))
		}
		for _, f := range gen.PackageFiles(pkg) {
			plan.add(dir, f.Name, f.Content)
		}
	})
	for _, f := range gen.ProjectFiles(plan.dirName) {
		plan.add("", f.Name, f.Content)
	}
	plan.add("", ManifestName, renderManifest(d))
	return plan
}

func (p *Plan) add(dir, name, content string) {
	p.files = append(p.files, PlannedFile{Path: path.Join(dir, name), Content: content})
}

// packageDir joins the sanitized segments from the root down to pkg.
// The root itself maps to the empty path.
func packageDir(gen backend.Generator, pkg *uml.Package) string {
	var segs []string
	for _, name := range pkg.Path() {
		segs = append(segs, gen.DirSegment(name))
	}
	return path.Join(segs...)
}
