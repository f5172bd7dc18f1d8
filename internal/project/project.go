// Package project locates and loads umlc.toml, the optional per-project
// manifest supplying defaults for the convert command: output root,
// target language, and namespace override. CLI flags always win over
// manifest values.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"umlc/internal/backend"
	"umlc/internal/errors"
)

// ManifestName is the file the walk-up discovery looks for.
const ManifestName = "umlc.toml"

// ErrBadTarget reports that [output].target names no supported
// language. Callers distinguish it from other manifest problems with
// errors.Is.
var ErrBadTarget = errors.New("unsupported target in manifest")

// Manifest is one parsed umlc.toml.
type Manifest struct {
	// Path is the manifest file, Dir its directory. Relative paths in
	// the manifest resolve against Dir.
	Path string
	Dir  string

	// Name is the project name from [project].
	Name string
	// OutputRoot is [output].root resolved against Dir; empty when the
	// manifest does not set it.
	OutputRoot string
	// Target is the parsed [output].target.
	Target    backend.Target
	HasTarget bool
	// Namespace is the [output].namespace override.
	Namespace string
}

type manifestFile struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Output struct {
		Root      string `toml:"root"`
		Target    string `toml:"target"`
		Namespace string `toml:"namespace"`
	} `toml:"output"`
}

// Find walks up from startDir looking for umlc.toml. ok is false when
// no parent holds one.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, errors.Wrapf(err, "stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load parses one manifest file. [project].name must be present;
// everything under [output] is optional.
func Load(path string) (*Manifest, error) {
	var cfg manifestFile
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	if !md.IsDefined("project") {
		return nil, errors.Newf("%s: missing [project] section", path)
	}
	name := strings.TrimSpace(cfg.Project.Name)
	if !md.IsDefined("project", "name") || name == "" {
		return nil, errors.Newf("%s: missing [project].name", path)
	}

	m := &Manifest{
		Path:      path,
		Dir:       filepath.Dir(path),
		Name:      name,
		Namespace: strings.TrimSpace(cfg.Output.Namespace),
	}
	if root := strings.TrimSpace(cfg.Output.Root); root != "" {
		if filepath.IsAbs(root) {
			m.OutputRoot = filepath.Clean(root)
		} else {
			m.OutputRoot = filepath.Join(m.Dir, root)
		}
	}
	if md.IsDefined("output", "target") {
		target, err := backend.ParseTarget(cfg.Output.Target)
		if err != nil {
			return nil, errors.Wrapf(ErrBadTarget, "%s: [output].target = %q", path, cfg.Output.Target)
		}
		m.Target = target
		m.HasTarget = true
	}
	return m, nil
}

// Discover combines Find and Load. It returns ErrNoProject when no
// manifest exists between startDir and the filesystem root.
func Discover(startDir string) (*Manifest, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoProject, "no %s above %s", ManifestName, startDir)
	}
	return Load(path)
}
