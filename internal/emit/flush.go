package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"umlc/internal/diag"
)

// IOError ties a failed filesystem operation to its diagnostic code.
// The driver unwraps it with errors.As to report the matching code in
// the run's bag.
type IOError struct {
	Code diag.Code
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Flush writes the plan under outputRoot and returns the diagram
// directory it created. A failure partway through removes everything
// written so far, so no half-finished tree survives.
func (p *Plan) Flush(outputRoot string) (string, error) {
	if outputRoot == "" {
		outputRoot = "."
	}
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return "", &IOError{Code: diag.IOOutputRoot, Op: "create output root", Path: outputRoot, Err: err}
	}
	root, err := reserveDir(outputRoot, p.dirName)
	if err != nil {
		return "", err
	}
	for _, f := range p.files {
		dst := filepath.Join(root, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			_ = os.RemoveAll(root)
			return "", &IOError{Code: diag.IOCreateDir, Op: "create directory", Path: filepath.Dir(dst), Err: err}
		}
		if err := os.WriteFile(dst, []byte(f.Content), 0o644); err != nil {
			_ = os.RemoveAll(root)
			return "", &IOError{Code: diag.IOWriteFile, Op: "write file", Path: dst, Err: err}
		}
	}
	return root, nil
}

// reserveDir creates and returns the first free candidate directory:
// base, then base_2, base_3, and so on. os.Mkdir makes the existence
// probe and the reservation a single step.
func reserveDir(outputRoot, base string) (string, error) {
	name := base
	for n := 2; ; n++ {
		candidate := filepath.Join(outputRoot, name)
		err := os.Mkdir(candidate, 0o755)
		if err == nil {
			return candidate, nil
		}
		if !os.IsExist(err) {
			return "", &IOError{Code: diag.IOCreateDir, Op: "create diagram directory", Path: candidate, Err: err}
		}
		name = fmt.Sprintf("%s_%d", base, n)
	}
}
