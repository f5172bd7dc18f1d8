// Package browse exposes completed output trees to read-only callers.
// A tree counts as completed once the relationship manifest exists at
// its root; a directory still being emitted has no manifest and is
// refused, so concurrent conversions never leak half-written files.
package browse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"umlc/internal/emit"
	"umlc/internal/errors"
)

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
	Size  int64
}

// List returns the entries of the directory rel inside the generated
// tree rooted at root, directories first, each group sorted by name.
// An empty rel lists the root itself.
func List(root, rel string) ([]Entry, error) {
	if err := ensureGenerated(root); err != nil {
		return nil, err
	}
	dir, err := resolve(root, rel)
	if err != nil {
		return nil, err
	}
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "list %q", rel)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		e := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if info, err := de.Info(); err == nil && !e.IsDir {
			e.Size = info.Size()
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// Read returns the content of one generated file at rel inside the
// tree rooted at root.
func Read(root, rel string) ([]byte, error) {
	if err := ensureGenerated(root); err != nil {
		return nil, err
	}
	path, err := resolve(root, rel)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %q", rel)
	}
	if info.IsDir() {
		return nil, errors.Newf("read %q: is a directory", rel)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %q", rel)
	}
	return data, nil
}

// ensureGenerated checks for the relationship manifest, the marker a
// conversion run writes last.
func ensureGenerated(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrapf(err, "browse %q", root)
	}
	if !info.IsDir() {
		return errors.Newf("browse %q: not a directory", root)
	}
	if _, err := os.Stat(filepath.Join(root, emit.ManifestName)); err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrNotGenerated, "browse %q", root)
		}
		return errors.Wrapf(err, "browse %q", root)
	}
	return nil
}

// resolve joins rel onto root and rejects any path that would escape
// the tree.
func resolve(root, rel string) (string, error) {
	if rel == "" || rel == "." {
		return root, nil
	}
	joined := filepath.Join(root, filepath.FromSlash(rel))
	within, err := filepath.Rel(root, joined)
	if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", errors.Newf("path %q escapes the output tree", rel)
	}
	return joined, nil
}
