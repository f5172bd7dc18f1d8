package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

type (
	// FileID uniquely identifies a file within a FileSet.
	FileID uint32
	// FileFlags records how a file entered the set.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the content of one diagram source plus its line index,
// which maps byte offsets to line/column positions.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// FileSet owns every diagram source loaded for a run and resolves
// spans back to line/column positions.
type FileSet struct {
	files []File
	index map[string]FileID // normalized path -> latest id
}

func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]File, 0),
		index: make(map[string]FileID),
	}
}

// Add stores normalized content under path and returns a fresh FileID.
// Re-adding a path keeps the old entry and points the index at the new one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(n)
	p := normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    p,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.index[p] = id
	return id
}

// Load reads a file from disk, strips a UTF-8 BOM, normalizes CRLF
// line endings, and adds the result.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- the path comes from the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	content, hadBOM := stripBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content with the FileVirtual flag set.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// GetLatest returns the most recent FileID registered for path.
func (fs *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fs.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into start and end line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// Line returns the content of the given 1-based line without the
// trailing newline. Out-of-range lines come back empty.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}

	nLines, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index overflow: %w", err))
	}
	nBytes, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < nLines:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}

	end := nBytes
	if lineNum-1 < nLines {
		end = f.LineIdx[lineNum-1]
	}

	if start >= nBytes {
		return ""
	}
	if end > nBytes {
		end = nBytes
	}
	return string(f.Content[start:end])
}

// FormatPath renders the file path for diagnostics.
// Modes: "absolute", "relative", "basename", "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := filepath.Rel(baseDir, f.Path); err == nil {
			return filepath.ToSlash(rel)
		}
		return f.Path

	case "basename":
		return filepath.Base(f.Path)

	case "auto":
		// Short or relative paths read fine as-is; long absolute ones
		// collapse to the basename.
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return filepath.Base(f.Path)

	default:
		return f.Path
	}
}
