package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF rewrites every \r\n pair as \n. Lone \r bytes stay.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func stripBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}
	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}
	return content, false
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, 16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i)) // #nosec G115 -- i < len(content) <= max uint32
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Binary search for the last newline at or before off.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	if off == lineIdx[hi] {
		// off is the newline itself; it terminates line hi+1.
		var lineStart uint32
		if hi > 0 {
			lineStart = lineIdx[hi-1] + 1
		}
		return LineCol{Line: uint32(hi + 1), Col: off - lineStart + 1} // #nosec G115 -- hi bounded by len(lineIdx)
	}

	lineStart := lineIdx[hi] + 1
	return LineCol{Line: uint32(hi + 2), Col: off - lineStart + 1} // #nosec G115 -- hi bounded by len(lineIdx)
}

func normalizePath(p string) string {
	// One canonical form keeps cross-platform diffs stable.
	return filepath.ToSlash(filepath.Clean(p))
}
