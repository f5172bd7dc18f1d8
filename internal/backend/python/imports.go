package python

import (
	"sort"
	"strings"

	"umlc/internal/uml"
)

// fileImports accumulates the import needs of one generated module.
// Heritage references must exist when the class body is evaluated, so
// they import at runtime level; everything else structure-shaped goes
// behind TYPE_CHECKING and is referenced through quoted annotations.
type fileImports struct {
	gen     *Generator
	current []string

	std      map[string]bool
	typing   map[string]bool
	runtime  map[string]bool
	deferred map[string]bool
}

func newFileImports(g *Generator, s uml.Structure) *fileImports {
	return &fileImports{
		gen:      g,
		current:  append(pkgSegments(s.Owner()), moduleName(s.StructName())),
		std:      make(map[string]bool),
		typing:   make(map[string]bool),
		runtime:  make(map[string]bool),
		deferred: make(map[string]bool),
	}
}

func (fi *fileImports) abc()      { fi.std["from abc import ABC, abstractmethod"] = true }
func (fi *fileImports) enum()     { fi.std["from enum import Enum"] = true }
func (fi *fileImports) classVar() { fi.typing["ClassVar"] = true }

// add records symbolic imports coming back from the type mapper.
// heritage marks names used in the class header.
func (fi *fileImports) add(symbols []string, heritage bool) {
	for _, sym := range symbols {
		switch {
		case sym == "datetime":
			fi.std["import datetime"] = true
		case strings.HasPrefix(sym, "typing:"):
			fi.typing[strings.TrimPrefix(sym, "typing:")] = true
		case strings.HasPrefix(sym, "struct:"):
			fi.addStruct(strings.TrimPrefix(sym, "struct:"), heritage)
		}
	}
}

func (fi *fileImports) addStruct(name string, heritage bool) {
	path, ok := fi.gen.modulePaths[name]
	if !ok {
		return
	}
	line := relativeImport(fi.current, path, className(name))
	if line == "" {
		// Self reference; the class name is already in scope.
		return
	}
	if heritage {
		fi.runtime[line] = true
		return
	}
	fi.deferred[line] = true
}

// lines renders the import block: sorted standard imports, heritage
// imports, the typing line, then the TYPE_CHECKING block, with one
// trailing blank line. Nil when the module imports nothing.
func (fi *fileImports) lines() []string {
	var out []string
	out = append(out, sortedKeys(fi.std)...)
	out = append(out, sortedKeys(fi.runtime)...)

	deferred := make([]string, 0, len(fi.deferred))
	for line := range fi.deferred {
		if !fi.runtime[line] {
			deferred = append(deferred, line)
		}
	}
	sort.Strings(deferred)

	typing := sortedKeys(fi.typing)
	if len(deferred) > 0 {
		typing = append(typing, "TYPE_CHECKING")
		sort.Strings(typing)
	}
	if len(typing) > 0 {
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, "from typing import "+strings.Join(typing, ", "))
	}
	if len(deferred) > 0 {
		out = append(out, "")
		out = append(out, "if TYPE_CHECKING:")
		for _, line := range deferred {
			out = append(out, "    "+line)
		}
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	return out
}

// relativeImport builds the dotted-relative import of a structure from
// the module at cur. Paths carry package segments first and the module
// name last. Empty means the target is the current module itself.
func relativeImport(cur, tgt []string, name string) string {
	if equalPath(cur, tgt) {
		return ""
	}
	curPkg := cur[:len(cur)-1]
	tgtPkg := tgt[:len(tgt)-1]

	common := 0
	for common < len(curPkg) && common < len(tgtPkg) && curPkg[common] == tgtPkg[common] {
		common++
	}
	up := len(curPkg) - common
	dots := strings.Repeat(".", up+1)
	down := append(append([]string(nil), tgtPkg[common:]...), tgt[len(tgt)-1])
	return "from " + dots + strings.Join(down, ".") + " import " + name
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
