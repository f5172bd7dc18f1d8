package java

import (
	"sort"
	"strings"
)

// importSet accumulates the import statements for one file. Structure
// references import the class from its first declaration's package
// unless that is the package being emitted; primitives and
// same-package types add nothing.
type importSet struct {
	gen     *Generator
	current string
	set     map[string]bool
}

func (g *Generator) newImports(current string) *importSet {
	return &importSet{gen: g, current: current, set: make(map[string]bool)}
}

func (s *importSet) add(symbols []string) {
	for _, sym := range symbols {
		if name, ok := strings.CutPrefix(sym, "struct:"); ok {
			pkg, known := s.gen.packages[name]
			if !known || pkg == s.current {
				continue
			}
			s.set[pkg+"."+className(name)] = true
			continue
		}
		s.set[sym] = true
	}
}

func (s *importSet) lines() []string {
	names := make([]string, 0, len(s.set))
	for imp := range s.set {
		names = append(names, imp)
	}
	sort.Strings(names)
	out := make([]string, len(names))
	for i, imp := range names {
		out[i] = "import " + imp + ";"
	}
	return out
}
