package csharp

import (
	"sort"
	"strings"
)

// usingSet accumulates the using directives for one file. System is
// always present; structure references add the namespace of their
// first declaration unless it is the current one.
type usingSet struct {
	gen     *Generator
	current string
	set     map[string]bool
}

func (g *Generator) newUsings(current string) *usingSet {
	return &usingSet{gen: g, current: current, set: map[string]bool{"System": true}}
}

func (u *usingSet) add(symbols []string) {
	for _, sym := range symbols {
		if name, ok := strings.CutPrefix(sym, "struct:"); ok {
			ns, known := u.gen.namespaces[name]
			if !known || ns == u.current {
				continue
			}
			u.set[ns] = true
			continue
		}
		u.set[sym] = true
	}
}

func (u *usingSet) lines() []string {
	names := make([]string, 0, len(u.set))
	for ns := range u.set {
		names = append(names, ns)
	}
	sort.Strings(names)
	out := make([]string, len(names))
	for i, ns := range names {
		out[i] = "using " + ns + ";"
	}
	return out
}
