package csharp

import (
	"fmt"

	"umlc/internal/uml"
)

// renderEnum writes explicit values verbatim and leaves implicit ones
// bare; C#'s own continuation rule matches the diagram's. The
// underlying type narrows to byte or short when the values allow it,
// widening to long when they demand it.
func (g *Generator) renderEnum(e *uml.Enum) string {
	ns := g.namespaceFor(e.Owner())
	u := g.newUsings(ns)

	decl := "public enum " + className(e.Name)
	if base := enumBase(e.Width()); base != "" {
		decl += " : " + base
	}

	var lines []string
	if len(e.Values) == 0 {
		lines = []string{"None = 0"}
	} else {
		for i, v := range e.Values {
			line := memberName(v.Name)
			if v.Explicit {
				line = fmt.Sprintf("%s = %d", line, v.Value)
			}
			if i < len(e.Values)-1 {
				line += ","
			}
			lines = append(lines, line)
		}
	}
	return assemble(u, ns, decl, [][]string{lines})
}

func enumBase(w uml.EnumWidth) string {
	switch w {
	case uml.Width8:
		return "byte"
	case uml.Width16:
		return "short"
	case uml.Width64:
		return "long"
	}
	return ""
}
