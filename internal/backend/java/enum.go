package java

import (
	"fmt"

	"umlc/internal/uml"
)

// renderEnum writes a plain constant list unless any value is
// explicit; then every constant carries its resolved integer through a
// value field and constructor, since Java enums have no assignment
// syntax.
func (g *Generator) renderEnum(e *uml.Enum) string {
	pkg := g.packageFor(e.Owner())
	imp := g.newImports(pkg)
	decl := "public enum " + className(e.Name)

	var groups [][]string
	switch {
	case len(e.Values) == 0:
		groups = [][]string{{"None;"}}
	case e.HasExplicitValues():
		values := e.Resolved()
		lines := make([]string, len(values))
		for i, v := range values {
			sep := ","
			if i == len(values)-1 {
				sep = ";"
			}
			lines[i] = fmt.Sprintf("%s(%d)%s", className(v.Name), v.Value, sep)
		}
		name := className(e.Name)
		groups = [][]string{
			lines,
			{"private final int value;"},
			{name + "(int value) {", "    this.value = value;", "}"},
			{"public int getValue() {", "    return value;", "}"},
		}
	default:
		lines := make([]string, len(e.Values))
		for i, v := range e.Values {
			sep := ","
			if i == len(e.Values)-1 {
				sep = ";"
			}
			lines[i] = className(v.Name) + sep
		}
		groups = [][]string{lines}
	}
	return assemble(imp, pkg, decl, groups)
}
