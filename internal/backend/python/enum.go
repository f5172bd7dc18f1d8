package python

import (
	"fmt"

	"umlc/internal/uml"
)

// renderEnum emits the Enum-derived class. Every value carries its
// resolved integer so explicit and implicit declarations mix stably.
func (g *Generator) renderEnum(e *uml.Enum) string {
	imp := newFileImports(g, e)
	imp.enum()

	var lines []string
	for _, v := range e.Resolved() {
		lines = append(lines, fmt.Sprintf("%s = %d", constName(v.Name), v.Value))
	}
	var groups [][]string
	if len(lines) > 0 {
		groups = append(groups, lines)
	}
	return g.assemble(imp, e.Name, []string{"Enum"}, groups)
}
