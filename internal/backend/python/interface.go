package python

import "umlc/internal/uml"

// renderInterface emits an interface as an ABC-derived class: static
// attributes become constants, instance attributes become bare
// annotations, and instance methods become abstract stubs.
func (g *Generator) renderInterface(i *uml.Interface) string {
	imp := newFileImports(g, i)

	var parents []string
	for _, ext := range i.Extends {
		expr, syms := g.types.Heritage(ext)
		parents = append(parents, expr)
		imp.add(syms, true)
	}
	parents = append(parents, "ABC")
	imp.abc()

	var groups [][]string
	var decls []string
	decls = append(decls, g.staticLines(i.Attrs, imp, "...")...)
	decls = append(decls, g.instanceDeclLines(i.Attrs, imp)...)
	if len(decls) > 0 {
		groups = append(groups, decls)
	}
	for _, m := range i.Meths {
		groups = append(groups, g.methodLines(m, imp, true, false))
	}
	return g.assemble(imp, i.Name, parents, groups)
}

// instanceDeclLines renders non-static interface attributes as
// class-level annotations.
func (g *Generator) instanceDeclLines(attrs []*uml.Attribute, imp *fileImports) []string {
	var lines []string
	for _, a := range attrs {
		if a.Static {
			continue
		}
		name := paramName(a.Name)
		if a.Type == "" {
			lines = append(lines, name+" = None")
			continue
		}
		hint, syms := g.types.Annotation(a.Type)
		imp.add(syms, false)
		lines = append(lines, name+": "+hint)
	}
	return lines
}
