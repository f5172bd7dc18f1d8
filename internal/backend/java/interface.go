package java

import (
	"strings"

	"umlc/internal/uml"
)

// Interface fields are constants whether the diagram marked them
// static or not; Java interfaces have no instance state. Missing
// defaults fill in with the type's zero value.
func (g *Generator) renderInterface(i *uml.Interface) string {
	pkg := g.packageFor(i.Owner())
	imp := g.newImports(pkg)

	decl := "public interface " + className(i.Name)
	if len(i.Extends) > 0 {
		parts := make([]string, len(i.Extends))
		for n, ext := range i.Extends {
			expr, syms := g.types.TypeName(ext)
			imp.add(syms)
			parts[n] = expr
		}
		decl += " extends " + strings.Join(parts, ", ")
	}

	var groups [][]string
	if lines := g.constLines(i.Attrs, imp, true); len(lines) > 0 {
		groups = append(groups, lines)
	}
	if lines := g.constLines(i.Attrs, imp, false); len(lines) > 0 {
		groups = append(groups, lines)
	}
	for _, m := range i.Meths {
		groups = append(groups, g.ifaceMethodLines(m, imp))
	}
	return assemble(imp, pkg, decl, groups)
}

func (g *Generator) constLines(attrs []*uml.Attribute, imp *importSet, static bool) []string {
	var lines []string
	for _, a := range attrs {
		if a.Static != static {
			continue
		}
		typ := g.memberType(a.Type, imp)
		init := javaZeroValue(typ)
		if a.HasDefault() {
			init = javaLiteral(a.Default, typ)
		}
		lines = append(lines, typ+" "+constName(a.Name)+" = "+init+";")
	}
	return lines
}

// ifaceMethodLines renders one interface method: instance methods are
// bare signatures, static methods carry a body.
func (g *Generator) ifaceMethodLines(m *uml.Method, imp *importSet) []string {
	head := g.returnType(m.Returns, imp) + " " + memberName(m.Name) + "(" + g.paramList(m.Params, imp) + ")"
	if m.Static {
		return []string{"static " + head + " {", `    throw new UnsupportedOperationException("not implemented");`, "}"}
	}
	return []string{head + ";"}
}
