package csharp

import (
	"strings"

	"umlc/internal/uml"
)

// Interface members carry no visibility modifier; they are implicitly
// public.
func (g *Generator) renderInterface(i *uml.Interface) string {
	ns := g.namespaceFor(i.Owner())
	u := g.newUsings(ns)

	decl := "public interface " + className(i.Name)
	var parents []string
	for _, ext := range i.Extends {
		expr, syms := g.types.TypeName(ext)
		u.add(syms)
		parents = append(parents, expr)
	}
	if len(parents) > 0 {
		decl += " : " + strings.Join(parents, ", ")
	}

	var groups [][]string
	if lines := g.ifaceStaticLines(i.Attrs, u); len(lines) > 0 {
		groups = append(groups, lines)
	}
	if lines := g.ifaceInstanceLines(i.Attrs, u); len(lines) > 0 {
		groups = append(groups, lines)
	}
	for _, m := range i.Meths {
		groups = append(groups, g.ifaceMethodLines(m, u))
	}
	return assemble(u, ns, decl, groups)
}

// ifaceStaticLines renders static attributes. A declared default
// becomes a static property with initializer; without one the
// implementing type must provide it, so the member is static abstract.
func (g *Generator) ifaceStaticLines(attrs []*uml.Attribute, u *usingSet) []string {
	var lines []string
	for _, a := range attrs {
		if !a.Static {
			continue
		}
		typ := g.memberType(a.Type, u)
		name := memberName(a.Name)
		if a.HasDefault() {
			lines = append(lines, "static "+typ+" "+name+" { get; set; } = "+csLiteral(a.Default, typ)+";")
			continue
		}
		lines = append(lines, "static abstract "+typ+" "+name+" { get; set; }")
	}
	return lines
}

func (g *Generator) ifaceInstanceLines(attrs []*uml.Attribute, u *usingSet) []string {
	var lines []string
	for _, a := range attrs {
		if a.Static {
			continue
		}
		lines = append(lines, g.memberType(a.Type, u)+" "+memberName(a.Name)+" { get; set; }")
	}
	return lines
}

// ifaceMethodLines renders one interface method: instance methods are
// bare signatures, static methods carry a default body.
func (g *Generator) ifaceMethodLines(m *uml.Method, u *usingSet) []string {
	head := g.returnType(m.Returns, u) + " " + memberName(m.Name) + "(" + g.paramList(m.Params, u) + ")"
	if m.Static {
		return []string{"static " + head, "{", "    throw new NotImplementedException();", "}"}
	}
	return []string{head + ";"}
}
