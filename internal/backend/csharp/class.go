package csharp

import (
	"strings"

	"umlc/internal/uml"
)

func (g *Generator) renderClass(c *uml.Class) string {
	ns := g.namespaceFor(c.Owner())
	u := g.newUsings(ns)

	decl := "public "
	if c.Abstract || hasAbstractMethod(c.Meths) {
		decl += "abstract "
	}
	decl += "class " + className(c.Name)
	var parents []string
	if c.Base != "" {
		expr, syms := g.types.TypeName(c.Base)
		u.add(syms)
		parents = append(parents, expr)
	}
	for _, iface := range c.Implements {
		expr, syms := g.types.TypeName(iface)
		u.add(syms)
		parents = append(parents, expr)
	}
	if len(parents) > 0 {
		decl += " : " + strings.Join(parents, ", ")
	}

	var groups [][]string
	if lines := g.staticPropLines(c.Attrs, u); len(lines) > 0 {
		groups = append(groups, lines)
	}
	if lines := g.instancePropLines(c.Attrs, u); len(lines) > 0 {
		groups = append(groups, lines)
	}
	if lines := g.ctorLines(c, u); len(lines) > 0 {
		groups = append(groups, lines)
	}
	for _, m := range c.Meths {
		groups = append(groups, g.methodLines(m, u))
	}
	return assemble(u, ns, decl, groups)
}

// memberType maps a member's type text, falling back to object where
// the diagram left it out: C# has no untyped declaration form.
func (g *Generator) memberType(raw string, u *usingSet) string {
	expr, syms := g.types.TypeName(raw)
	u.add(syms)
	if expr == "" {
		return "object"
	}
	return expr
}

func (g *Generator) returnType(raw string, u *usingSet) string {
	expr, syms := g.types.TypeName(raw)
	u.add(syms)
	if expr == "" {
		return "void"
	}
	return expr
}

// staticPropLines renders static attributes as static auto-properties,
// with the declared default as initializer.
func (g *Generator) staticPropLines(attrs []*uml.Attribute, u *usingSet) []string {
	var lines []string
	for _, a := range attrs {
		if !a.Static {
			continue
		}
		typ := g.memberType(a.Type, u)
		line := visibilityOf(a.Visibility) + " static " + typ + " " + memberName(a.Name) + " { get; set; }"
		if a.HasDefault() {
			line += " = " + csLiteral(a.Default, typ) + ";"
		}
		lines = append(lines, line)
	}
	return lines
}

// instancePropLines renders instance attributes as auto-properties.
// Declared defaults surface as optional constructor parameters, not
// initializers.
func (g *Generator) instancePropLines(attrs []*uml.Attribute, u *usingSet) []string {
	var lines []string
	for _, a := range attrs {
		if a.Static {
			continue
		}
		typ := g.memberType(a.Type, u)
		lines = append(lines, visibilityOf(a.Visibility)+" "+typ+" "+memberName(a.Name)+" { get; set; }")
	}
	return lines
}

// ctorLines renders the constructor: inherited required parameters
// first and forwarded to base, then own required, then own defaulted
// as optional parameters. Classes with neither a base nor instance
// attributes get no constructor.
func (g *Generator) ctorLines(c *uml.Class, u *usingSet) []string {
	params := uml.ConstructorParams(g.diagram, c)
	if len(params) == 0 && c.Base == "" {
		return nil
	}

	sig := make([]string, 0, len(params))
	var forward []string
	for _, p := range params {
		typ := g.memberType(p.Type, u)
		name := paramName(p.Name)
		part := typ + " " + name
		if p.Default != "" {
			part += " = " + csLiteral(p.Default, typ)
		}
		sig = append(sig, part)
		if p.Inherited {
			forward = append(forward, name)
		}
	}

	head := "public " + className(c.Name) + "(" + strings.Join(sig, ", ") + ")"
	if c.Base != "" {
		head += " : base(" + strings.Join(forward, ", ") + ")"
	}

	lines := []string{head, "{"}
	for _, a := range c.Attrs {
		if a.Static {
			continue
		}
		lines = append(lines, "    "+memberName(a.Name)+" = "+paramName(a.Name)+";")
	}
	return append(lines, "}")
}

// methodLines renders one method. Abstract methods are bare
// signatures; everything else throws until implemented.
func (g *Generator) methodLines(m *uml.Method, u *usingSet) []string {
	head := visibilityOf(m.Visibility)
	if m.Static {
		head += " static"
	}
	if m.Abstract {
		head += " abstract"
	}
	head += " " + g.returnType(m.Returns, u) + " " + memberName(m.Name) + "(" + g.paramList(m.Params, u) + ")"

	if m.Abstract {
		return []string{head + ";"}
	}
	return []string{head, "{", "    throw new NotImplementedException();", "}"}
}

func (g *Generator) paramList(params []*uml.Parameter, u *usingSet) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = g.memberType(p.Type, u) + " " + paramName(p.Name)
	}
	return strings.Join(parts, ", ")
}
