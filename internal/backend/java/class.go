package java

import (
	"strings"

	"umlc/internal/uml"
)

func (g *Generator) renderClass(c *uml.Class) string {
	pkg := g.packageFor(c.Owner())
	imp := g.newImports(pkg)

	decl := "public "
	if c.Abstract || hasAbstractMethod(c.Meths) {
		decl += "abstract "
	}
	decl += "class " + className(c.Name)
	if c.Base != "" {
		expr, syms := g.types.TypeName(c.Base)
		imp.add(syms)
		decl += " extends " + expr
	}
	if len(c.Implements) > 0 {
		parts := make([]string, len(c.Implements))
		for i, iface := range c.Implements {
			expr, syms := g.types.TypeName(iface)
			imp.add(syms)
			parts[i] = expr
		}
		decl += " implements " + strings.Join(parts, ", ")
	}

	var groups [][]string
	if lines := g.staticFieldLines(c.Attrs, imp); len(lines) > 0 {
		groups = append(groups, lines)
	}
	if lines := g.instanceFieldLines(c.Attrs, imp); len(lines) > 0 {
		groups = append(groups, lines)
	}
	if lines := g.ctorLines(c, imp); len(lines) > 0 {
		groups = append(groups, lines)
	}
	for _, m := range c.Meths {
		groups = append(groups, g.methodLines(m, imp))
	}
	return assemble(imp, pkg, decl, groups)
}

// memberType maps a member's type text, falling back to Object where
// the diagram left it out: Java has no untyped declaration form.
func (g *Generator) memberType(raw string, imp *importSet) string {
	expr, syms := g.types.TypeName(raw)
	imp.add(syms)
	if expr == "" {
		return "Object"
	}
	return expr
}

func (g *Generator) returnType(raw string, imp *importSet) string {
	expr, syms := g.types.TypeName(raw)
	imp.add(syms)
	if expr == "" {
		return "void"
	}
	return expr
}

func fieldDecl(vis string, static bool, typ, name, init string) string {
	var parts []string
	if vis != "" {
		parts = append(parts, vis)
	}
	if static {
		parts = append(parts, "static")
	}
	parts = append(parts, typ, name)
	line := strings.Join(parts, " ")
	if init != "" {
		line += " = " + init
	}
	return line + ";"
}

func (g *Generator) staticFieldLines(attrs []*uml.Attribute, imp *importSet) []string {
	var lines []string
	for _, a := range attrs {
		if !a.Static {
			continue
		}
		typ := g.memberType(a.Type, imp)
		init := ""
		if a.HasDefault() {
			init = javaLiteral(a.Default, typ)
		}
		lines = append(lines, fieldDecl(visibilityOf(a.Visibility), true, typ, memberName(a.Name), init))
	}
	return lines
}

// instanceFieldLines renders instance attributes as fields. A declared
// default becomes a field initializer; Java has no optional
// constructor parameters to carry it.
func (g *Generator) instanceFieldLines(attrs []*uml.Attribute, imp *importSet) []string {
	var lines []string
	for _, a := range attrs {
		if a.Static {
			continue
		}
		typ := g.memberType(a.Type, imp)
		init := ""
		if a.HasDefault() {
			init = javaLiteral(a.Default, typ)
		}
		lines = append(lines, fieldDecl(visibilityOf(a.Visibility), false, typ, memberName(a.Name), init))
	}
	return lines
}

// ctorLines renders the constructor: inherited required parameters
// first and forwarded to super, then own required parameters assigned
// to fields. Defaulted attributes stay out of the signature; their
// field initializers already cover them.
func (g *Generator) ctorLines(c *uml.Class, imp *importSet) []string {
	hasInstance := false
	for _, a := range c.Attrs {
		if !a.Static {
			hasInstance = true
			break
		}
	}
	if !hasInstance && c.Base == "" {
		return nil
	}

	var sig, forward []string
	for _, p := range uml.ConstructorParams(g.diagram, c) {
		if p.Default != "" {
			continue
		}
		name := memberName(p.Name)
		sig = append(sig, g.memberType(p.Type, imp)+" "+name)
		if p.Inherited {
			forward = append(forward, name)
		}
	}

	lines := []string{"public " + className(c.Name) + "(" + strings.Join(sig, ", ") + ") {"}
	if c.Base != "" {
		lines = append(lines, "    super("+strings.Join(forward, ", ")+");")
	}
	for _, a := range c.Attrs {
		if a.Static || !a.Required() {
			continue
		}
		name := memberName(a.Name)
		lines = append(lines, "    this."+name+" = "+name+";")
	}
	return append(lines, "}")
}

// methodLines renders one method. Abstract methods are bare
// signatures; everything else throws until implemented.
func (g *Generator) methodLines(m *uml.Method, imp *importSet) []string {
	var parts []string
	if vis := visibilityOf(m.Visibility); vis != "" {
		parts = append(parts, vis)
	}
	if m.Static {
		parts = append(parts, "static")
	}
	if m.Abstract {
		parts = append(parts, "abstract")
	}
	parts = append(parts, g.returnType(m.Returns, imp), memberName(m.Name)+"("+g.paramList(m.Params, imp)+")")
	head := strings.Join(parts, " ")

	if m.Abstract {
		return []string{head + ";"}
	}
	return []string{head + " {", `    throw new UnsupportedOperationException("not implemented");`, "}"}
}

func (g *Generator) paramList(params []*uml.Parameter, imp *importSet) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = g.memberType(p.Type, imp) + " " + memberName(p.Name)
	}
	return strings.Join(parts, ", ")
}
