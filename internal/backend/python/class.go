package python

import (
	"strings"

	"umlc/internal/backend"
	"umlc/internal/uml"
)

func (g *Generator) renderClass(c *uml.Class) string {
	imp := newFileImports(g, c)

	var parents []string
	if c.Base != "" {
		expr, syms := g.types.Heritage(c.Base)
		parents = append(parents, expr)
		imp.add(syms, true)
	}
	for _, iface := range c.Implements {
		expr, syms := g.types.Heritage(iface)
		parents = append(parents, expr)
		imp.add(syms, true)
	}
	if c.Abstract || hasAbstractMethod(c.Meths) {
		parents = append(parents, "ABC")
		imp.abc()
	}

	var groups [][]string
	if statics := g.staticLines(c.Attrs, imp, "None"); len(statics) > 0 {
		groups = append(groups, statics)
	}
	if init := g.initLines(c, imp); len(init) > 0 {
		groups = append(groups, init)
	}
	for _, m := range c.Meths {
		groups = append(groups, g.methodLines(m, imp, false, true))
	}
	return g.assemble(imp, c.Name, parents, groups)
}

// staticLines renders class-level constants. missing is the value used
// when no default was declared: None in classes, ... in interfaces.
func (g *Generator) staticLines(attrs []*uml.Attribute, imp *fileImports, missing string) []string {
	var lines []string
	for _, a := range attrs {
		if !a.Static {
			continue
		}
		name := mangle(constName(a.Name), a.Visibility)
		value := missing
		if a.HasDefault() {
			value = pyLiteral(a.Default)
		}
		if a.Type == "" {
			lines = append(lines, name+" = "+value)
			continue
		}
		hint, syms := g.types.Annotation(a.Type)
		imp.add(syms, false)
		imp.classVar()
		lines = append(lines, name+": ClassVar["+hint+"] = "+value)
	}
	return lines
}

// initLines renders __init__. Inherited required parameters come
// first and forward to the base constructor; the class's own
// attributes are assigned in declaration order. A class with neither a
// base nor instance attributes declares no constructor.
func (g *Generator) initLines(c *uml.Class, imp *fileImports) []string {
	params := uml.ConstructorParams(g.diagram, c)
	if len(params) == 0 && c.Base == "" {
		return nil
	}

	sig := []string{"self"}
	var forward []string
	for _, p := range params {
		pname := paramName(p.Name)
		entry := pname
		if p.Type != "" {
			hint, syms := g.types.Annotation(p.Type)
			imp.add(syms, false)
			entry += ": " + hint
		}
		if p.Default != "" {
			entry += " = " + pyLiteral(p.Default)
		}
		sig = append(sig, entry)
		if p.Inherited {
			forward = append(forward, pname)
		}
	}

	var body []string
	if c.Base != "" {
		body = append(body, "super().__init__("+strings.Join(forward, ", ")+")")
	}
	for _, a := range c.Attrs {
		if a.Static {
			continue
		}
		pname := paramName(a.Name)
		target := "self." + mangle(pname, a.Visibility)
		if a.Type == "" {
			body = append(body, target+" = "+pname)
			continue
		}
		hint, _ := g.types.Annotation(a.Type)
		body = append(body, target+": "+hint+" = "+pname)
	}
	if len(body) == 0 {
		body = append(body, "pass")
	}

	lines := []string{"def __init__(" + strings.Join(sig, ", ") + "):"}
	for _, line := range body {
		lines = append(lines, "    "+line)
	}
	return lines
}

// methodLines renders one method. forceAbstract turns instance
// methods into abstract stubs, the interface convention; mangleVis
// applies the visibility prefixes, which interfaces skip.
func (g *Generator) methodLines(m *uml.Method, imp *fileImports, forceAbstract, mangleVis bool) []string {
	abstract := m.Abstract || (forceAbstract && !m.Static)

	var lines []string
	if m.Static {
		lines = append(lines, "@staticmethod")
	}
	if abstract {
		lines = append(lines, "@abstractmethod")
		imp.abc()
	}

	sig := []string{}
	if !m.Static {
		sig = append(sig, "self")
	}
	for _, p := range m.Params {
		entry := paramName(p.Name)
		if p.Type != "" {
			hint, syms := g.types.Annotation(p.Type)
			imp.add(syms, false)
			entry += ": " + hint
		}
		if p.Default != "" {
			entry += " = " + pyLiteral(p.Default)
		}
		sig = append(sig, entry)
	}

	ret := ""
	if m.Returns != "" {
		hint, syms := g.types.Annotation(m.Returns)
		if hint != "None" {
			imp.add(syms, false)
			ret = " -> " + hint
		}
	}

	name := backend.EnsureIdent(backend.SnakeCase(m.Name), "unnamed")
	if mangleVis {
		name = mangle(name, m.Visibility)
	}
	head := "def " + name + "(" + strings.Join(sig, ", ") + ")" + ret + ":"
	if abstract {
		return append(lines, head+" ...")
	}
	lines = append(lines, head)
	return append(lines, "    raise NotImplementedError()")
}

func constName(attrName string) string {
	return backend.EnsureIdent(backend.UpperSnakeCase(attrName), "UNNAMED")
}
