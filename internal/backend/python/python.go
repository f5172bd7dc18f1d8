// Package python renders diagram structures as Python modules:
// one module per structure, one __init__.py per package directory.
package python

import (
	"sort"
	"strings"

	"umlc/internal/backend"
	"umlc/internal/uml"
)

// Generator emits Python source for one diagram. It precomputes the
// dotted module path of every registry structure so relative imports
// can be derived from any file in the tree.
type Generator struct {
	diagram *uml.Diagram
	types   *TypeMapper

	// modulePaths maps canonical structure names to sanitized paths,
	// package segments first and the module name last.
	modulePaths map[string][]string
}

func New(d *uml.Diagram) *Generator {
	g := &Generator{
		diagram:     d,
		modulePaths: make(map[string][]string),
	}
	g.types = newTypeMapper(d)
	for _, s := range d.Structures() {
		name := s.StructName()
		if _, taken := g.modulePaths[name]; taken {
			// The registry resolves a duplicated name to its first
			// declaration; imports must point there too.
			continue
		}
		g.modulePaths[name] = append(pkgSegments(s.Owner()), moduleName(name))
	}
	return g
}

func (*Generator) Target() backend.Target { return backend.TargetPython }

func (g *Generator) FileName(s uml.Structure) string {
	return moduleName(s.StructName()) + ".py"
}

func (g *Generator) DirSegment(pkgName string) string { return dirSegment(pkgName) }

func (g *Generator) Render(s uml.Structure) string {
	switch v := s.(type) {
	case *uml.Class:
		return g.renderClass(v)
	case *uml.Interface:
		return g.renderInterface(v)
	case *uml.Enum:
		return g.renderEnum(v)
	}
	return ""
}

// PackageFiles emits the __init__.py marker with re-exports for the
// package's own structures, imports for its subpackages, and a sorted
// __all__ listing both.
func (g *Generator) PackageFiles(pkg *uml.Package) []backend.File {
	return []backend.File{{Name: "__init__.py", Content: g.initFile(pkg)}}
}

func (*Generator) ProjectFiles(string) []backend.File { return nil }

func (g *Generator) OpaqueTypes() []string { return g.types.Opaque() }

func (g *Generator) initFile(pkg *uml.Package) string {
	var structLines, subLines, exports []string
	for _, s := range pkg.Structures {
		name := className(s.StructName())
		structLines = append(structLines, "from ."+moduleName(s.StructName())+" import "+name)
		exports = append(exports, name)
	}
	for _, sub := range pkg.Packages {
		seg := dirSegment(sub.Name)
		subLines = append(subLines, "from . import "+seg)
		exports = append(exports, seg)
	}
	sort.Strings(structLines)
	sort.Strings(subLines)
	sort.Strings(exports)

	var b strings.Builder
	for _, line := range structLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, line := range subLines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if len(exports) > 0 {
		b.WriteByte('\n')
		b.WriteString("__all__ = [\n")
		for _, e := range exports {
			b.WriteString("    \"" + e + "\",\n")
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// assemble lays out one module: import block, class header, then body
// groups separated by blank lines. An empty body renders pass.
func (g *Generator) assemble(imp *fileImports, name string, parents []string, groups [][]string) string {
	w := backend.NewWriter("    ")
	for _, line := range imp.lines() {
		w.Line(line)
	}
	head := "class " + className(name)
	if len(parents) > 0 {
		head += "(" + strings.Join(parents, ", ") + ")"
	}
	w.Line(head + ":")
	w.In()
	if len(groups) == 0 {
		w.Line("pass")
	}
	for i, group := range groups {
		if i > 0 {
			w.Blank()
		}
		for _, line := range group {
			w.Line(line)
		}
	}
	w.Out()
	return w.String()
}

func dirSegment(name string) string {
	return backend.EnsureIdent(backend.SnakeCase(name), "pkg")
}

func moduleName(structName string) string {
	return backend.EnsureIdent(backend.SnakeCase(structName), "unnamed")
}

func className(structName string) string {
	return backend.EnsureIdent(backend.PascalCase(structName), "Unnamed")
}

func paramName(attrName string) string {
	return backend.EnsureIdent(backend.SnakeCase(attrName), "unnamed")
}

func pkgSegments(p *uml.Package) []string {
	parts := p.Path()
	segs := make([]string, len(parts))
	for i, part := range parts {
		segs[i] = dirSegment(part)
	}
	return segs
}

// mangle applies the visibility prefix convention to a member name.
func mangle(name string, v uml.Visibility) string {
	switch v {
	case uml.Private:
		return "__" + name
	case uml.Protected:
		return "_" + name
	}
	return name
}

func hasAbstractMethod(meths []*uml.Method) bool {
	for _, m := range meths {
		if m.Abstract {
			return true
		}
	}
	return false
}

// pyLiteral converts a raw diagram default into a Python literal.
// Numbers pass through, the boolean and null spellings translate, and
// anything else is treated as a string.
func pyLiteral(raw string) string {
	switch strings.ToLower(raw) {
	case "true":
		return "True"
	case "false":
		return "False"
	case "null", "none", "nil":
		return "None"
	}
	if backend.IsNumericLiteral(raw) {
		return raw
	}
	return "\"" + raw + "\""
}
