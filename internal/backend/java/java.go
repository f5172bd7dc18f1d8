// Package java renders diagram structures as Java source files: one
// file per structure under lowercase package directories. Package
// nesting maps onto dotted package segments below the base package.
package java

import (
	"strings"

	"umlc/internal/backend"
	"umlc/internal/uml"
)

// DefaultPackage is the base package used when no override is
// configured.
const DefaultPackage = "generatedcode"

// Generator emits Java skeletons for one diagram.
type Generator struct {
	diagram *uml.Diagram
	base    string
	types   *TypeMapper

	// packages maps each declared structure name to the package where
	// its first declaration lives.
	packages map[string]string
}

// New builds a generator for d. An empty base package selects
// DefaultPackage.
func New(d *uml.Diagram, basePkg string) *Generator {
	if basePkg == "" {
		basePkg = DefaultPackage
	}
	g := &Generator{
		diagram:  d,
		base:     basePkg,
		types:    newTypeMapper(d),
		packages: make(map[string]string),
	}
	for _, s := range d.Structures() {
		if _, ok := g.packages[s.StructName()]; ok {
			continue
		}
		g.packages[s.StructName()] = g.packageFor(s.Owner())
	}
	return g
}

func (g *Generator) Target() backend.Target { return backend.TargetJava }

func (g *Generator) FileName(s uml.Structure) string {
	return className(s.StructName()) + ".java"
}

func (g *Generator) DirSegment(pkgName string) string {
	return dirSegment(pkgName)
}

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

// PackageFiles returns nothing: Java directories need no marker files.
func (g *Generator) PackageFiles(*uml.Package) []backend.File { return nil }

// ProjectFiles returns nothing: the tree compiles with plain javac.
func (g *Generator) ProjectFiles(string) []backend.File { return nil }

func (g *Generator) OpaqueTypes() []string { return g.types.Opaque() }

// packageFor joins the base package with the lowercase package path.
func (g *Generator) packageFor(pkg *uml.Package) string {
	segs := []string{g.base}
	for _, name := range pkg.Path() {
		segs = append(segs, dirSegment(name))
	}
	return strings.Join(segs, ".")
}

// assemble lays out a complete source file: package line, imports, and
// the structure declaration with body groups separated by blank lines.
func assemble(imp *importSet, pkg, decl string, groups [][]string) string {
	w := backend.NewWriter("    ")
	w.Line("package " + pkg + ";")
	w.Blank()
	lines := imp.lines()
	for _, line := range lines {
		w.Line(line)
	}
	if len(lines) > 0 {
		w.Blank()
	}
	w.Line(decl + " {")
	w.In()
	for i, group := range groups {
		if i > 0 {
			w.Blank()
		}
		for _, line := range group {
			w.Line(line)
		}
	}
	w.Out()
	w.Line("}")
	return w.String()
}

func dirSegment(name string) string {
	return backend.EnsureIdent(backend.LowerFlatCase(name), "pkg")
}

func className(name string) string {
	return backend.EnsureIdent(backend.PascalCase(name), "Unnamed")
}

func memberName(name string) string {
	return backend.EnsureIdent(backend.CamelCase(name), "unnamed")
}

func constName(name string) string {
	return backend.EnsureIdent(backend.UpperSnakeCase(name), "UNNAMED")
}

// visibilityOf returns the Java modifier; package-private is spelled
// by omission.
func visibilityOf(v uml.Visibility) string {
	switch v {
	case uml.Private:
		return "private"
	case uml.Protected:
		return "protected"
	case uml.PackagePrivate:
		return ""
	}
	return "public"
}

func hasAbstractMethod(meths []*uml.Method) bool {
	for _, m := range meths {
		if m.Abstract {
			return true
		}
	}
	return false
}

// javaLiteral converts a diagram default into a Java literal.
// Fractional literals pick up the f suffix when the mapped type is
// float; anything not recognizably boolean, null, or numeric becomes a
// string literal.
func javaLiteral(raw, mappedType string) string {
	switch strings.ToLower(raw) {
	case "true":
		return "true"
	case "false":
		return "false"
	case "null", "nil", "none":
		return "null"
	}
	if backend.IsNumericLiteral(raw) {
		if !backend.IsIntegerLiteral(raw) && mappedType == "float" {
			return raw + "f"
		}
		return raw
	}
	return `"` + raw + `"`
}

// javaZeroValue is the initializer used where an interface constant
// has no declared default.
func javaZeroValue(mappedType string) string {
	switch mappedType {
	case "int", "long", "short", "byte":
		return "0"
	case "float":
		return "0.0f"
	case "double":
		return "0.0"
	case "boolean":
		return "false"
	case "char":
		return "'\\0'"
	}
	return "null"
}
