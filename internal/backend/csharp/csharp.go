// Package csharp renders diagram structures as C# source files: one
// file per structure under PascalCase directories, plus a .csproj at
// the output root. Package nesting maps onto namespace segments below
// the base namespace.
package csharp

import (
	"strings"

	"umlc/internal/backend"
	"umlc/internal/uml"
)

// DefaultNamespace is the base namespace used when no override is
// configured.
const DefaultNamespace = "GeneratedCode"

const projectFileContent = `<Project Sdk="Microsoft.NET.Sdk">

  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
    <LangVersion>latest</LangVersion>
    <Nullable>enable</Nullable>
  </PropertyGroup>

</Project>
`

// Generator emits C# skeletons for one diagram.
type Generator struct {
	diagram *uml.Diagram
	ns      string
	types   *TypeMapper

	// namespaces maps each declared structure name to the namespace
	// where its first declaration lives.
	namespaces map[string]string
}

// New builds a generator for d. An empty namespace selects
// DefaultNamespace.
func New(d *uml.Diagram, namespace string) *Generator {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	g := &Generator{
		diagram:    d,
		ns:         namespace,
		types:      newTypeMapper(d),
		namespaces: make(map[string]string),
	}
	for _, s := range d.Structures() {
		if _, ok := g.namespaces[s.StructName()]; ok {
			continue
		}
		g.namespaces[s.StructName()] = g.namespaceFor(s.Owner())
	}
	return g
}

func (g *Generator) Target() backend.Target { return backend.TargetCSharp }

func (g *Generator) FileName(s uml.Structure) string {
	return className(s.StructName()) + ".cs"
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

// PackageFiles returns nothing: C# directories need no marker files.
func (g *Generator) PackageFiles(*uml.Package) []backend.File { return nil }

// ProjectFiles returns the .csproj, named after the output root so the
// tree opens directly in an IDE.
func (g *Generator) ProjectFiles(rootDir string) []backend.File {
	return []backend.File{{Name: rootDir + ".csproj", Content: projectFileContent}}
}

func (g *Generator) OpaqueTypes() []string { return g.types.Opaque() }

// namespaceFor joins the base namespace with the PascalCase package
// path.
func (g *Generator) namespaceFor(pkg *uml.Package) string {
	segs := []string{g.ns}
	for _, name := range pkg.Path() {
		segs = append(segs, dirSegment(name))
	}
	return strings.Join(segs, ".")
}

// assemble lays out a complete source file: usings, the namespace
// block, the structure declaration, and the body groups separated by
// blank lines.
func assemble(u *usingSet, namespace, decl string, groups [][]string) string {
	w := backend.NewWriter("    ")
	lines := u.lines()
	for _, line := range lines {
		w.Line(line)
	}
	if len(lines) > 0 {
		w.Blank()
	}
	w.Line("namespace " + namespace)
	w.Line("{")
	w.In()
	w.Line(decl)
	w.Line("{")
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
	w.Out()
	w.Line("}")
	return w.String()
}

func dirSegment(name string) string {
	return backend.EnsureIdent(backend.PascalCase(name), "Pkg")
}

func className(name string) string {
	return backend.EnsureIdent(backend.PascalCase(name), "Unnamed")
}

func memberName(name string) string {
	return backend.EnsureIdent(backend.PascalCase(name), "Unnamed")
}

func paramName(name string) string {
	return backend.EnsureIdent(backend.CamelCase(name), "unnamed")
}

func visibilityOf(v uml.Visibility) string {
	switch v {
	case uml.Private:
		return "private"
	case uml.Protected:
		return "protected"
	case uml.PackagePrivate:
		return "internal"
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

// csLiteral converts a diagram default into a C# literal. Fractional
// literals pick up the suffix the mapped type requires; anything not
// recognizably boolean, null, or numeric becomes a string literal.
func csLiteral(raw, mappedType string) string {
	switch strings.ToLower(raw) {
	case "true":
		return "true"
	case "false":
		return "false"
	case "null", "nil", "none":
		return "null"
	}
	if backend.IsNumericLiteral(raw) {
		if !backend.IsIntegerLiteral(raw) {
			switch mappedType {
			case "float":
				return raw + "f"
			case "decimal":
				return raw + "m"
			}
		}
		return raw
	}
	return `"` + raw + `"`
}
