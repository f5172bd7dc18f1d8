package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"umlc/internal/uml"
)

// DiagramOutput is the JSON dump of one parsed model.
type DiagramOutput struct {
	Name          string               `json:"name"`
	Root          PackageOutput        `json:"root"`
	Relationships []RelationshipOutput `json:"relationships,omitempty"`
}

// PackageOutput is one package node in the JSON dump.
type PackageOutput struct {
	Name       string            `json:"name,omitempty"`
	Packages   []PackageOutput   `json:"packages,omitempty"`
	Structures []StructureOutput `json:"structures,omitempty"`
}

// StructureOutput is one class, interface, or enum in the JSON dump.
type StructureOutput struct {
	Kind       string            `json:"kind"`
	Name       string            `json:"name"`
	Abstract   bool              `json:"abstract,omitempty"`
	Base       string            `json:"base,omitempty"`
	Implements []string          `json:"implements,omitempty"`
	Extends    []string          `json:"extends,omitempty"`
	Attributes []AttributeOutput `json:"attributes,omitempty"`
	Methods    []MethodOutput    `json:"methods,omitempty"`
	Values     []EnumValueOutput `json:"values,omitempty"`
}

type AttributeOutput struct {
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Visibility string `json:"visibility"`
	Static     bool   `json:"static,omitempty"`
	Default    string `json:"default,omitempty"`
}

type MethodOutput struct {
	Name       string            `json:"name"`
	Visibility string            `json:"visibility"`
	Static     bool              `json:"static,omitempty"`
	Abstract   bool              `json:"abstract,omitempty"`
	Returns    string            `json:"returns,omitempty"`
	Params     []ParameterOutput `json:"params,omitempty"`
}

type ParameterOutput struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

type EnumValueOutput struct {
	Name     string `json:"name"`
	Value    int64  `json:"value"`
	Explicit bool   `json:"explicit,omitempty"`
}

type RelationshipOutput struct {
	Source     string   `json:"source"`
	SourceCard string   `json:"source_card,omitempty"`
	Kind       string   `json:"kind"`
	Target     string   `json:"target"`
	TargetCard string   `json:"target_card,omitempty"`
	Label      string   `json:"label,omitempty"`
	Arrow      string   `json:"arrow"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// FormatDiagramPretty writes the parsed model as an indented outline:
// the package tree with structure headers and member lines in diagram
// notation, then the relationship list with unresolved endpoints
// marked.
func FormatDiagramPretty(w io.Writer, d *uml.Diagram) error {
	fmt.Fprintf(w, "diagram %q\n", d.Name)
	writePackagePretty(w, d.Root, 0)
	if len(d.Relationships) == 0 {
		return nil
	}
	fmt.Fprintln(w, "relationships")
	for _, r := range d.Relationships {
		line := r.String()
		if missing := unresolvedEndpoints(d, r); len(missing) > 0 {
			fmt.Fprintf(w, "  %s [unresolved: %s]\n", line, strings.Join(missing, ", "))
			continue
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
	return nil
}

func writePackagePretty(w io.Writer, pkg *uml.Package, depth int) {
	indent := strings.Repeat("  ", depth)
	if !pkg.IsRoot() {
		fmt.Fprintf(w, "%spackage %q\n", indent, pkg.Name)
		depth++
		indent = strings.Repeat("  ", depth)
	}
	for _, s := range pkg.Structures {
		fmt.Fprintf(w, "%s%s\n", indent, structureHeader(s))
		for _, line := range memberLines(s) {
			fmt.Fprintf(w, "%s  %s\n", indent, line)
		}
	}
	for _, sub := range pkg.Packages {
		writePackagePretty(w, sub, depth)
	}
}

func structureHeader(s uml.Structure) string {
	switch v := s.(type) {
	case *uml.Class:
		head := ""
		if v.Abstract {
			head = "abstract "
		}
		head += "class " + quoteName(v.Name)
		if v.Base != "" {
			head += " extends " + quoteName(v.Base)
		}
		if len(v.Implements) > 0 {
			head += " implements " + joinNames(v.Implements)
		}
		return head
	case *uml.Interface:
		head := "interface " + quoteName(v.Name)
		if len(v.Extends) > 0 {
			head += " extends " + joinNames(v.Extends)
		}
		return head
	case *uml.Enum:
		return "enum " + quoteName(s.StructName())
	}
	return s.Kind().String() + " " + quoteName(s.StructName())
}

// memberLines renders attributes and methods (or enum values) in the
// diagram's own notation.
func memberLines(s uml.Structure) []string {
	if e, ok := s.(*uml.Enum); ok {
		lines := make([]string, 0, len(e.Values))
		for _, v := range e.Values {
			if v.Explicit {
				lines = append(lines, fmt.Sprintf("%s = %d", v.Name, v.Value))
			} else {
				lines = append(lines, v.Name)
			}
		}
		return lines
	}

	var lines []string
	for _, a := range s.Attributes() {
		line := a.Visibility.Marker() + " "
		if a.Static {
			line += "{static} "
		}
		line += a.Name
		if a.Type != "" {
			line += ": " + a.Type
		}
		if a.Default != "" {
			line += " = " + a.Default
		}
		lines = append(lines, line)
	}
	for _, m := range s.Methods() {
		line := m.Visibility.Marker() + " "
		if m.Static {
			line += "{static} "
		}
		if m.Abstract {
			line += "{abstract} "
		}
		params := make([]string, len(m.Params))
		for i, p := range m.Params {
			params[i] = p.Name
			if p.Type != "" {
				params[i] += ": " + p.Type
			}
			if p.Default != "" {
				params[i] += " = " + p.Default
			}
		}
		line += m.Name + "(" + strings.Join(params, ", ") + ")"
		if m.Returns != "" {
			line += ": " + m.Returns
		}
		lines = append(lines, line)
	}
	return lines
}

// quoteName re-quotes names that carry spaces, mirroring the input
// notation.
func quoteName(name string) string {
	if strings.ContainsAny(name, " \t") {
		return "\"" + name + "\""
	}
	return name
}

func joinNames(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quoteName(n)
	}
	return strings.Join(quoted, ", ")
}

func unresolvedEndpoints(d *uml.Diagram, r *uml.Relationship) []string {
	var missing []string
	if _, ok := d.Lookup(r.Source); !ok {
		missing = append(missing, r.Source)
	}
	if _, ok := d.Lookup(r.Target); !ok {
		missing = append(missing, r.Target)
	}
	return missing
}

// BuildDiagramOutput assembles the JSON DTO tree for one model.
func BuildDiagramOutput(d *uml.Diagram) DiagramOutput {
	out := DiagramOutput{
		Name: d.Name,
		Root: buildPackageOutput(d.Root),
	}
	for _, r := range d.Relationships {
		out.Relationships = append(out.Relationships, RelationshipOutput{
			Source:     r.Source,
			SourceCard: r.SourceCard,
			Kind:       r.Kind.String(),
			Target:     r.Target,
			TargetCard: r.TargetCard,
			Label:      r.Label,
			Arrow:      r.Arrow,
			Unresolved: unresolvedEndpoints(d, r),
		})
	}
	return out
}

func buildPackageOutput(pkg *uml.Package) PackageOutput {
	out := PackageOutput{Name: pkg.Name}
	for _, s := range pkg.Structures {
		out.Structures = append(out.Structures, buildStructureOutput(s))
	}
	for _, sub := range pkg.Packages {
		out.Packages = append(out.Packages, buildPackageOutput(sub))
	}
	return out
}

func buildStructureOutput(s uml.Structure) StructureOutput {
	out := StructureOutput{
		Kind: s.Kind().String(),
		Name: s.StructName(),
	}
	switch v := s.(type) {
	case *uml.Class:
		out.Abstract = v.Abstract
		out.Base = v.Base
		out.Implements = v.Implements
	case *uml.Interface:
		out.Extends = v.Extends
	case *uml.Enum:
		for _, val := range v.Values {
			out.Values = append(out.Values, EnumValueOutput{
				Name: val.Name, Value: val.Value, Explicit: val.Explicit,
			})
		}
	}
	for _, a := range s.Attributes() {
		out.Attributes = append(out.Attributes, AttributeOutput{
			Name: a.Name, Type: a.Type,
			Visibility: a.Visibility.String(),
			Static:     a.Static, Default: a.Default,
		})
	}
	for _, m := range s.Methods() {
		mo := MethodOutput{
			Name: m.Name, Visibility: m.Visibility.String(),
			Static: m.Static, Abstract: m.Abstract, Returns: m.Returns,
		}
		for _, p := range m.Params {
			mo.Params = append(mo.Params, ParameterOutput{
				Name: p.Name, Type: p.Type, Default: p.Default,
			})
		}
		out.Methods = append(out.Methods, mo)
	}
	return out
}

// FormatDiagramJSON writes the model dump as indented JSON.
func FormatDiagramJSON(w io.Writer, d *uml.Diagram) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagramOutput(d))
}
