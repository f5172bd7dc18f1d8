package csharp

import (
	"sort"
	"strings"

	"umlc/internal/backend"
	"umlc/internal/uml"
)

// typeEntry is one table row: the rendered C# type and the namespaces
// it needs.
type typeEntry struct {
	expr    string
	imports []string
}

var simpleTypes = map[string]typeEntry{
	"String":    {expr: "string"},
	"string":    {expr: "string"},
	"str":       {expr: "string"},
	"char":      {expr: "char"},
	"Char":      {expr: "char"},
	"Character": {expr: "char"},
	"int":       {expr: "int"},
	"Integer":   {expr: "int"},
	"integer":   {expr: "int"},
	"long":      {expr: "long"},
	"Long":      {expr: "long"},
	"byte":      {expr: "byte"},
	"Byte":      {expr: "byte"},
	"short":     {expr: "short"},
	"Short":     {expr: "short"},
	"float":     {expr: "float"},
	"Float":     {expr: "float"},
	"double":    {expr: "double"},
	"Double":    {expr: "double"},
	"decimal":   {expr: "decimal"},
	"Decimal":   {expr: "decimal"},
	"bool":      {expr: "bool"},
	"boolean":   {expr: "bool"},
	"Boolean":   {expr: "bool"},

	"Date":     {expr: "DateTime", imports: []string{"System"}},
	"date":     {expr: "DateTime", imports: []string{"System"}},
	"DateTime": {expr: "DateTime", imports: []string{"System"}},
	"datetime": {expr: "DateTime", imports: []string{"System"}},
	"Time":     {expr: "TimeSpan", imports: []string{"System"}},
	"TimeSpan": {expr: "TimeSpan", imports: []string{"System"}},

	"void": {expr: "void"},
	"None": {expr: "void"},

	"Object": {expr: "object"},
	"object": {expr: "object"},
	"Any":    {expr: "object"},
}

const collections = "System.Collections.Generic"

var containerTypes = map[string]typeEntry{
	"List":       {expr: "List", imports: []string{collections}},
	"ArrayList":  {expr: "List", imports: []string{collections}},
	"Array":      {expr: "List", imports: []string{collections}},
	"Set":        {expr: "HashSet", imports: []string{collections}},
	"HashSet":    {expr: "HashSet", imports: []string{collections}},
	"Map":        {expr: "Dictionary", imports: []string{collections}},
	"HashMap":    {expr: "Dictionary", imports: []string{collections}},
	"Dictionary": {expr: "Dictionary", imports: []string{collections}},
	"Dict":       {expr: "Dictionary", imports: []string{collections}},
	"Queue":      {expr: "Queue", imports: []string{collections}},
	"Stack":      {expr: "Stack", imports: []string{collections}},
	"Collection": {expr: "IEnumerable", imports: []string{collections}},
}

// TypeMapper converts raw diagram type text into C# type expressions
// plus symbolic imports: a plain namespace for table types, or
// "struct:Name" for a declared structure reference. Names matching
// neither table nor registry pass through PascalCased and are
// remembered as opaque.
type TypeMapper struct {
	diagram *uml.Diagram
	opaque  map[string]bool
}

func newTypeMapper(d *uml.Diagram) *TypeMapper {
	return &TypeMapper{diagram: d, opaque: make(map[string]bool)}
}

// TypeName maps type text. Empty text maps to empty; the caller picks
// the positional fallback (object for members, void for returns).
func (m *TypeMapper) TypeName(raw string) (string, []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if base, args, ok := backend.SplitGeneric(raw); ok {
		head, imports := m.mapHead(base)
		parts := make([]string, len(args))
		for i, arg := range args {
			expr, imp := m.TypeName(arg)
			parts[i] = expr
			imports = append(imports, imp...)
		}
		return head + "<" + strings.Join(parts, ", ") + ">", imports
	}
	if entry, ok := simpleTypes[raw]; ok {
		return entry.expr, entry.imports
	}
	if entry, ok := containerTypes[raw]; ok {
		return entry.expr, entry.imports
	}
	return m.structRef(raw)
}

func (m *TypeMapper) mapHead(base string) (string, []string) {
	if entry, ok := containerTypes[base]; ok {
		return entry.expr, append([]string(nil), entry.imports...)
	}
	if entry, ok := simpleTypes[base]; ok {
		return entry.expr, append([]string(nil), entry.imports...)
	}
	expr, imports := m.structRef(base)
	return expr, append([]string(nil), imports...)
}

func (m *TypeMapper) structRef(name string) (string, []string) {
	rendered := className(name)
	if _, declared := m.diagram.Lookup(name); declared {
		return rendered, []string{"struct:" + name}
	}
	m.opaque[name] = true
	return rendered, nil
}

// Opaque returns the distinct names that matched neither table nor
// registry, sorted.
func (m *TypeMapper) Opaque() []string {
	out := make([]string, 0, len(m.opaque))
	for name := range m.opaque {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
