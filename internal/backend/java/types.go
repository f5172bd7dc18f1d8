package java

import (
	"sort"
	"strings"

	"umlc/internal/backend"
	"umlc/internal/uml"
)

// typeEntry is one table row: the rendered Java type and the
// fully-qualified names it needs imported.
type typeEntry struct {
	expr    string
	imports []string
}

var simpleTypes = map[string]typeEntry{
	"String":    {expr: "String"},
	"string":    {expr: "String"},
	"str":       {expr: "String"},
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
	"bool":      {expr: "boolean"},
	"boolean":   {expr: "boolean"},
	"Boolean":   {expr: "boolean"},

	"Date":     {expr: "Date", imports: []string{"java.util.Date"}},
	"date":     {expr: "Date", imports: []string{"java.util.Date"}},
	"DateTime": {expr: "LocalDateTime", imports: []string{"java.time.LocalDateTime"}},
	"datetime": {expr: "LocalDateTime", imports: []string{"java.time.LocalDateTime"}},
	"Time":     {expr: "LocalTime", imports: []string{"java.time.LocalTime"}},
	"TimeSpan": {expr: "Duration", imports: []string{"java.time.Duration"}},

	"void": {expr: "void"},
	"None": {expr: "void"},

	"Object": {expr: "Object"},
	"object": {expr: "Object"},
	"Any":    {expr: "Object"},
}

var containerTypes = map[string]typeEntry{
	"List":       {expr: "List", imports: []string{"java.util.List"}},
	"ArrayList":  {expr: "ArrayList", imports: []string{"java.util.ArrayList"}},
	"Array":      {expr: "ArrayList", imports: []string{"java.util.ArrayList"}},
	"Set":        {expr: "Set", imports: []string{"java.util.Set"}},
	"HashSet":    {expr: "HashSet", imports: []string{"java.util.HashSet"}},
	"Map":        {expr: "Map", imports: []string{"java.util.Map"}},
	"HashMap":    {expr: "HashMap", imports: []string{"java.util.HashMap"}},
	"Dictionary": {expr: "Map", imports: []string{"java.util.Map"}},
	"Dict":       {expr: "Map", imports: []string{"java.util.Map"}},
	"Queue":      {expr: "Queue", imports: []string{"java.util.Queue"}},
	"Deque":      {expr: "Deque", imports: []string{"java.util.Deque"}},
	"Stack":      {expr: "Stack", imports: []string{"java.util.Stack"}},
	"Collection": {expr: "Collection", imports: []string{"java.util.Collection"}},
}

// TypeMapper converts raw diagram type text into Java type expressions
// plus symbolic imports: a fully-qualified name for table types, or
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
// the positional fallback (Object for members, void for returns).
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
