package python

import (
	"sort"
	"strings"

	"umlc/internal/backend"
	"umlc/internal/uml"
)

// typeEntry is one table row: the rendered Python expression and the
// symbolic imports it drags in.
type typeEntry struct {
	expr    string
	imports []string
}

var simpleTypes = map[string]typeEntry{
	"String":    {expr: "str"},
	"string":    {expr: "str"},
	"str":       {expr: "str"},
	"char":      {expr: "str"},
	"Char":      {expr: "str"},
	"Character": {expr: "str"},
	"int":       {expr: "int"},
	"Integer":   {expr: "int"},
	"integer":   {expr: "int"},
	"long":      {expr: "int"},
	"Long":      {expr: "int"},
	"byte":      {expr: "int"},
	"Byte":      {expr: "int"},
	"short":     {expr: "int"},
	"Short":     {expr: "int"},
	"float":     {expr: "float"},
	"Float":     {expr: "float"},
	"double":    {expr: "float"},
	"Double":    {expr: "float"},
	"decimal":   {expr: "float"},
	"Decimal":   {expr: "float"},
	"bool":      {expr: "bool"},
	"boolean":   {expr: "bool"},
	"Boolean":   {expr: "bool"},

	"Date":     {expr: "datetime.date", imports: []string{"datetime"}},
	"date":     {expr: "datetime.date", imports: []string{"datetime"}},
	"DateTime": {expr: "datetime.datetime", imports: []string{"datetime"}},
	"datetime": {expr: "datetime.datetime", imports: []string{"datetime"}},
	"Time":     {expr: "datetime.time", imports: []string{"datetime"}},

	"void": {expr: "None"},
	"None": {expr: "None"},

	"Object": {expr: "Any", imports: []string{"typing:Any"}},
	"object": {expr: "Any", imports: []string{"typing:Any"}},
	"Any":    {expr: "Any", imports: []string{"typing:Any"}},
}

var containerTypes = map[string]typeEntry{
	"List":       {expr: "List", imports: []string{"typing:List"}},
	"ArrayList":  {expr: "List", imports: []string{"typing:List"}},
	"Array":      {expr: "List", imports: []string{"typing:List"}},
	"Queue":      {expr: "List", imports: []string{"typing:List"}},
	"Stack":      {expr: "List", imports: []string{"typing:List"}},
	"Collection": {expr: "List", imports: []string{"typing:List"}},
	"Set":        {expr: "Set", imports: []string{"typing:Set"}},
	"HashSet":    {expr: "Set", imports: []string{"typing:Set"}},
	"Map":        {expr: "Dict", imports: []string{"typing:Dict"}},
	"HashMap":    {expr: "Dict", imports: []string{"typing:Dict"}},
	"Dictionary": {expr: "Dict", imports: []string{"typing:Dict"}},
	"Dict":       {expr: "Dict", imports: []string{"typing:Dict"}},
	"Optional":   {expr: "Optional", imports: []string{"typing:Optional"}},
	"Tuple":      {expr: "Tuple", imports: []string{"typing:Tuple"}},
	"Union":      {expr: "Union", imports: []string{"typing:Union"}},
	"Callable":   {expr: "Callable", imports: []string{"typing:Callable"}},
}

// TypeMapper converts raw diagram type text into Python annotation
// expressions plus symbolic imports. Symbolic imports come in three
// spellings: "datetime" for the module import, "typing:Name" for the
// typing line, and "struct:Name" for a declared structure reference.
// Names matching neither table nor registry pass through and are
// remembered as opaque.
type TypeMapper struct {
	diagram *uml.Diagram
	opaque  map[string]bool
}

func newTypeMapper(d *uml.Diagram) *TypeMapper {
	return &TypeMapper{diagram: d, opaque: make(map[string]bool)}
}

// Annotation maps type text for annotation position, where structure
// references render as quoted forward references.
func (m *TypeMapper) Annotation(raw string) (string, []string) {
	return m.mapType(raw, true)
}

// Heritage maps a base or interface name for the class header, where
// quoting is not allowed.
func (m *TypeMapper) Heritage(name string) (string, []string) {
	return m.mapType(name, false)
}

func (m *TypeMapper) mapType(raw string, quote bool) (string, []string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if base, args, ok := backend.SplitGeneric(raw); ok {
		head, imports := m.mapHead(base)
		parts := make([]string, len(args))
		for i, arg := range args {
			expr, imp := m.mapType(arg, quote)
			parts[i] = expr
			imports = append(imports, imp...)
		}
		return head + "[" + strings.Join(parts, ", ") + "]", imports
	}
	if entry, ok := simpleTypes[raw]; ok {
		return entry.expr, entry.imports
	}
	if entry, ok := containerTypes[raw]; ok {
		return entry.expr, entry.imports
	}
	return m.structRef(raw, quote)
}

// mapHead resolves the base name of a parametrized type. A structure
// used as a generic head stays bare: quoting would not survive the
// subscript.
func (m *TypeMapper) mapHead(base string) (string, []string) {
	if entry, ok := containerTypes[base]; ok {
		return entry.expr, append([]string(nil), entry.imports...)
	}
	if entry, ok := simpleTypes[base]; ok {
		return entry.expr, append([]string(nil), entry.imports...)
	}
	expr, imports := m.structRef(base, false)
	return expr, append([]string(nil), imports...)
}

func (m *TypeMapper) structRef(name string, quote bool) (string, []string) {
	rendered := className(name)
	var imports []string
	if _, declared := m.diagram.Lookup(name); declared {
		imports = []string{"struct:" + name}
	} else {
		m.opaque[name] = true
	}
	if quote {
		rendered = "'" + rendered + "'"
	}
	return rendered, imports
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
