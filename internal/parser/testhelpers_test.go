package parser

import (
	"fmt"
	"strings"
	"testing"

	"umlc/internal/diag"
	"umlc/internal/source"
	"umlc/internal/uml"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func newTestFileSet() *source.FileSet {
	return source.NewFileSet()
}

// parseSource runs both passes over input and returns the model plus
// the collected diagnostics.
func parseSource(t *testing.T, input string) (*uml.Diagram, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	bag := diag.NewBag(64)
	res := ParseText(fs, "test.puml", []byte(input), Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	if res.Diagram == nil {
		t.Fatal("ParseText returned a nil diagram")
	}
	return res.Diagram, bag
}

// mustParseClean asserts the input parses without any diagnostics.
func mustParseClean(t *testing.T, input string) *uml.Diagram {
	t.Helper()
	d, bag := parseSource(t, input)
	if bag.Len() != 0 {
		t.Fatalf("expected clean parse, got: %s", diagnosticsSummary(bag))
	}
	return d
}

func countCode(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

func countErrors(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}

// lookupClass fetches a registered class or fails the test.
func lookupClass(t *testing.T, d *uml.Diagram, name string) *uml.Class {
	t.Helper()
	s, ok := d.Lookup(name)
	if !ok {
		t.Fatalf("class %q not registered", name)
	}
	c, ok := s.(*uml.Class)
	if !ok {
		t.Fatalf("%q is a %v, not a class", name, s.Kind())
	}
	return c
}

func lookupInterface(t *testing.T, d *uml.Diagram, name string) *uml.Interface {
	t.Helper()
	s, ok := d.Lookup(name)
	if !ok {
		t.Fatalf("interface %q not registered", name)
	}
	i, ok := s.(*uml.Interface)
	if !ok {
		t.Fatalf("%q is a %v, not an interface", name, s.Kind())
	}
	return i
}

func lookupEnum(t *testing.T, d *uml.Diagram, name string) *uml.Enum {
	t.Helper()
	s, ok := d.Lookup(name)
	if !ok {
		t.Fatalf("enum %q not registered", name)
	}
	e, ok := s.(*uml.Enum)
	if !ok {
		t.Fatalf("%q is a %v, not an enum", name, s.Kind())
	}
	return e
}
