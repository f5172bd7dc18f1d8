package uml

import (
	"testing"
)

func classIn(d *Diagram, pkg *Package, name, base string, attrs ...*Attribute) *Class {
	c := &Class{
		Common: Common{Name: name, Pkg: pkg, Attrs: attrs},
		Base:   base,
	}
	if !d.Declare(c) {
		panic("duplicate declaration in test setup")
	}
	return c
}

func TestConstructorParamsBaseFirst(t *testing.T) {
	d := NewDiagram("shop")
	classIn(d, d.Root, "Person", "",
		&Attribute{Name: "name", Type: "string"},
		&Attribute{Name: "id", Type: "string"},
	)
	child := classIn(d, d.Root, "Customer", "Person",
		&Attribute{Name: "email", Type: "string"},
	)

	params := ConstructorParams(d, child)
	wantNames := []string{"name", "id", "email"}
	if len(params) != len(wantNames) {
		t.Fatalf("expected %d params, got %d", len(wantNames), len(params))
	}
	for i, want := range wantNames {
		if params[i].Name != want {
			t.Errorf("param %d: expected %q, got %q", i, want, params[i].Name)
		}
	}
	if !params[0].Inherited || !params[1].Inherited || params[2].Inherited {
		t.Error("inherited flags wrong: base params forward, own params assign")
	}
}

func TestConstructorParamsTransitiveChain(t *testing.T) {
	d := NewDiagram("zoo")
	classIn(d, d.Root, "Animal", "", &Attribute{Name: "species", Type: "string"})
	classIn(d, d.Root, "Mammal", "Animal", &Attribute{Name: "legs", Type: "int"})
	dog := classIn(d, d.Root, "Dog", "Mammal", &Attribute{Name: "breed", Type: "string"})

	params := ConstructorParams(d, dog)
	wantNames := []string{"species", "legs", "breed"}
	if len(params) != len(wantNames) {
		t.Fatalf("expected %d params, got %d", len(wantNames), len(params))
	}
	for i, want := range wantNames {
		if params[i].Name != want {
			t.Errorf("param %d: expected %q, got %q", i, want, params[i].Name)
		}
	}
}

func TestConstructorParamsSkipStaticAndDefaulted(t *testing.T) {
	d := NewDiagram("d")
	c := classIn(d, d.Root, "Config", "",
		&Attribute{Name: "VERSION", Type: "string", Static: true},
		&Attribute{Name: "host", Type: "string"},
		&Attribute{Name: "port", Type: "int", Default: "8080"},
	)

	params := ConstructorParams(d, c)
	if len(params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(params))
	}
	if params[0].Name != "host" || params[0].Default != "" {
		t.Errorf("expected required host first, got %+v", params[0])
	}
	if params[1].Name != "port" || params[1].Default != "8080" {
		t.Errorf("expected defaulted port last, got %+v", params[1])
	}
}

func TestConstructorParamsUnknownBase(t *testing.T) {
	d := NewDiagram("d")
	c := classIn(d, d.Root, "Orphan", "Missing", &Attribute{Name: "x", Type: "int"})

	params := ConstructorParams(d, c)
	if len(params) != 1 || params[0].Name != "x" {
		t.Errorf("unknown base must contribute nothing, got %+v", params)
	}
}

func TestConstructorParamsBaseCycle(t *testing.T) {
	d := NewDiagram("d")
	classIn(d, d.Root, "A", "B", &Attribute{Name: "a", Type: "int"})
	b := classIn(d, d.Root, "B", "A", &Attribute{Name: "b", Type: "int"})

	// The walk must terminate and include A's attribute exactly once.
	params := ConstructorParams(d, b)
	if len(params) != 2 {
		t.Fatalf("expected 2 params despite cycle, got %d", len(params))
	}
	if params[0].Name != "a" || params[1].Name != "b" {
		t.Errorf("expected [a b], got [%s %s]", params[0].Name, params[1].Name)
	}
}

func TestInheritedParamsOnly(t *testing.T) {
	d := NewDiagram("d")
	classIn(d, d.Root, "Base", "", &Attribute{Name: "core", Type: "int"})
	c := classIn(d, d.Root, "Derived", "Base", &Attribute{Name: "extra", Type: "int"})

	inherited := InheritedParams(d, c)
	if len(inherited) != 1 || inherited[0].Name != "core" {
		t.Errorf("expected only the base param, got %+v", inherited)
	}
}
