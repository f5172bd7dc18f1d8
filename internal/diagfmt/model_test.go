package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"umlc/internal/uml"
)

func sampleDiagram() *uml.Diagram {
	d := uml.NewDiagram("Loja")
	vendas := d.Root.Child("Vendas")

	cliente := &uml.Class{
		Common: uml.Common{
			Name: "Cliente",
			Pkg:  d.Root,
			Attrs: []*uml.Attribute{
				{Name: "nome", Type: "String", Visibility: uml.Public},
				{Name: "contador", Type: "int", Visibility: uml.Private, Static: true, Default: "0"},
			},
			Meths: []*uml.Method{
				{
					Name: "comprar", Visibility: uml.Public, Returns: "bool",
					Params: []*uml.Parameter{{Name: "valor", Type: "float"}},
				},
			},
		},
		Base:       "Pessoa",
		Implements: []string{"Pagavel"},
	}
	pedido := &uml.Class{Common: uml.Common{Name: "Pedido", Pkg: vendas}}
	estado := &uml.Enum{
		Common: uml.Common{Name: "Estado", Pkg: vendas},
		Values: []uml.EnumValue{
			{Name: "ATIVO", Explicit: true, Value: 1},
			{Name: "INATIVO"},
		},
	}
	d.Declare(cliente)
	d.Declare(pedido)
	d.Declare(estado)
	d.AddRelationship(&uml.Relationship{
		Source: "Cliente", Target: "Pedido", Kind: uml.Association, Label: "faz", Arrow: "-->",
	})
	d.AddRelationship(&uml.Relationship{
		Source: "Cliente", Target: "Fantasma", Kind: uml.Dependency, Arrow: "..>",
	})
	return d
}

func TestFormatDiagramPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDiagramPretty(&buf, sampleDiagram()); err != nil {
		t.Fatalf("FormatDiagramPretty failed: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"diagram \"Loja\"",
		"class Cliente extends Pessoa implements Pagavel",
		"+ nome: String",
		"- {static} contador: int = 0",
		"+ comprar(valor: float): bool",
		"package \"Vendas\"",
		"enum Estado",
		"ATIVO = 1",
		"relationships",
		"Cliente association Pedido : faz",
		"[unresolved: Fantasma]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in dump:\n%s", want, out)
		}
	}
}

func TestFormatDiagramPrettyQuotesSpacedNames(t *testing.T) {
	d := uml.NewDiagram("d")
	d.Declare(&uml.Class{Common: uml.Common{Name: "Cliente VIP", Pkg: d.Root}})

	var buf bytes.Buffer
	if err := FormatDiagramPretty(&buf, d); err != nil {
		t.Fatalf("FormatDiagramPretty failed: %v", err)
	}
	if !strings.Contains(buf.String(), `class "Cliente VIP"`) {
		t.Errorf("spaced name not re-quoted:\n%s", buf.String())
	}
}

func TestFormatDiagramJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDiagramJSON(&buf, sampleDiagram()); err != nil {
		t.Fatalf("FormatDiagramJSON failed: %v", err)
	}

	var out DiagramOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if out.Name != "Loja" {
		t.Errorf("diagram name = %q, want Loja", out.Name)
	}
	if len(out.Root.Structures) != 1 || out.Root.Structures[0].Name != "Cliente" {
		t.Fatalf("unexpected root structures: %+v", out.Root.Structures)
	}
	if out.Root.Structures[0].Base != "Pessoa" {
		t.Errorf("base = %q, want Pessoa", out.Root.Structures[0].Base)
	}
	if len(out.Root.Packages) != 1 || out.Root.Packages[0].Name != "Vendas" {
		t.Fatalf("unexpected packages: %+v", out.Root.Packages)
	}
	vendas := out.Root.Packages[0]
	if len(vendas.Structures) != 2 {
		t.Fatalf("expected 2 structures in Vendas, got %d", len(vendas.Structures))
	}
	if vendas.Structures[1].Kind != "enum" || len(vendas.Structures[1].Values) != 2 {
		t.Errorf("unexpected enum dump: %+v", vendas.Structures[1])
	}
	if len(out.Relationships) != 2 {
		t.Fatalf("expected 2 relationships, got %d", len(out.Relationships))
	}
	if out.Relationships[0].Kind != "association" || out.Relationships[0].Label != "faz" {
		t.Errorf("unexpected relationship: %+v", out.Relationships[0])
	}
	if got := out.Relationships[1].Unresolved; len(got) != 1 || got[0] != "Fantasma" {
		t.Errorf("unresolved = %v, want [Fantasma]", got)
	}
}
