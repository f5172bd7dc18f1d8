package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"NomeCliente":       "nome_cliente",
		"dataEmissao":       "data_emissao",
		"Pedido":            "pedido",
		"PESSOA DO SISTEMA": "pessoa_do_sistema",
		"emissão":           "emissao",
		"Validação":         "validacao",
		"item2Fast":         "item2_fast",
		"nota-fiscal":       "nota_fiscal",
		"a.b":               "a_b",
		"":                  "",
		"!!!":               "",
	}
	for in, want := range cases {
		assert.Equal(t, want, SnakeCase(in), "SnakeCase(%q)", in)
	}
}

func TestPascalCase(t *testing.T) {
	cases := map[string]string{
		"pessoa do sistema": "PessoaDoSistema",
		"PESSOA DO SISTEMA": "PessoaDoSistema",
		"nome_cliente":      "NomeCliente",
		"pedido":            "Pedido",
		"Pedido":            "Pedido",
		"emissão":           "Emissao",
		"cliente VIP":       "ClienteVip",
	}
	for in, want := range cases {
		assert.Equal(t, want, PascalCase(in), "PascalCase(%q)", in)
	}
}

func TestCamelCase(t *testing.T) {
	cases := map[string]string{
		"Data Emissão": "dataEmissao",
		"NomeCliente":  "nomeCliente",
		"valor":        "valor",
	}
	for in, want := range cases {
		assert.Equal(t, want, CamelCase(in), "CamelCase(%q)", in)
	}
}

func TestUpperSnakeCase(t *testing.T) {
	assert.Equal(t, "TAXA_JUROS", UpperSnakeCase("taxaJuros"))
	assert.Equal(t, "ATIVO", UpperSnakeCase("ATIVO"))
	assert.Equal(t, "EM_ANALISE", UpperSnakeCase("Em Análise"))
}

func TestLowerFlatCase(t *testing.T) {
	assert.Equal(t, "pacoteprincipal", LowerFlatCase("Pacote Principal"))
	assert.Equal(t, "vendas", LowerFlatCase("vendas"))
}

func TestEnsureIdent(t *testing.T) {
	assert.Equal(t, "_2fast", EnsureIdent("2fast", "unnamed"))
	assert.Equal(t, "unnamed", EnsureIdent("", "unnamed"))
	assert.Equal(t, "pedido", EnsureIdent("pedido", "unnamed"))
}

func TestStripAccents(t *testing.T) {
	assert.Equal(t, "emissao", StripAccents("emissão"))
	assert.Equal(t, "Validacao", StripAccents("Validação"))
	assert.Equal(t, "ascii", StripAccents("ascii"))
}
