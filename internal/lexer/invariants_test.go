package lexer_test

import (
	"testing"

	"umlc/internal/lexer"
	"umlc/internal/source"
	"umlc/internal/testkit"
	"umlc/internal/token"
)

// lexFile drains a fresh lexer over input and returns the stream with
// its backing file.
func lexFile(input string) ([]token.Token, *source.File) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("invariants.puml", []byte(input)))
	lx := lexer.New(file, lexer.Options{})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, file
}

func TestTokenStreamInvariants(t *testing.T) {
	inputs := map[string]string{
		"empty": "",
		"directives_only": "@startuml\n@enduml\n",
		"class_body": "@startuml\n" +
			"class Cliente {\n" +
			"  - saldo : float = 0.5\n" +
			"  # endereço : \"Endereço Completo\"\n" +
			"  + {static} contar() : int\n" +
			"}\n" +
			"@enduml\n",
		"relationships": "Pessoa <|-- Cliente\n" +
			"Cliente \"1\" o-- \"0..*\" Pedido : faz\n" +
			"Pedido ..> Estoque\n",
		"trivia_heavy": "' comment line\n" +
			"/' block\ncomment '/\n" +
			"skinparam monochrome true\n" +
			"class A\n",
		"broken_input": "class \"never closed\n$ @weird\n",
	}

	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			tokens, file := lexFile(input)
			if err := testkit.CheckTokenInvariants(tokens, file); err != nil {
				t.Fatalf("Invariant violated: %v", err)
			}
		})
	}
}
