package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"umlc/internal/diag"
	"umlc/internal/lexer"
	"umlc/internal/source"
	"umlc/internal/token"
)

// testReporter collects every diagnostic the lexer emits
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer builds a lexer over a test string
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.puml", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{diagnostics: make([]diag.Diagnostic, 0)}
	opts := lexer.Options{Reporter: reporter}
	lx := lexer.New(file, opts)

	return lx, reporter
}

// collectAllTokens drains the lexer up to EOF
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens checks the token kind sequence for an input
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)

	// drop EOF from the comparison
	if len(tokens) > 0 && tokens[len(tokens)-1].Kind == token.EOF {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d\nInput: %q\nTokens: %v\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}

	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("Token %d: expected %v, got %v (text: %q)",
				i, expected[i], tok.Kind, tok.Text)
		}
	}
}

// expectSingleToken checks that the input produces exactly one token
func expectSingleToken(t *testing.T, input string, expectedKind token.Kind, expectedText string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()

	if tok.Kind != expectedKind {
		t.Errorf("Expected kind %v, got %v", expectedKind, tok.Kind)
	}
	if tok.Text != expectedText {
		t.Errorf("Expected text %q, got %q", expectedText, tok.Text)
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ====== identifiers and keywords ======

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"_bar", "_bar"},
		{"x123", "x123"},
		{"camelCase", "camelCase"},
		{"Cliente", "Cliente"},
		{"Validação", "Validação"},
		{"Endereço", "Endereço"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, token.Ident, tt.text)
		})
	}
}

func TestKeywords_Lowercase(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"class", token.KwClass},
		{"interface", token.KwInterface},
		{"enum", token.KwEnum},
		{"package", token.KwPackage},
		{"abstract", token.KwAbstract},
		{"extends", token.KwExtends},
		{"implements", token.KwImplements},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestKeywords_CaseSensitive(t *testing.T) {
	// uppercase spellings stay ordinary identifiers
	expectSingleToken(t, "Class", token.Ident, "Class")
	expectSingleToken(t, "ENUM", token.Ident, "ENUM")
	expectSingleToken(t, "Interface", token.Ident, "Interface")
}

// ====== directives ======

func TestDirectives(t *testing.T) {
	expectSingleToken(t, "@startuml", token.StartDirective, "@startuml")
	expectSingleToken(t, "@enduml", token.EndDirective, "@enduml")
}

func TestDirectiveWithName(t *testing.T) {
	expectTokens(t, "@startuml Loja", []token.Kind{token.StartDirective, token.Ident})
	expectTokens(t, `@startuml "Online Shop"`, []token.Kind{token.StartDirective, token.String})
}

func TestUnknownDirective(t *testing.T) {
	lx, reporter := makeTestLexer("@foo")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("Expected an error for an unknown directive")
	}
	if reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("Expected LexUnknownChar, got %v", reporter.diagnostics[0].Code.ID())
	}
}

// ====== arrows ======

func TestArrows(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"<|--", token.InheritLeft},
		{"--|>", token.InheritRight},
		{"<|..", token.RealizeLeft},
		{"..|>", token.RealizeRight},
		{"*--", token.ComposeLeft},
		{"--*", token.ComposeRight},
		{"o--", token.AggregLeft},
		{"--o", token.AggregRight},
		{"-->", token.AssocRight},
		{"<--", token.AssocLeft},
		{"..>", token.DependRight},
		{"<..", token.DependLeft},
		{"--", token.AssocPlain},
		{"..", token.DependPlain},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestArrowVsIdent(t *testing.T) {
	// o-- is the aggregation arrow, but a word starting with o is a name
	expectSingleToken(t, "o--", token.AggregLeft, "o--")
	expectTokens(t, "order", []token.Kind{token.Ident})
	expectTokens(t, "Pedido o-- Item", []token.Kind{token.Ident, token.AggregLeft, token.Ident})
}

func TestArrowGreediness(t *testing.T) {
	// the 4-byte inheritance arrow wins over -- plus |>
	expectTokens(t, "A --|> B", []token.Kind{token.Ident, token.InheritRight, token.Ident})
	expectTokens(t, "A -- B", []token.Kind{token.Ident, token.AssocPlain, token.Ident})
	expectTokens(t, "A --> B", []token.Kind{token.Ident, token.AssocRight, token.Ident})
}

// ====== visibility and punctuation ======

func TestVisibilityMarkers(t *testing.T) {
	expectSingleToken(t, "+", token.Plus, "+")
	expectSingleToken(t, "-", token.Minus, "-")
	expectSingleToken(t, "#", token.Hash, "#")
	expectSingleToken(t, "~", token.Tilde, "~")
}

func TestPunctuation(t *testing.T) {
	expectTokens(t, "( ) : , = < > }", []token.Kind{
		token.LParen, token.RParen, token.Colon, token.Comma,
		token.Assign, token.Lt, token.Gt, token.RBrace,
	})
}

func TestGenericsTokenize(t *testing.T) {
	expectTokens(t, "List<Pedido>", []token.Kind{token.Ident, token.Lt, token.Ident, token.Gt})
	expectTokens(t, "Map<string, int>", []token.Kind{
		token.Ident, token.Lt, token.Ident, token.Comma, token.Ident, token.Gt,
	})
}

// ====== annotations ======

func TestAnnotations(t *testing.T) {
	expectSingleToken(t, "{abstract}", token.AnnAbstract, "{abstract}")
	expectSingleToken(t, "{static}", token.AnnStatic, "{static}")
	expectSingleToken(t, "{classifier}", token.AnnStatic, "{classifier}")
}

func TestBraceIsNotAnnotation(t *testing.T) {
	expectSingleToken(t, "{", token.LBrace, "{")
	expectTokens(t, "{abstract", []token.Kind{token.LBrace, token.KwAbstract})
	expectTokens(t, "{foo}", []token.Kind{token.LBrace, token.Ident, token.RBrace})
	expectTokens(t, "class A {", []token.Kind{token.KwClass, token.Ident, token.LBrace})
}

// ====== quoted names ======

func TestQuotedNameKeepsQuotes(t *testing.T) {
	expectSingleToken(t, `"Cliente VIP"`, token.String, `"Cliente VIP"`)
}

func TestQuotedNameEscapes(t *testing.T) {
	expectSingleToken(t, `"a\"b"`, token.String, `"a\"b"`)
}

func TestUnterminatedQuote(t *testing.T) {
	lx, reporter := makeTestLexer(`"never closed`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("Expected an unterminated quote error")
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("Expected LexUnterminatedString, got %v", reporter.diagnostics[0].Code.ID())
	}
}

func TestNewlineInQuote(t *testing.T) {
	lx, reporter := makeTestLexer("\"broken\nname\"")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("Expected an error for a newline inside quotes")
	}
}

// ====== multiplicities and numbers ======

func TestMultiplicities(t *testing.T) {
	expectSingleToken(t, "1", token.Ident, "1")
	expectSingleToken(t, "0..*", token.Ident, "0..*")
	expectSingleToken(t, "1..5", token.Ident, "1..5")
	expectSingleToken(t, "255", token.Ident, "255")
}

func TestEnumValueTokens(t *testing.T) {
	expectTokens(t, "ATIVO = 100", []token.Kind{token.Ident, token.Assign, token.Ident})
}

// ====== unknown characters ======

func TestUnknownChar(t *testing.T) {
	lx, reporter := makeTestLexer("$")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("Expected an unknown character error")
	}
	if reporter.diagnostics[0].Code != diag.LexUnknownChar {
		t.Errorf("Expected LexUnknownChar, got %v", reporter.diagnostics[0].Code.ID())
	}
}

func TestLoneDotIsUnknown(t *testing.T) {
	lx, reporter := makeTestLexer(".")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("Expected Invalid, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Error("Expected an error for a lone dot")
	}
}

// ====== trivia ======

func TestLineCommentTrivia(t *testing.T) {
	lx, _ := makeTestLexer("' a comment\nclass")
	tok := lx.Next()
	if tok.Kind != token.KwClass {
		t.Fatalf("Expected KwClass, got %v", tok.Kind)
	}
	var kinds []token.TriviaKind
	for _, tr := range tok.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{token.TriviaLineComment, token.TriviaNewline}
	if len(kinds) != len(want) {
		t.Fatalf("Expected trivia %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Trivia %d: expected %v, got %v", i, want[i], kinds[i])
		}
	}
}

func TestBlockCommentTrivia(t *testing.T) {
	lx, reporter := makeTestLexer("/' hidden\ntext '/ class")
	tok := lx.Next()
	if tok.Kind != token.KwClass {
		t.Fatalf("Expected KwClass, got %v (errors: %v)", tok.Kind, reporter.ErrorMessages())
	}
	if len(tok.Leading) == 0 || tok.Leading[0].Kind != token.TriviaBlockComment {
		t.Error("Expected leading block comment trivia")
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, reporter := makeTestLexer("/' never closed")
	tok := lx.Next()
	if tok.Kind != token.EOF {
		t.Errorf("Expected EOF after swallowed comment, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatal("Expected an unterminated block comment error")
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedBlockComment {
		t.Errorf("Expected LexUnterminatedBlockComment, got %v", reporter.diagnostics[0].Code.ID())
	}
}

func TestPresentationLinesSkipped(t *testing.T) {
	input := "skinparam classAttributeIconSize 0\nhide circle\nshow methods\n!theme plain\nclass A"
	expectTokens(t, input, []token.Kind{token.KwClass, token.Ident})
}

func TestDirectiveTriviaRecorded(t *testing.T) {
	lx, _ := makeTestLexer("skinparam monochrome true\nclass A")
	tok := lx.Next()
	if tok.Kind != token.KwClass {
		t.Fatalf("Expected KwClass, got %v", tok.Kind)
	}
	found := false
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaDirective {
			found = true
		}
	}
	if !found {
		t.Error("Expected the skinparam line in leading trivia")
	}
}

func TestHideAsNameStillLexes(t *testing.T) {
	// hide with no directive-shaped argument is an ordinary identifier
	expectTokens(t, "hide : bool", []token.Kind{token.Ident, token.Colon, token.Ident})
}

func TestDirectiveOnlyAtLineStart(t *testing.T) {
	// mid-line, show is a plain identifier (a method name here)
	expectTokens(t, "+ show mode", []token.Kind{token.Plus, token.Ident, token.Ident})
}

// ====== integration ======

func TestSmallDiagram(t *testing.T) {
	input := "@startuml\n" +
		"class Cliente {\n" +
		"  + nome : string\n" +
		"  + comprar(valor : float)\n" +
		"}\n" +
		"Cliente --> Pedido : faz\n" +
		"@enduml\n"
	expectTokens(t, input, []token.Kind{
		token.StartDirective,
		token.KwClass, token.Ident, token.LBrace,
		token.Plus, token.Ident, token.Colon, token.Ident,
		token.Plus, token.Ident, token.LParen, token.Ident, token.Colon, token.Ident, token.RParen,
		token.RBrace,
		token.Ident, token.AssocRight, token.Ident, token.Colon, token.Ident,
		token.EndDirective,
	})
}

func TestRelationshipWithCardinalities(t *testing.T) {
	expectTokens(t, `Cliente "1" *-- "0..*" Pedido : possui`, []token.Kind{
		token.Ident, token.String, token.ComposeLeft, token.String, token.Ident,
		token.Colon, token.Ident,
	})
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("class A")
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Errorf("Peek %v(%q) != Next %v(%q)", p.Kind, p.Text, n.Kind, n.Text)
	}
	if next := lx.Next(); next.Kind != token.Ident {
		t.Errorf("Expected Ident after peeked token, got %v", next.Kind)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("Call %d: expected EOF, got %v", i, tok.Kind)
		}
	}
}

func TestSpansSliceSource(t *testing.T) {
	input := "class Cliente"
	lx, _ := makeTestLexer(input)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("Span slice %q != Text %q", got, tok.Text)
		}
	}
}
