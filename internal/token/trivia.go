package token

import "umlc/internal/source"

// TriviaKind classifies skipped source text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	// TriviaDirective covers presentation lines the converter ignores:
	// skinparam, hide, show, and !preprocessor lines.
	TriviaDirective
)

var triviaNames = [...]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
	TriviaDirective:    "Directive",
}

func (k TriviaKind) String() string {
	if int(k) < len(triviaNames) {
		return triviaNames[k]
	}
	return "TriviaKind(?)"
}

// Trivia is a run of skipped text preceding a token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
