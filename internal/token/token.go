package token

import (
	"umlc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsName reports whether the token can serve as a name: a bare
// identifier or a quoted string.
func (t Token) IsName() bool {
	return t.Kind == Ident || t.Kind == String
}

// IsKeyword reports whether the token is a grammar keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwClass, KwInterface, KwEnum, KwPackage, KwAbstract, KwExtends, KwImplements:
		return true
	default:
		return false
	}
}

// IsVisibility reports whether the token is one of the member
// visibility markers + - # ~.
func (t Token) IsVisibility() bool {
	switch t.Kind {
	case Plus, Minus, Hash, Tilde:
		return true
	default:
		return false
	}
}

// IsArrow reports whether the token is a relationship arrow.
func (t Token) IsArrow() bool {
	switch t.Kind {
	case InheritLeft, InheritRight, RealizeLeft, RealizeRight,
		ComposeLeft, ComposeRight, AggregLeft, AggregRight,
		AssocRight, AssocLeft, DependRight, DependLeft,
		AssocPlain, DependPlain:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is plain punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LBrace, RBrace, LParen, RParen, Colon, Comma, Assign, Lt, Gt:
		return true
	default:
		return false
	}
}
