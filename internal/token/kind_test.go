package token_test

import (
	"testing"

	"umlc/internal/source"
	"umlc/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsName(t *testing.T) {
	for _, k := range []token.Kind{token.Ident, token.String} {
		if !tok(k).IsName() {
			t.Fatalf("%v should be a name", k)
		}
	}
	for _, k := range []token.Kind{token.KwClass, token.Colon, token.AssocPlain} {
		if tok(k).IsName() {
			t.Fatalf("%v must NOT be a name", k)
		}
	}
}

func TestIsVisibility(t *testing.T) {
	vis := []token.Kind{token.Plus, token.Minus, token.Hash, token.Tilde}
	for _, k := range vis {
		if !tok(k).IsVisibility() {
			t.Fatalf("%v should be a visibility marker", k)
		}
	}
	if tok(token.Ident).IsVisibility() {
		t.Fatal("Ident must NOT be a visibility marker")
	}
}

func TestIsArrow(t *testing.T) {
	arrows := []token.Kind{
		token.InheritLeft, token.InheritRight,
		token.RealizeLeft, token.RealizeRight,
		token.ComposeLeft, token.ComposeRight,
		token.AggregLeft, token.AggregRight,
		token.AssocRight, token.AssocLeft,
		token.DependRight, token.DependLeft,
		token.AssocPlain, token.DependPlain,
	}
	for _, k := range arrows {
		if !tok(k).IsArrow() {
			t.Fatalf("%v should be an arrow", k)
		}
	}
	for _, k := range []token.Kind{token.Minus, token.Lt, token.Ident} {
		if tok(k).IsArrow() {
			t.Fatalf("%v must NOT be an arrow", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwClass, token.KwInterface, token.KwEnum,
		token.KwPackage, token.KwAbstract, token.KwExtends, token.KwImplements,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be a keyword", k)
		}
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatal("Ident must NOT be a keyword")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.EOF:          "EOF",
		token.Ident:        "Ident",
		token.KwClass:      "KwClass",
		token.InheritLeft:  "InheritLeft",
		token.AnnStatic:    "AnnStatic",
		token.Gt:           "Gt",
		token.Kind(200):    "Kind(?)",
		token.DependPlain:  "DependPlain",
		token.EndDirective: "EndDirective",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String(): expected %q, got %q", uint8(k), want, got)
		}
	}
}
