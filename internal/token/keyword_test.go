package token_test

import (
	"testing"

	"umlc/internal/token"
)

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"class":      token.KwClass,
		"interface":  token.KwInterface,
		"enum":       token.KwEnum,
		"package":    token.KwPackage,
		"abstract":   token.KwAbstract,
		"extends":    token.KwExtends,
		"implements": token.KwImplements,
	}
	for word, want := range cases {
		got, ok := token.LookupKeyword(word)
		if !ok {
			t.Errorf("expected %q to be a keyword", word)
			continue
		}
		if got != want {
			t.Errorf("%q: expected %v, got %v", word, want, got)
		}
	}
}

func TestLookupKeywordCaseSensitive(t *testing.T) {
	for _, word := range []string{"Class", "CLASS", "Enum", "Package"} {
		if _, ok := token.LookupKeyword(word); ok {
			t.Errorf("%q must stay an ordinary identifier", word)
		}
	}
}

func TestLookupKeywordMiss(t *testing.T) {
	for _, word := range []string{"", "struct", "classe", "interfaces"} {
		if _, ok := token.LookupKeyword(word); ok {
			t.Errorf("%q must not be a keyword", word)
		}
	}
}
