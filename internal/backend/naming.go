package backend

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes accented runes and removes the combining
// marks, so "emissão" becomes "emissao" before casing.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritics from s. Input that fails to
// transform is returned unchanged.
func StripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// wordsOf splits a diagram name into lowercase words. Separators are
// underscores, spaces, hyphens, and dots; a lower-to-upper case change
// also starts a new word. Anything that cannot appear in an identifier
// is dropped.
func wordsOf(name string) []string {
	name = StripAccents(name)

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	prevLower := false
	for _, r := range name {
		switch {
		case r == '_' || r == ' ' || r == '-' || r == '.':
			flush()
			prevLower = false
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			if unicode.IsUpper(r) && prevLower {
				flush()
			}
			cur = append(cur, r)
			prevLower = !unicode.IsUpper(r)
		default:
			// Punctuation and symbols do not survive sanitization.
		}
	}
	flush()
	return words
}

// SnakeCase renders a diagram name as snake_case.
func SnakeCase(name string) string {
	return strings.Join(wordsOf(name), "_")
}

// PascalCase renders a diagram name as PascalCase.
func PascalCase(name string) string {
	return inflect.Camelize(SnakeCase(name))
}

// CamelCase renders a diagram name as camelCase.
func CamelCase(name string) string {
	return inflect.CamelizeDownFirst(SnakeCase(name))
}

// UpperSnakeCase renders a diagram name as UPPER_SNAKE, the constant
// spelling.
func UpperSnakeCase(name string) string {
	return strings.ToUpper(SnakeCase(name))
}

// LowerFlatCase renders a diagram name as one lowercase run, the Java
// package spelling.
func LowerFlatCase(name string) string {
	return strings.Join(wordsOf(name), "")
}

// EnsureIdent guards a sanitized name against the two ways
// sanitization can break an identifier: a leading digit gets an
// underscore prefix, and a name with nothing left falls back.
func EnsureIdent(name, fallback string) string {
	if name == "" {
		return fallback
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}
