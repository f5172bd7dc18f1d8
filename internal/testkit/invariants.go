// Package testkit holds shared invariant checks for the front-end
// tests: lexer and parser tests run every token stream through
// CheckTokenInvariants so span bookkeeping bugs surface everywhere at
// once.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"umlc/internal/source"
	"umlc/internal/token"
)

// CheckTokenInvariants runs a minimal set of invariants on a lexed
// token stream:
//  1. the stream is non-empty and ends with exactly one EOF token
//  2. every span stays within the file's content bounds
//  3. spans never overlap and never move backwards in stream order
//  4. every non-EOF token's text matches the bytes its span covers
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil source file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	last := tokens[len(tokens)-1]
	if last.Kind != token.EOF {
		return fmt.Errorf("stream ends with %v, want EOF", last.Kind)
	}
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			return fmt.Errorf("token %d: EOF before end of stream", i)
		}
	}

	limit, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	prevEnd := uint32(0)
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d (%v): span names file %d, want %d", i, tok.Kind, sp.File, sf.ID)
		}
		if sp.End < sp.Start {
			return fmt.Errorf("token %d (%v): inverted span [%d,%d)", i, tok.Kind, sp.Start, sp.End)
		}
		if sp.End > limit {
			return fmt.Errorf("token %d (%v): span end %d beyond content %d", i, tok.Kind, sp.End, limit)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d (%v): span start %d overlaps previous end %d", i, tok.Kind, sp.Start, prevEnd)
		}
		prevEnd = sp.End

		if tok.Kind == token.EOF {
			continue
		}
		if covered := string(sf.Content[sp.Start:sp.End]); covered != tok.Text {
			return fmt.Errorf("token %d (%v): span covers %q, text is %q", i, tok.Kind, covered, tok.Text)
		}
	}
	return nil
}
