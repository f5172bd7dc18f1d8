package parser

import (
	"slices"
	"strings"

	"umlc/internal/diag"
	"umlc/internal/source"
	"umlc/internal/token"
)

// advance consumes the next token and tracks lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// getDiagnosticSpan picks the best span for a diagnostic. At EOF the
// peeked span is empty, so point just past the last consumed token.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Start == peek.Span.End {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect consumes a token of kind k, or reports and returns false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// expectName consumes a bare identifier or quoted name.
func (p *Parser) expectName(msg string) (token.Token, bool) {
	if p.lx.Peek().IsName() {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(diag.SynExpectName, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) warn(code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
		if p.opts.MaxErrors != 0 && p.opts.CurrentErrors > p.opts.MaxErrors {
			return false
		}
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

// resyncUntil skips tokens until one of the kinds or EOF.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.atOr(kinds...) {
		p.advance()
	}
}

// startsNewLine reports whether the token's leading trivia contains a
// line break, i.e. the token is the first on its line.
func startsNewLine(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
		if tr.Kind == token.TriviaBlockComment && strings.ContainsRune(tr.Text, '\n') {
			return true
		}
	}
	return false
}

// unquote strips the surrounding quotes from a quoted name and resolves
// backslash escapes. Bare identifiers pass through untouched.
func unquote(text string) string {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return text
	}
	inner := text[1 : len(text)-1]
	if !strings.ContainsRune(inner, '\\') {
		return inner
	}
	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}

func quoteTok(tok token.Token) string {
	if tok.Text == "" {
		return tok.Kind.String()
	}
	return "\"" + tok.Text + "\""
}
