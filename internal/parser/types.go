package parser

import (
	"strings"

	"umlc/internal/diag"
	"umlc/internal/token"
)

// parseTypeExpr parses a type reference: a bare name, a quoted name
// taken verbatim, or a generic application with any number of balanced
// arguments. The result is the canonical text form, with generic
// arguments joined by ", ".
func (p *Parser) parseTypeExpr() (string, bool) {
	if p.at(token.String) {
		tok := p.advance()
		return unquote(tok.Text), true
	}

	tok, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name")
	if !ok {
		return "", false
	}
	name := tok.Text
	if !p.at(token.Lt) {
		return name, true
	}

	p.advance() // '<'
	var args []string
	for {
		arg, ok := p.parseTypeExpr()
		if !ok {
			return name, false
		}
		args = append(args, arg)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	if _, ok := p.expect(token.Gt, diag.SynExpectType, "expected '>' to close generic type"); !ok {
		return name, false
	}
	return name + "<" + strings.Join(args, ", ") + ">", true
}
