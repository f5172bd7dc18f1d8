package parser

import (
	"umlc/internal/diag"
	"umlc/internal/token"
	"umlc/internal/uml"
)

// parseMembers parses the brace-enclosed body of a class or interface.
func (p *Parser) parseMembers(common *uml.Common, owner string) bool {
	for {
		switch {
		case p.at(token.RBrace):
			p.advance()
			return true
		case p.at(token.EOF):
			p.err(diag.SynUnclosedBrace, "unclosed body of '"+owner+"'")
			return false
		case p.at(token.EndDirective):
			p.err(diag.SynUnclosedBrace, "body of '"+owner+"' not closed before @enduml")
			return false
		case p.at(token.Invalid):
			p.advance()
		default:
			if p.opts.Enough() {
				return false
			}
			if !p.parseMember(common) {
				if !p.atOr(token.RBrace, token.EOF, token.EndDirective) {
					p.advance()
				}
				p.resyncMember()
			}
		}
	}
}

// resyncMember skips to something that can open the next member.
func (p *Parser) resyncMember() {
	p.resyncUntil(
		token.Plus, token.Minus, token.Hash, token.Tilde,
		token.AnnAbstract, token.AnnStatic,
		token.RBrace, token.EndDirective,
	)
}

// parseMember parses one member line:
//
//	[+|-|#|~] [{static}|{abstract}] name(params) [: ReturnType]
//	[+|-|#|~] [{static}] name [: Type] [= default]
//
// Visibility defaults to public. The parenthesis after the name is what
// makes a member a method.
func (p *Parser) parseMember(common *uml.Common) bool {
	vis := uml.Public
	if p.lx.Peek().IsVisibility() {
		v, _ := uml.VisibilityFromMarker(p.lx.Peek().Text)
		vis = v
		p.advance()
	}

	static, abstract := false, false
	for p.atOr(token.AnnStatic, token.AnnAbstract) {
		if p.at(token.AnnStatic) {
			static = true
		} else {
			abstract = true
		}
		p.advance()
	}

	nameTok, ok := p.expectName("expected member name")
	if !ok {
		return false
	}
	name := unquote(nameTok.Text)

	if p.at(token.LParen) {
		p.advance()
		params, ok := p.parseParams()
		if !ok {
			return false
		}
		returns := ""
		if p.at(token.Colon) {
			p.advance()
			returns, ok = p.parseTypeExpr()
			if !ok {
				return false
			}
		}
		common.Meths = append(common.Meths, &uml.Method{
			Name:       name,
			Visibility: vis,
			Static:     static,
			Abstract:   abstract,
			Returns:    returns,
			Params:     params,
		})
		return true
	}

	// attribute; {abstract} has no meaning here and is dropped
	typ := ""
	if p.at(token.Colon) {
		p.advance()
		typ, ok = p.parseTypeExpr()
		if !ok {
			return false
		}
	}
	def := ""
	if p.at(token.Assign) {
		p.advance()
		def, ok = p.parseDefault()
		if !ok {
			return false
		}
	}
	common.Attrs = append(common.Attrs, &uml.Attribute{
		Name:       name,
		Type:       typ,
		Visibility: vis,
		Static:     static,
		Default:    def,
	})
	return true
}

// parseParams parses the comma-separated name [: Type] list up to ')'.
func (p *Parser) parseParams() ([]*uml.Parameter, bool) {
	var params []*uml.Parameter
	if p.at(token.RParen) {
		p.advance()
		return params, true
	}

	for {
		nameTok, ok := p.expectName("expected parameter name")
		if !ok {
			return params, false
		}
		param := &uml.Parameter{Name: unquote(nameTok.Text)}
		if p.at(token.Colon) {
			p.advance()
			param.Type, ok = p.parseTypeExpr()
			if !ok {
				return params, false
			}
		}
		params = append(params, param)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return params, false
	}
	return params, true
}

// parseDefault parses the single-token default value after '='. A
// leading minus folds into the stored text.
func (p *Parser) parseDefault() (string, bool) {
	neg := ""
	if p.at(token.Minus) {
		p.advance()
		neg = "-"
	}
	if !p.lx.Peek().IsName() {
		p.err(diag.SynUnexpectedToken, "expected default value after '='")
		return "", false
	}
	tok := p.advance()
	return neg + unquote(tok.Text), true
}
