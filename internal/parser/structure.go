package parser

import (
	"strconv"

	"umlc/internal/diag"
	"umlc/internal/source"
	"umlc/internal/token"
	"umlc/internal/uml"
)

// declare registers s and reports a duplicate name inside the owning
// package. Shadowing a name from another package is legal.
func (p *Parser) declare(s uml.Structure, nameSpan source.Span) {
	if !p.diagram.Declare(s) {
		p.report(diag.RefDuplicateStructure, diag.SevError, nameSpan,
			"duplicate structure "+strconv.Quote(s.StructName())+" in package")
	}
}

// parseClass parses [abstract] class Name [extends Base]
// [implements I1, I2] [{ members }].
func (p *Parser) parseClass(pkg *uml.Package, isAbstract bool) bool {
	p.advance() // 'abstract' or 'class'
	if isAbstract {
		if _, ok := p.expect(token.KwClass, diag.SynUnexpectedToken, "expected 'class' after 'abstract'"); !ok {
			return false
		}
	}

	nameTok, ok := p.expectName("expected class name")
	if !ok {
		return false
	}
	cls := &uml.Class{
		Common:   uml.Common{Name: unquote(nameTok.Text), Pkg: pkg},
		Abstract: isAbstract,
	}

	if p.at(token.KwExtends) {
		p.advance()
		baseTok, ok := p.expectName("expected base class name after 'extends'")
		if !ok {
			return false
		}
		cls.Base = unquote(baseTok.Text)
		p.heritage = append(p.heritage, heritageRef{cls.Name, "extends", cls.Base, baseTok.Span})
	}

	if p.at(token.KwImplements) {
		p.advance()
		for {
			ifaceTok, ok := p.expectName("expected interface name after 'implements'")
			if !ok {
				return false
			}
			name := unquote(ifaceTok.Text)
			cls.Implements = append(cls.Implements, name)
			p.heritage = append(p.heritage, heritageRef{cls.Name, "implements", name, ifaceTok.Span})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	p.declare(cls, nameTok.Span)

	if p.at(token.LBrace) {
		p.advance()
		return p.parseMembers(&cls.Common, cls.Name)
	}
	return true
}

// parseInterface parses interface Name [extends I1, I2] [{ members }].
func (p *Parser) parseInterface(pkg *uml.Package) bool {
	p.advance() // 'interface'

	nameTok, ok := p.expectName("expected interface name")
	if !ok {
		return false
	}
	iface := &uml.Interface{
		Common: uml.Common{Name: unquote(nameTok.Text), Pkg: pkg},
	}

	if p.at(token.KwExtends) {
		p.advance()
		for {
			extTok, ok := p.expectName("expected interface name after 'extends'")
			if !ok {
				return false
			}
			name := unquote(extTok.Text)
			iface.Extends = append(iface.Extends, name)
			p.heritage = append(p.heritage, heritageRef{iface.Name, "extends", name, extTok.Span})
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}

	p.declare(iface, nameTok.Span)

	if p.at(token.LBrace) {
		p.advance()
		return p.parseMembers(&iface.Common, iface.Name)
	}
	return true
}

// parseEnum parses enum Name [{ VALUE [= int] ... }]. Values are
// newline-separated in source, which the token stream reduces to plain
// adjacency.
func (p *Parser) parseEnum(pkg *uml.Package) bool {
	p.advance() // 'enum'

	nameTok, ok := p.expectName("expected enum name")
	if !ok {
		return false
	}
	en := &uml.Enum{
		Common: uml.Common{Name: unquote(nameTok.Text), Pkg: pkg},
	}
	p.declare(en, nameTok.Span)

	if !p.at(token.LBrace) {
		return true
	}
	p.advance()

	for {
		switch {
		case p.at(token.RBrace):
			p.advance()
			return true
		case p.at(token.EOF):
			p.err(diag.SynUnclosedBrace, "unclosed enum body '"+en.Name+"'")
			return false
		case p.at(token.EndDirective):
			p.err(diag.SynUnclosedBrace, "enum body '"+en.Name+"' not closed before @enduml")
			return false
		case p.at(token.Invalid):
			p.advance()
		case p.lx.Peek().IsName():
			valTok := p.advance()
			ev := uml.EnumValue{Name: unquote(valTok.Text)}
			if p.at(token.Assign) {
				p.advance()
				if v, ok := p.parseEnumInt(); ok {
					ev.Explicit = true
					ev.Value = v
				}
			}
			en.Values = append(en.Values, ev)
		default:
			p.err(diag.SynUnexpectedToken, "expected enum value name, got "+quoteTok(p.lx.Peek()))
			p.advance()
		}
	}
}

// parseEnumInt parses the integer after '=' in an enum value.
func (p *Parser) parseEnumInt() (int64, bool) {
	neg := false
	if p.at(token.Minus) {
		p.advance()
		neg = true
	}
	tok, ok := p.expect(token.Ident, diag.SynBadEnumValue, "expected integer enum value")
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		p.report(diag.SynBadEnumValue, diag.SevError, tok.Span,
			"enum value must be an integer, got "+strconv.Quote(tok.Text))
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}
