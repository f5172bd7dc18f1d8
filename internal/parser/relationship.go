package parser

import (
	"strconv"

	"umlc/internal/diag"
	"umlc/internal/source"
	"umlc/internal/token"
	"umlc/internal/uml"
)

// relCandidate is a relationship statement as written, kept until the
// relational pass can resolve its endpoints against the full registry.
type relCandidate struct {
	source     string
	target     string
	sourceCard string
	targetCard string
	label      string
	arrow      token.Kind
	arrowText  string
	sourceSpan source.Span
	targetSpan source.Span
}

// arrowKinds maps each arrow token to its relationship kind. The two
// right-facing heritage arrows additionally swap their endpoints during
// resolution so the parent or interface always ends up as Source.
var arrowKinds = map[token.Kind]uml.RelationshipKind{
	token.InheritLeft:  uml.Inheritance,
	token.InheritRight: uml.Inheritance,
	token.RealizeLeft:  uml.Realization,
	token.RealizeRight: uml.Realization,
	token.ComposeLeft:  uml.Composition,
	token.ComposeRight: uml.Composition,
	token.AggregLeft:   uml.Aggregation,
	token.AggregRight:  uml.Aggregation,
	token.AssocRight:   uml.Association,
	token.AssocLeft:    uml.Association,
	token.DependRight:  uml.Dependency,
	token.DependLeft:   uml.Dependency,
	token.AssocPlain:   uml.Association,
	token.DependPlain:  uml.Dependency,
}

func swapsEndpoints(k token.Kind) bool {
	return k == token.InheritRight || k == token.RealizeRight
}

// parseRelationship parses origin ["card"] ARROW ["card"] target
// [: label]. Only the statement shape is checked here; endpoint
// resolution waits for the relational pass.
func (p *Parser) parseRelationship() bool {
	originTok := p.advance()
	rc := relCandidate{
		source:     unquote(originTok.Text),
		sourceSpan: originTok.Span,
	}

	if p.at(token.String) {
		cardTok := p.advance()
		rc.sourceCard = unquote(cardTok.Text)
	}

	if !p.lx.Peek().IsArrow() {
		p.err(diag.SynMalformedRelationship,
			"expected relationship arrow after "+strconv.Quote(rc.source))
		return false
	}
	arrowTok := p.advance()
	rc.arrow = arrowTok.Kind
	rc.arrowText = arrowTok.Text

	switch {
	case p.at(token.String):
		// quoted: target cardinality when a name follows, else the
		// target itself
		first := p.advance()
		if p.lx.Peek().IsName() {
			rc.targetCard = unquote(first.Text)
			targetTok := p.advance()
			rc.target = unquote(targetTok.Text)
			rc.targetSpan = targetTok.Span
		} else {
			rc.target = unquote(first.Text)
			rc.targetSpan = first.Span
		}
	case p.at(token.Ident):
		targetTok := p.advance()
		rc.target = unquote(targetTok.Text)
		rc.targetSpan = targetTok.Span
	default:
		p.err(diag.SynMalformedRelationship, "expected target structure name after "+strconv.Quote(rc.arrowText))
		return false
	}

	if p.at(token.Colon) {
		p.advance()
		if !p.lx.Peek().IsName() {
			p.err(diag.SynMalformedRelationship, "expected relationship label after ':'")
			return false
		}
		labelTok := p.advance()
		rc.label = unquote(labelTok.Text)
	}

	p.rels = append(p.rels, rc)
	return true
}

// resolveRelationships is the relational pass: endpoints are checked
// against the registry built by the structural pass, so declaration
// order never matters. An undeclared endpoint produces a warning and
// the relationship is still recorded with the written name; nothing is
// ever synthesized for it.
func (p *Parser) resolveRelationships() {
	for _, rc := range p.rels {
		kind, ok := arrowKinds[rc.arrow]
		if !ok {
			continue
		}

		src, dst := rc.source, rc.target
		srcCard, dstCard := rc.sourceCard, rc.targetCard
		srcSpan, dstSpan := rc.sourceSpan, rc.targetSpan
		if swapsEndpoints(rc.arrow) {
			src, dst = dst, src
			srcCard, dstCard = dstCard, srcCard
			srcSpan, dstSpan = dstSpan, srcSpan
		}

		if _, ok := p.diagram.Lookup(src); !ok {
			p.report(diag.RefUnresolvedEndpoint, diag.SevWarning, srcSpan,
				"relationship references undeclared structure "+strconv.Quote(src))
		}
		if _, ok := p.diagram.Lookup(dst); !ok {
			p.report(diag.RefUnresolvedEndpoint, diag.SevWarning, dstSpan,
				"relationship references undeclared structure "+strconv.Quote(dst))
		}

		p.diagram.AddRelationship(&uml.Relationship{
			Source:     src,
			Target:     dst,
			SourceCard: srcCard,
			TargetCard: dstCard,
			Kind:       kind,
			Label:      rc.label,
			Arrow:      rc.arrowText,
		})
	}
}

// heritageRef is one extends/implements clause entry, kept with its
// span so the relational pass can point warnings at the written name.
type heritageRef struct {
	owner  string
	clause string
	name   string
	span   source.Span
}

// checkHeritageClauses warns about extends/implements names that no
// declared structure carries. Generators still emit the written name,
// so external or forward-declared bases stay usable.
func (p *Parser) checkHeritageClauses() {
	for _, ref := range p.heritage {
		if _, ok := p.diagram.Lookup(ref.name); !ok {
			p.report(diag.RefUnknownBase, diag.SevWarning, ref.span,
				strconv.Quote(ref.owner)+" "+ref.clause+" undeclared structure "+strconv.Quote(ref.name))
		}
	}
}
