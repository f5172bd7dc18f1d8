package parser

import (
	"umlc/internal/diag"
	"umlc/internal/lexer"
	"umlc/internal/source"
	"umlc/internal/token"
	"umlc/internal/uml"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is exhausted.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Diagram *uml.Diagram
	Bag     *diag.Bag
}

// Parser holds the state for one diagram file. Parsing runs in two
// passes: the structural pass builds packages and structures and stores
// raw relationship statements, the relational pass then resolves every
// endpoint against the finished registry so forward references work.
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	opts     Options
	diagram  *uml.Diagram
	rels     []relCandidate
	heritage []heritageRef
	sawEnd   bool
	lastSpan source.Span
}

// ParseFile is the entry point for one already-lexed file.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:      lx,
		fs:      fs,
		opts:    opts,
		diagram: uml.NewDiagram(""),
	}

	p.parseDiagram()
	p.resolveRelationships()
	p.checkHeritageClauses()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Diagram: p.diagram,
		Bag:     bag,
	}
}

// ParseText registers text as a virtual file and parses it.
func ParseText(fs *source.FileSet, path string, text []byte, opts Options) Result {
	id := fs.AddVirtual(path, text)
	file := fs.Get(id)
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	return ParseFile(fs, lx, opts)
}

// parseDiagram consumes @startuml [name] ... @enduml.
func (p *Parser) parseDiagram() {
	if p.at(token.StartDirective) {
		p.advance()
		// the diagram name has to sit on the directive's own line
		if peek := p.lx.Peek(); peek.IsName() && !startsNewLine(peek) {
			nameTok := p.advance()
			p.diagram.Name = unquote(nameTok.Text)
		}
	} else {
		p.err(diag.SynMissingStart, "diagram must open with @startuml")
	}

	for !p.at(token.EOF) && !p.opts.Enough() {
		if p.at(token.EndDirective) {
			p.advance()
			p.sawEnd = true
			break
		}
		if !p.parseElement(p.diagram.Root) {
			p.resyncTop()
		}
	}

	if !p.sawEnd {
		if !p.opts.Enough() {
			p.err(diag.SynUnexpectedToken, "expected @enduml before end of input")
		}
		return
	}
	if !p.at(token.EOF) {
		p.err(diag.SynUnexpectedToken, "unexpected input after @enduml")
	}
}

// parseElement dispatches one statement inside the diagram or a package
// block. A bare name can only start a relationship statement.
func (p *Parser) parseElement(pkg *uml.Package) bool {
	switch p.lx.Peek().Kind {
	case token.KwPackage:
		return p.parsePackage(pkg)
	case token.KwAbstract:
		return p.parseClass(pkg, true)
	case token.KwClass:
		return p.parseClass(pkg, false)
	case token.KwInterface:
		return p.parseInterface(pkg)
	case token.KwEnum:
		return p.parseEnum(pkg)
	case token.Ident, token.String:
		return p.parseRelationship()
	case token.RBrace:
		p.err(diag.SynStrayBrace, "unmatched '}'")
		p.advance()
		return true
	case token.Invalid:
		// the lexer already reported it
		p.advance()
		return true
	case token.KwExtends, token.KwImplements:
		p.err(diag.SynKeywordOutsideBlock, "'"+p.lx.Peek().Text+"' is only valid in a structure declaration")
		return false
	case token.AnnAbstract, token.AnnStatic:
		p.err(diag.SynUnexpectedToken, "member annotation outside a structure body")
		return false
	default:
		p.err(diag.SynUnexpectedToken, "unexpected token "+quoteTok(p.lx.Peek()))
		return false
	}
}

// resyncTop skips ahead to the next statement starter, a closing brace
// or the end directive.
func (p *Parser) resyncTop() {
	p.resyncUntil(
		token.KwClass, token.KwInterface, token.KwEnum,
		token.KwPackage, token.KwAbstract,
		token.RBrace, token.EndDirective,
	)
}

// parsePackage parses package Name { elements } with arbitrary nesting.
func (p *Parser) parsePackage(pkg *uml.Package) bool {
	p.advance() // 'package'

	nameTok, ok := p.expectName("expected package name")
	if !ok {
		return false
	}
	child := pkg.Child(unquote(nameTok.Text))

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after package name"); !ok {
		return false
	}

	for {
		switch p.lx.Peek().Kind {
		case token.RBrace:
			p.advance()
			return true
		case token.EOF:
			p.err(diag.SynUnclosedBrace, "unclosed package block '"+child.Name+"'")
			return false
		case token.EndDirective:
			p.err(diag.SynUnclosedBrace, "package block '"+child.Name+"' not closed before @enduml")
			return false
		default:
			if p.opts.Enough() {
				return false
			}
			if !p.parseElement(child) {
				p.resyncTop()
			}
		}
	}
}
