package lexer

import (
	"umlc/internal/source"
	"umlc/internal/token"
)

// Lexer turns the bytes of one diagram file into a token stream.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // leading trivia collected so far

	// atLineStart gates presentation-directive skipping; only lines that
	// open with skinparam/hide/show/! are dropped as trivia.
	atLineStart bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:        file,
		cursor:      NewCursor(file),
		opts:        opts,
		look:        nil,
		hold:        nil,
		atLineStart: true,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	// 1) serve the lookahead buffer first
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	// 2) gather trivia into lx.hold
	lx.collectLeadingTrivia()

	// 3) EOF gets no Leading attached
	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	// 4) pick a scanner by the current byte
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '@':
		tok = lx.scanDirective()

	case ch == '"':
		tok = lx.scanString()

	case ch == '{':
		// {abstract} and {static} read as single annotation tokens
		tok = lx.scanAnnotationOrBrace()

	case ch == 'o':
		// the aggregation arrow o-- wins over identifier scanning
		if _, b1, b2, ok3 := lx.cursor.Peek3(); ok3 && b1 == '-' && b2 == '-' {
			tok = lx.scanOperatorOrPunct()
		} else {
			tok = lx.scanIdentOrKeyword()
		}

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// possible Unicode identifier; scanIdentOrKeyword sorts it out
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		// multiplicity words and enum values: 0..*, 1, 255
		tok = lx.scanMultiplicity()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	// 5) attach Leading and clear the hold
	tok.Leading = lx.hold
	lx.hold = nil
	lx.atLineStart = false

	// 6) done
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
