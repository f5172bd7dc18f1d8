package lexer

import (
	"fmt"

	"umlc/internal/diag"
	"umlc/internal/token"
)

// scanOperatorOrPunct scans arrows, visibility markers and punctuation.
// Greedy: 4-byte arrows first, then 3-byte, then 2-byte, then single
// bytes. A lone '-' is therefore the private visibility marker only when
// no arrow matched.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch {
	case lx.try4('<', '|', '-', '-'):
		return emit(token.InheritLeft)
	case lx.try4('-', '-', '|', '>'):
		return emit(token.InheritRight)
	case lx.try4('<', '|', '.', '.'):
		return emit(token.RealizeLeft)
	case lx.try4('.', '.', '|', '>'):
		return emit(token.RealizeRight)
	case lx.try3('*', '-', '-'):
		return emit(token.ComposeLeft)
	case lx.try3('-', '-', '*'):
		return emit(token.ComposeRight)
	case lx.try3('o', '-', '-'):
		return emit(token.AggregLeft)
	case lx.try3('-', '-', 'o'):
		return emit(token.AggregRight)
	case lx.try3('-', '-', '>'):
		return emit(token.AssocRight)
	case lx.try3('<', '-', '-'):
		return emit(token.AssocLeft)
	case lx.try3('.', '.', '>'):
		return emit(token.DependRight)
	case lx.try3('<', '.', '.'):
		return emit(token.DependLeft)
	case lx.try2('-', '-'):
		return emit(token.AssocPlain)
	case lx.try2('.', '.'):
		return emit(token.DependPlain)
	}

	ch := lx.cursor.Peek()
	if ch >= utf8RuneSelf {
		r, _ := lx.peekRune()
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unrecognized character %q", r))
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '#':
		return emit(token.Hash)
	case '~':
		return emit(token.Tilde)
	case '}':
		return emit(token.RBrace)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case ':':
		return emit(token.Colon)
	case ',':
		return emit(token.Comma)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unrecognized character %q", rune(ch)))
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanDirective scans @startuml/@enduml. Any other @word is reported and
// comes back as Invalid.
func (lx *Lexer) scanDirective() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	switch text {
	case "@startuml":
		return token.Token{Kind: token.StartDirective, Span: sp, Text: text}
	case "@enduml":
		return token.Token{Kind: token.EndDirective, Span: sp, Text: text}
	}
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown directive %q", text))
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}

// scanAnnotationOrBrace distinguishes the {abstract}/{static}/{classifier}
// member annotations from a block-opening brace.
func (lx *Lexer) scanAnnotationOrBrace() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '{'
	inner := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	word := string(lx.file.Content[uint32(inner):lx.cursor.Off])

	if lx.cursor.Peek() == '}' {
		kind := token.Invalid
		switch word {
		case "abstract":
			kind = token.AnnAbstract
		case "static", "classifier":
			kind = token.AnnStatic
		}
		if kind != token.Invalid {
			lx.cursor.Bump() // '}'
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	lx.cursor.Reset(inner)
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.LBrace, Span: sp, Text: "{"}
}
