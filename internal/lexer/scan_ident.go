package lexer

import (
	"umlc/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and checks it against
// LookupKeyword. Keywords are case-sensitive lowercase; Token.Text is
// the exact source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	// first rune: ASCII fast-path or Unicode
	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			// fall back to operator scanning
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for {
			b := lx.cursor.Peek()
			if b < utf8RuneSelf && !isIdentContinueByte(b) {
				break
			}
			if b >= utf8RuneSelf {
				r2, sz2 := lx.peekRune()
				if sz2 == 0 || !isIdentContinueRune(r2) {
					break
				}
				lx.bumpRune()
				continue
			}
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// case-sensitive keyword check
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanMultiplicity scans a digit-led run such as 1, 255 or 0..*. Dots
// are consumed only when more of the run follows, so a trailing period
// stays outside the token.
func (lx *Lexer) scanMultiplicity() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if isDec(b) || b == '*' {
			lx.cursor.Bump()
			continue
		}
		if b == '.' {
			if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '.' || b1 == '*') {
				lx.cursor.Bump()
				continue
			}
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Ident, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
