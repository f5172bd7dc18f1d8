package lexer

import (
	"umlc/internal/diag"
	"umlc/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
//   - runs of spaces, tabs and stray '\r' coalesce into one TriviaSpace
//   - consecutive '\n' coalesce into one TriviaNewline
//   - ' ... up to end of line -> TriviaLineComment
//   - /' ... '/ -> TriviaBlockComment (unterminated: report and cut at EOF)
//   - lines opening with skinparam/hide/show plus an argument, or with !,
//     are presentation directives -> TriviaDirective
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// spaces/tabs
		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		// newlines (coalesce runs)
		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.atLineStart = true
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		// ' line comment
		if b == '\'' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaLineComment, start)
			continue
		}

		// /' ... '/ block comment
		if b == '/' {
			if lx.scanBlockCommentIntoHold() {
				continue
			}
		}

		// presentation directives are recognized only at line starts, so an
		// attribute named hide still lexes as an identifier
		if lx.atLineStart {
			if lx.scanDirectiveLineIntoHold() {
				continue
			}
		}

		// no more trivia
		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// scanBlockCommentIntoHold consumes /' ... '/. Block comments do not nest.
func (lx *Lexer) scanBlockCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.try2('/', '\'') {
		return false
	}
	closed := false
	for !lx.cursor.EOF() {
		if lx.try2('\'', '/') {
			closed = true
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if !closed {
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	}
	lx.pushTrivia(token.TriviaBlockComment, start)
	return true
}

// scanDirectiveLineIntoHold consumes one presentation line:
// !preprocessor lines whole, and skinparam/hide/show lines when the
// keyword is followed by an argument. Anything else is left for the
// token scanners.
func (lx *Lexer) scanDirectiveLineIntoHold() bool {
	start := lx.cursor.Mark()
	b := lx.cursor.Peek()

	if b == '!' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaDirective, start)
		return true
	}

	if !isIdentStartByte(b) {
		return false
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	word := string(lx.file.Content[uint32(start):lx.cursor.Off])
	switch word {
	case "skinparam", "hide", "show":
	default:
		lx.cursor.Reset(start)
		return false
	}

	// the keyword needs an argument on the same line, otherwise it is a name
	sawSpace := false
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
		sawSpace = true
	}
	arg := lx.cursor.Peek()
	if !sawSpace || !(isIdentContinueByte(arg) || arg == '#') {
		lx.cursor.Reset(start)
		return false
	}

	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.pushTrivia(token.TriviaDirective, start)
	return true
}
