package lexer

import (
	"umlc/internal/diag"
	"umlc/internal/source"
)

// Options configures a Lexer. Reporter may be nil; lexing then continues
// silently past errors and only the Invalid tokens betray them.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
