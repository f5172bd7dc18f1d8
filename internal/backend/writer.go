package backend

import (
	"fmt"
	"strings"
)

// Writer accumulates indented source lines for a generated file. All
// three language generators share it; only the indent unit differs.
type Writer struct {
	b      strings.Builder
	indent string
	depth  int
}

// NewWriter returns a writer whose indentation unit is indent.
func NewWriter(indent string) *Writer {
	return &Writer{indent: indent}
}

// In increases the indentation depth.
func (w *Writer) In() { w.depth++ }

// Out decreases the indentation depth, stopping at zero.
func (w *Writer) Out() {
	if w.depth > 0 {
		w.depth--
	}
}

// Line writes one line at the current depth. An empty string writes a
// blank line with no indentation.
func (w *Writer) Line(s string) {
	if s == "" {
		w.b.WriteByte('\n')
		return
	}
	for i := 0; i < w.depth; i++ {
		w.b.WriteString(w.indent)
	}
	w.b.WriteString(s)
	w.b.WriteByte('\n')
}

// Linef formats and writes one line at the current depth.
func (w *Writer) Linef(format string, args ...any) {
	w.Line(fmt.Sprintf(format, args...))
}

// Blank writes an empty line.
func (w *Writer) Blank() { w.b.WriteByte('\n') }

// TrimBlank drops a trailing blank line if one was just written, so
// closing braces do not float below an empty line.
func (w *Writer) TrimBlank() {
	s := w.b.String()
	if strings.HasSuffix(s, "\n\n") {
		w.b.Reset()
		w.b.WriteString(s[:len(s)-1])
	}
}

// String returns everything written so far.
func (w *Writer) String() string { return w.b.String() }
