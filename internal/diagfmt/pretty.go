package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"umlc/internal/diag"
	"umlc/internal/source"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	infoLabel    = color.New(color.FgCyan, color.Bold)
	caretMark    = color.New(color.FgGreen, color.Bold)
	noteLabel    = color.New(color.FgBlue)
)

func severityLabel(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorLabel
	case diag.SevWarning:
		return warningLabel
	default:
		return infoLabel
	}
}

func paint(c *color.Color, enabled bool, s string) string {
	if !enabled {
		return s
	}
	return c.Sprint(s)
}

// Pretty formats diagnostics in a human-readable form. It walks
// bag.Items() in order (call bag.Sort() beforehand when stable output
// matters). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline covering the span
// and, when ShowNotes is set, the attached notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	label := paint(severityLabel(d.Severity), opts.Color, d.Severity.String()+" "+d.Code.ID())

	if d.Primary == (source.Span{}) {
		// Diagnostics raised outside the source text carry no span.
		fmt.Fprintf(w, "%s: %s: %s\n", displayPath(f, opts.PathMode), label, d.Message)
	} else {
		start, end := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			displayPath(f, opts.PathMode), start.Line, start.Col, label, d.Message)
		writeContext(w, f, start, end, opts)
	}

	if opts.ShowNotes {
		for _, note := range d.Notes {
			writeNote(w, note, fs, opts)
		}
	}
}

func displayPath(f *source.File, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", "")
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

// writeContext prints the primary line plus up to opts.Context lines
// on each side, with a gutter of 1-based line numbers.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	if opts.Context < 0 || len(f.Content) == 0 {
		return
	}

	ctx := uint32(opts.Context)             // #nosec G115 -- negative handled above
	lineCount := uint32(len(f.LineIdx)) + 1 // #nosec G115 -- bounded by content size

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx
	if last > lineCount {
		last = lineCount
	}

	gutter := len(fmt.Sprintf("%d", last))
	for n := first; n <= last; n++ {
		text := expandTabs(f.Line(n))
		if opts.Width > 0 {
			text = runewidth.Truncate(text, int(opts.Width), "…")
		}
		fmt.Fprintf(w, " %*d | %s\n", gutter, n, text)
		if n == start.Line {
			writeUnderline(w, f, n, start, end, gutter, opts)
		}
	}
}

// writeUnderline draws the ^~~~ row under the primary line. Columns
// are byte offsets in the line; the visual position accounts for wide
// runes and expanded tabs.
func writeUnderline(w io.Writer, f *source.File, lineNum uint32, start, end source.LineCol, gutter int, opts PrettyOpts) {
	line := f.Line(lineNum)

	left := int(start.Col) - 1
	if left > len(line) {
		left = len(line)
	}
	pad := runewidth.StringWidth(expandTabs(line[:left]))

	right := len(line)
	if end.Line == start.Line && int(end.Col)-1 < right {
		right = int(end.Col) - 1
	}
	width := 1
	if right > left {
		width = runewidth.StringWidth(expandTabs(line[left:right]))
	}
	if width < 1 {
		width = 1
	}
	if opts.Width > 0 {
		if pad >= int(opts.Width) {
			return
		}
		if pad+width > int(opts.Width) {
			width = int(opts.Width) - pad
		}
	}

	marks := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, " %*s | %s%s\n",
		gutter, "", strings.Repeat(" ", pad), paint(caretMark, opts.Color, marks))
}

func writeNote(w io.Writer, note diag.Note, fs *source.FileSet, opts PrettyOpts) {
	label := paint(noteLabel, opts.Color, "note")
	if note.Span == (source.Span{}) {
		fmt.Fprintf(w, "  %s: %s\n", label, note.Msg)
		return
	}
	f := fs.Get(note.Span.File)
	start, _ := fs.Resolve(note.Span)
	fmt.Fprintf(w, "  %s: %s (%s:%d:%d)\n",
		label, note.Msg, displayPath(f, opts.PathMode), start.Line, start.Col)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
