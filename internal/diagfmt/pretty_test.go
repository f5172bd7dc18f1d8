package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"umlc/internal/diag"
	"umlc/internal/source"
)

func renderOne(t *testing.T, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) string {
	t.Helper()
	bag := diag.NewBag(8)
	bag.Add(d)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, opts)
	return buf.String()
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class \"Cliente {\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.puml", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 6, End: 16},
		"newline in quoted name",
	))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{
			name:     "Absolute path",
			mode:     PathModeAbsolute,
			contains: "/home/user/project/src/test.puml",
		},
		{
			name:     "Basename only",
			mode:     PathModeBasename,
			contains: "test.puml:",
		},
		{
			name:     "Auto keeps short paths",
			mode:     PathModeAuto,
			contains: "/home/user/project/src/test.puml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{
				Color:    false,
				Context:  1,
				PathMode: tt.mode,
			}

			Pretty(&buf, bag, fs, opts)
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("expected ERROR in output")
			}
			if !strings.Contains(output, "LEX1002") {
				t.Error("expected LEX1002 code in output")
			}
			if !strings.Contains(output, "newline in quoted name") {
				t.Error("expected the message in output")
			}
		})
	}
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("@startuml\nclass Pedido {\n}\n@enduml\n")
	fileID := fs.AddVirtual("test.puml", content)

	d := diag.NewError(
		diag.SynUnexpectedToken,
		source.Span{File: fileID, Start: 16, End: 22},
		"boom",
	)

	got := renderOne(t, fs, d, PrettyOpts{Context: 0, PathMode: PathModeBasename})
	want := "test.puml:2:7: ERROR SYN2001: boom\n" +
		" 2 | class Pedido {\n" +
		"   |       ^~~~~~\n"
	if got != want {
		t.Errorf("output mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("@startuml\nclass Pedido {\n}\n@enduml\n")
	fileID := fs.AddVirtual("test.puml", content)

	d := diag.NewError(
		diag.SynUnexpectedToken,
		source.Span{File: fileID, Start: 16, End: 22},
		"boom",
	)

	got := renderOne(t, fs, d, PrettyOpts{Context: 1, PathMode: PathModeBasename})
	for _, line := range []string{" 1 | @startuml", " 2 | class Pedido {", " 3 | }"} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("expected context line %q, got:\n%s", line, got)
		}
	}
	if strings.Contains(got, "@enduml") {
		t.Errorf("context of 1 must not reach line 4, got:\n%s", got)
	}
}

func TestPrettyUnderlineStopsAtLineEnd(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class \"Cliente\nVIP\"\n")
	fileID := fs.AddVirtual("test.puml", content)

	// Span spills onto the next line; the underline stays on the first.
	d := diag.NewError(
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 6, End: 19},
		"newline in quoted name",
	)

	got := renderOne(t, fs, d, PrettyOpts{Context: 0, PathMode: PathModeBasename})
	want := "test.puml:1:7: ERROR LEX1002: newline in quoted name\n" +
		" 1 | class \"Cliente\n" +
		"   |       ^~~~~~~~\n"
	if got != want {
		t.Errorf("output mismatch\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyUnicodeAlignment(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("+ emissão : Data\n")
	fileID := fs.AddVirtual("test.puml", content)

	// "Data" starts at byte 13 but visual column 13 as well, since the
	// two-byte ã occupies one terminal cell.
	d := diag.NewError(
		diag.SynExpectType,
		source.Span{File: fileID, Start: 13, End: 17},
		"bad type",
	)

	got := renderOne(t, fs, d, PrettyOpts{Context: 0, PathMode: PathModeBasename})
	lines := strings.Split(got, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected header, source and underline, got:\n%s", got)
	}
	wantUnderline := "   | " + strings.Repeat(" ", 12) + "^~~~"
	if lines[2] != wantUnderline {
		t.Errorf("underline mismatch\nwant: %q\ngot:  %q", wantUnderline, lines[2])
	}
}

func TestPrettyZeroSpan(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("test.puml", []byte("@startuml\n@enduml\n"))

	d := diag.NewError(diag.GenUnknownTarget, source.Span{}, "unknown target language \"rust\"")

	got := renderOne(t, fs, d, PrettyOpts{Context: 2, PathMode: PathModeBasename})
	want := "test.puml: ERROR GEN4001: unknown target language \"rust\"\n"
	if got != want {
		t.Errorf("zero-span diagnostics must skip positions and context\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class Pedido {\n}\nclass Pedido {\n}\n")
	fileID := fs.AddVirtual("test.puml", content)

	d := diag.NewError(
		diag.RefDuplicateStructure,
		source.Span{File: fileID, Start: 23, End: 29},
		"duplicate structure \"Pedido\"",
	).WithNote(source.Span{File: fileID, Start: 6, End: 12}, "first declared here")

	t.Run("shown", func(t *testing.T) {
		got := renderOne(t, fs, d, PrettyOpts{Context: -1, PathMode: PathModeBasename, ShowNotes: true})
		if !strings.Contains(got, "  note: first declared here (test.puml:1:7)\n") {
			t.Errorf("expected note line, got:\n%s", got)
		}
	})

	t.Run("hidden", func(t *testing.T) {
		got := renderOne(t, fs, d, PrettyOpts{Context: -1, PathMode: PathModeBasename})
		if strings.Contains(got, "note:") {
			t.Errorf("notes must stay hidden without ShowNotes, got:\n%s", got)
		}
	})
}

func TestPrettyNegativeContextHidesSource(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class Pedido {\n")
	fileID := fs.AddVirtual("test.puml", content)

	d := diag.NewError(diag.SynUnclosedBrace, source.Span{File: fileID, Start: 13, End: 14}, "body is never closed")

	got := renderOne(t, fs, d, PrettyOpts{Context: -1, PathMode: PathModeBasename})
	want := "test.puml:1:14: ERROR SYN2002: body is never closed\n"
	if got != want {
		t.Errorf("negative context must print the header only\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyWidthTruncatesLongLines(t *testing.T) {
	fs := source.NewFileSet()
	long := "class " + strings.Repeat("A", 120) + " {"
	fileID := fs.AddVirtual("test.puml", []byte(long+"\n"))

	d := diag.NewError(diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 5}, "boom")

	got := renderOne(t, fs, d, PrettyOpts{Context: 0, PathMode: PathModeBasename, Width: 40})
	if !strings.Contains(got, "…") {
		t.Errorf("expected truncated source line, got:\n%s", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, " 1 | ") && len([]rune(line)) > 5+40 {
			t.Errorf("source line exceeds width budget: %q", line)
		}
	}
}

func TestPrettySeverityOrderKept(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("class A {\nclass B\n")
	fileID := fs.AddVirtual("test.puml", content)

	bag := diag.NewBag(8)
	bag.Add(diag.NewWarning(diag.RefUnresolvedEndpoint, source.Span{File: fileID, Start: 6, End: 7}, "first"))
	bag.Add(diag.NewError(diag.SynUnclosedBrace, source.Span{File: fileID, Start: 8, End: 9}, "second"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: -1, PathMode: PathModeBasename})
	out := buf.String()

	warnAt := strings.Index(out, "WARNING")
	errAt := strings.Index(out, "ERROR")
	if warnAt < 0 || errAt < 0 || warnAt > errAt {
		t.Errorf("diagnostics must keep bag order, got:\n%s", out)
	}
}
