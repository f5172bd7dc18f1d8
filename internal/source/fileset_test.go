package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("order.puml", []byte("@startuml\n@enduml\n"), 0)
	if id1 != 0 {
		t.Errorf("expected first FileID to be 0, got %d", id1)
	}

	latest, ok := fs.GetLatest("order.puml")
	if !ok {
		t.Fatal("expected file to exist after Add")
	}
	if latest != id1 {
		t.Errorf("expected latest ID %d, got %d", id1, latest)
	}

	id2 := fs.Add("order.puml", []byte("@startuml shop\n@enduml\n"), 0)
	if id2 != 1 {
		t.Errorf("expected second FileID to be 1, got %d", id2)
	}

	latest, ok = fs.GetLatest("order.puml")
	if !ok || latest != id2 {
		t.Errorf("expected latest ID %d after re-add, got %d (ok=%v)", id2, latest, ok)
	}

	// The old version stays reachable by its ID.
	if got := string(fs.Get(id1).Content); got != "@startuml\n@enduml\n" {
		t.Errorf("first version content changed: %q", got)
	}
}

func TestAddVirtualLineIndex(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("mem.puml", []byte("a\nb\n"))
	file := fs.Get(id)

	want := []uint32{1, 3}
	if len(file.LineIdx) != len(want) {
		t.Fatalf("expected LineIdx length %d, got %d", len(want), len(file.LineIdx))
	}
	for i, v := range want {
		if file.LineIdx[i] != v {
			t.Errorf("LineIdx[%d]: expected %d, got %d", i, v, file.LineIdx[i])
		}
	}

	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestLoadNormalizesCRLFAndBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.puml")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("class A\r\nclass B\r\n")...)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)

	if string(file.Content) != "class A\nclass B\n" {
		t.Errorf("expected normalized content, got %q", string(file.Content))
	}
	if file.Flags&FileHadBOM == 0 {
		t.Error("expected FileHadBOM flag")
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag")
	}
}

func TestResolveMultiLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("pos.puml", []byte("ab\ncd\nef"))

	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline ends line 1
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}},
		{7, LineCol{Line: 3, Col: 2}},
	}
	for _, tc := range cases {
		got, _ := fs.Resolve(Span{File: id, Start: tc.off, End: tc.off})
		if got != tc.want {
			t.Errorf("offset %d: expected %+v, got %+v", tc.off, tc.want, got)
		}
	}
}

func TestResolveUTF8(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("utf8.puml", []byte("α\n"))

	span := Span{File: id, Start: 0, End: 1}
	start, end := fs.Resolve(span)

	if (start != LineCol{Line: 1, Col: 1}) {
		t.Errorf("expected start 1:1, got %+v", start)
	}
	if (end != LineCol{Line: 1, Col: 2}) {
		t.Errorf("expected end 1:2, got %+v", end)
	}
}

func TestLineExtraction(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.puml", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	cases := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tc := range cases {
		if got := file.Line(tc.line); got != tc.want {
			t.Errorf("Line(%d): expected %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestFormatPathModes(t *testing.T) {
	f := &File{Path: "diagrams/shop.puml"}

	if got := f.FormatPath("basename", ""); got != "shop.puml" {
		t.Errorf("basename: got %q", got)
	}
	if got := f.FormatPath("auto", ""); got != "diagrams/shop.puml" {
		t.Errorf("auto should keep short relative paths, got %q", got)
	}
	if got := f.FormatPath("", ""); got != "diagrams/shop.puml" {
		t.Errorf("unknown mode should return the path as-is, got %q", got)
	}
}
