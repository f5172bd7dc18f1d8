package diag

import (
	"testing"

	"umlc/internal/source"
)

func TestBagCapAndAdd(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(LexUnknownChar, source.Span{}, "one")) {
		t.Fatal("first Add should succeed")
	}
	if !bag.Add(NewError(LexUnknownChar, source.Span{}, "two")) {
		t.Fatal("second Add should succeed")
	}
	if bag.Add(NewError(LexUnknownChar, source.Span{}, "three")) {
		t.Error("Add past the cap should fail")
	}
	if bag.Len() != 2 {
		t.Errorf("expected 2 items, got %d", bag.Len())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag must report no errors or warnings")
	}

	bag.Add(New(SevInfo, LexInfo, source.Span{}, "note"))
	if bag.HasWarnings() {
		t.Error("info alone must not count as a warning")
	}

	bag.Add(NewWarning(RefUnresolvedEndpoint, source.Span{}, "missing Payment"))
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings after adding a warning")
	}
	if bag.HasErrors() {
		t.Error("warning alone must not count as an error")
	}

	bag.Add(NewError(SynUnclosedBrace, source.Span{}, "unclosed"))
	if !bag.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBagWarningsFilter(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SynUnexpectedToken, source.Span{}, "boom"))
	bag.Add(NewWarning(RefUnresolvedEndpoint, source.Span{Start: 5, End: 9}, "missing A"))
	bag.Add(NewWarning(RefUnresolvedEndpoint, source.Span{Start: 12, End: 15}, "missing B"))

	warns := bag.Warnings()
	if len(warns) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warns))
	}
	if warns[0].Message != "missing A" || warns[1].Message != "missing B" {
		t.Errorf("warnings out of order: %q, %q", warns[0].Message, warns[1].Message)
	}
}

func TestBagSortDeterminism(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(RefUnresolvedEndpoint, source.Span{File: 0, Start: 20, End: 21}, "later"))
	bag.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 3, End: 4}, "earlier"))
	bag.Add(NewError(SynUnexpectedToken, source.Span{File: 0, Start: 3, End: 4}, "same spot"))

	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 3 || items[2].Primary.Start != 20 {
		t.Errorf("expected position order, got %v, %v, %v",
			items[0].Primary, items[1].Primary, items[2].Primary)
	}
	// Same span: lower code first (LEX before SYN).
	if items[0].Code != LexUnknownChar {
		t.Errorf("expected LexUnknownChar first at shared span, got %v", items[0].Code)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	span := source.Span{File: 0, Start: 1, End: 2}
	bag.Add(NewError(LexUnknownChar, span, "dup"))
	bag.Add(NewError(LexUnknownChar, span, "dup"))
	bag.Add(NewError(LexUnknownChar, source.Span{File: 0, Start: 9, End: 10}, "other"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("expected 2 after dedup, got %d", bag.Len())
	}
}

func TestCodeIDBlocks(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:           "LEX1001",
		SynMalformedRelationship: "SYN2004",
		RefUnresolvedEndpoint:    "REF3001",
		GenUnmappedType:          "GEN4002",
		IOWriteFile:              "IO5002",
		PrjManifestBad:           "PRJ6001",
		UnknownCode:              "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("Code(%d).ID(): expected %q, got %q", uint16(code), want, got)
		}
	}
}
