package diag

import (
	"testing"

	"tenet/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagOrderPreserved(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(RuleGoto, span(0, 5, 9), "first"))
	bag.Add(NewError(RuleHeapAlloc, span(0, 1, 2), "second"))
	bag.Add(NewError(RuleGoto, span(0, 0, 1), "third"))

	items := bag.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].Message != want {
			t.Errorf("item %d = %q, want %q", i, items[i].Message, want)
		}
	}
}

func TestBagCap(t *testing.T) {
	bag := NewBag(1)
	if !bag.Add(NewError(RuleGoto, span(0, 0, 1), "kept")) {
		t.Fatal("first Add must succeed")
	}
	if bag.Add(NewError(RuleGoto, span(0, 1, 2), "dropped")) {
		t.Fatal("second Add must be rejected at cap")
	}
	if bag.Len() != 1 {
		t.Fatalf("len = %d", bag.Len())
	}
}

func TestHasBlockers(t *testing.T) {
	bag := NewBag(4)
	bag.Add(NewError(RuleGoto, span(0, 0, 1), "finding"))
	if bag.HasBlockers() {
		t.Fatal("rule findings are not blockers")
	}
	bag.Add(NewError(SynUnexpectedToken, span(0, 0, 1), "syntax"))
	if !bag.HasBlockers() {
		t.Fatal("syntax errors are blockers")
	}
	if !bag.HasErrors() {
		t.Fatal("HasErrors must see errors")
	}
}

func TestMergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(RuleGoto, span(0, 0, 1), "a"))
	b := NewBag(1)
	b.Add(NewError(RuleGoto, span(1, 0, 1), "b"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("merged len = %d", a.Len())
	}
}

func TestSortByFileThenOffset(t *testing.T) {
	bag := NewBag(4)
	bag.Add(NewError(RuleGoto, span(1, 0, 1), "file1"))
	bag.Add(NewError(RuleGoto, span(0, 9, 10), "file0-late"))
	bag.Add(NewError(RuleGoto, span(0, 2, 3), "file0-early"))

	bag.Sort()
	got := []string{}
	for _, d := range bag.Items() {
		got = append(got, d.Message)
	}
	want := []string{"file0-early", "file0-late", "file1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v", got)
		}
	}
}

func TestCodeIDRanges(t *testing.T) {
	if RuleGoto.ID() != "RUL3001" {
		t.Errorf("RuleGoto.ID() = %s", RuleGoto.ID())
	}
	if SynUnexpectedToken.ID() != "SYN2001" {
		t.Errorf("SynUnexpectedToken.ID() = %s", SynUnexpectedToken.ID())
	}
	if !RuleReturnValue.IsRule() || SynExpectSemicolon.IsRule() {
		t.Error("IsRule range check broken")
	}
}
