package match

import (
	"testing"

	"github.com/kdoc/richstate/parse"
	"github.com/kdoc/richstate/tree"
)

func mustParse(t *testing.T, s string) *tree.EditorState {
	t.Helper()
	st, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("parse(%q): %v", s, err)
	}
	return st
}

func point(path []int, offset int) tree.Point {
	return tree.Point{Path: path, Offset: offset}
}

func requireSelection(t *testing.T, sel *tree.Selection, wantAnchor, wantFocus tree.Point) {
	t.Helper()
	if sel == nil {
		t.Fatalf("expected a match, got nil")
	}
	if !pointsEqual(sel.Anchor, wantAnchor) {
		t.Errorf("anchor = %+v, want %+v", sel.Anchor, wantAnchor)
	}
	if !pointsEqual(sel.Focus, wantFocus) {
		t.Errorf("focus = %+v, want %+v", sel.Focus, wantFocus)
	}
}

func pointsEqual(a, b tree.Point) bool {
	if a.Offset != b.Offset || len(a.Path) != len(b.Path) {
		return false
	}
	for i := range a.Path {
		if a.Path[i] != b.Path[i] {
			return false
		}
	}
	return true
}

func TestGetRangeMarkPattern(t *testing.T) {
	doc := mustParse(t, "P: foo [strong:bar] baz")
	sel, err := GetRange(doc, "[strong:bar]")
	if err != nil {
		t.Fatal(err)
	}
	requireSelection(t, sel, point([]int{0, 0}, 4), point([]int{0, 2}, 0))
}

func TestGetRangeSubstring(t *testing.T) {
	doc := mustParse(t, "P: hello world")
	sel, err := GetRange(doc, "world")
	if err != nil {
		t.Fatal(err)
	}
	requireSelection(t, sel, point([]int{0, 0}, 6), point([]int{0, 0}, 11))
}

func TestGetRangeSubstringNoMatch(t *testing.T) {
	doc := mustParse(t, "P: hello world")
	sel, err := GetRange(doc, "xyz")
	if err != nil {
		t.Fatal(err)
	}
	if sel != nil {
		t.Errorf("expected no match, got %+v", sel)
	}
}

func TestGetRangeSubstringRecursesIntoMark(t *testing.T) {
	doc := mustParse(t, "P: a [strong:needle] b")
	sel, err := GetRange(doc, "needle")
	if err != nil {
		t.Fatal(err)
	}
	requireSelection(t, sel, point([]int{0, 1, 0}, 0), point([]int{0, 1, 0}, 6))
}

func TestGetRangeInlineObject(t *testing.T) {
	doc := mustParse(t, `P: see {IMG src="a.png"} above`)
	sel, err := GetRange(doc, `P: {IMG src="a.png"}`)
	if err != nil {
		t.Fatal(err)
	}
	requireSelection(t, sel, point([]int{0, 1}, 0), point([]int{0, 1}, 1))
}

func TestGetRangeInlineObjectAttrSuperset(t *testing.T) {
	doc := mustParse(t, `P: see {IMG src="a.png" width=10} above`)
	sel, err := GetRange(doc, `P: {IMG src="a.png"}`)
	if err != nil {
		t.Fatal(err)
	}
	requireSelection(t, sel, point([]int{0, 1}, 0), point([]int{0, 1}, 1))
}

func TestGetRangeBlockObjectPattern(t *testing.T) {
	doc := mustParse(t, "P: intro\n"+`{IMG src="a.png"}`+"\nP: outro")
	sel, err := GetRange(doc, `{IMG src="a.png"}`)
	if err != nil {
		t.Fatal(err)
	}
	if sel == nil {
		t.Fatalf("expected a match")
	}
}

func TestGetRangeMultiBlock(t *testing.T) {
	doc := mustParse(t, "H1: Introduction\nP: some body text here")
	sel, err := GetRange(doc, "H1: Introduction\nP: some")
	if err != nil {
		t.Fatal(err)
	}
	requireSelection(t, sel, point([]int{0, 0}, 0), point([]int{1, 0}, 4))
}

func TestGetRangeNoMatchingMark(t *testing.T) {
	doc := mustParse(t, "P: hello world")
	sel, err := GetRange(doc, "[strong:hello]")
	if err != nil {
		t.Fatal(err)
	}
	if sel != nil {
		t.Errorf("expected no match, got %+v", sel)
	}
}

func TestGetPointBeforeAndAfter(t *testing.T) {
	doc := mustParse(t, "P: foo [strong:bar] baz")
	before, err := GetPointBefore(doc, "[strong:bar]")
	if err != nil {
		t.Fatal(err)
	}
	after, err := GetPointAfter(doc, "[strong:bar]")
	if err != nil {
		t.Fatal(err)
	}
	if !pointsEqual(*before, point([]int{0, 0}, 4)) {
		t.Errorf("before = %+v", before)
	}
	if !pointsEqual(*after, point([]int{0, 2}, 0)) {
		t.Errorf("after = %+v", after)
	}
}
