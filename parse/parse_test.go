package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kdoc/richstate/tree"
)

func mustParse(t *testing.T, in string) *tree.EditorState {
	t.Helper()
	st, err := Parse(in)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return st
}

func TestParseTextBlockWithFocus(t *testing.T) {
	st := mustParse(t, "P: foo|")
	want := &tree.EditorState{
		Blocks: []tree.Block{
			&tree.TextBlock{Type: "P", Children: []tree.InlineNode{&tree.Text{Text: "foo"}}},
		},
		Selection: &tree.Selection{
			Anchor: tree.Point{Path: []int{0, 0}, Offset: 3},
			Focus:  tree.Point{Path: []int{0, 0}, Offset: 3},
		},
	}
	if !tree.Equal(st, want) {
		t.Errorf("mismatch:\n%s", cmp.Diff(want, st))
	}
}

func TestParseAnnotationMark(t *testing.T) {
	st := mustParse(t, `P: [@link href="https://example.com":foo]|`)
	want := &tree.EditorState{
		Blocks: []tree.Block{
			&tree.TextBlock{Type: "P", Children: []tree.InlineNode{
				&tree.Mark{
					Type: "link",
					Mode: tree.Annotation,
					Attrs: tree.Attributes{
						"href": tree.StringValue("https://example.com"),
					},
					Children: []tree.InlineNode{&tree.Text{Text: "foo"}},
				},
			}},
		},
		Selection: &tree.Selection{
			Anchor: tree.Point{Path: []int{0, 1}, Offset: 0},
			Focus:  tree.Point{Path: []int{0, 1}, Offset: 0},
		},
	}
	if !tree.Equal(st, want) {
		t.Errorf("mismatch:\n%s", cmp.Diff(want, st))
	}
}

func TestParseContainer(t *testing.T) {
	st := mustParse(t, "UL:\n  LI: foo\n  LI: bar|")
	want := &tree.EditorState{
		Blocks: []tree.Block{
			&tree.ContainerBlock{Type: "UL", Children: []tree.Block{
				&tree.TextBlock{Type: "LI", Children: []tree.InlineNode{&tree.Text{Text: "foo"}}},
				&tree.TextBlock{Type: "LI", Children: []tree.InlineNode{&tree.Text{Text: "bar"}}},
			}},
		},
		Selection: &tree.Selection{
			Anchor: tree.Point{Path: []int{0, 1, 0}, Offset: 3},
			Focus:  tree.Point{Path: []int{0, 1, 0}, Offset: 3},
		},
	}
	if !tree.Equal(st, want) {
		t.Errorf("mismatch:\n%s", cmp.Diff(want, st))
	}
}

func TestParseRawBlock(t *testing.T) {
	st := mustParse(t, "CODE!:\n  const arr = [1, 2, 3]|")
	want := &tree.EditorState{
		Blocks: []tree.Block{
			&tree.RawBlock{Type: "CODE", Lines: []string{"const arr = [1, 2, 3]"}},
		},
		Selection: &tree.Selection{
			Anchor: tree.Point{Path: []int{0, 0}, Offset: 21},
			Focus:  tree.Point{Path: []int{0, 0}, Offset: 21},
		},
	}
	if !tree.Equal(st, want) {
		t.Errorf("mismatch:\n%s", cmp.Diff(want, st))
	}
}

func TestParseEmptyDocument(t *testing.T) {
	_, err := Parse("")
	if !errors.Is(err, tree.ErrEmptyDocument) {
		t.Fatalf("got %v, want EmptyDocument", err)
	}
	_, err = Parse("\n\n")
	if !errors.Is(err, tree.ErrEmptyDocument) {
		t.Fatalf("got %v, want EmptyDocument", err)
	}
}

func TestParseMultipleFocus(t *testing.T) {
	_, err := Parse("P: a|b|")
	if !errors.Is(err, tree.ErrMultipleFocus) {
		t.Fatalf("got %v, want MultipleFocus", err)
	}
}

func TestParseMultipleAnchor(t *testing.T) {
	_, err := Parse("P: a^b^")
	if !errors.Is(err, tree.ErrMultipleAnchor) {
		t.Fatalf("got %v, want MultipleAnchor", err)
	}
}

func TestParseMarkerBeforeIdentIsError(t *testing.T) {
	_, err := Parse("^P: foo")
	if !errors.Is(err, tree.ErrInvalidIdentifier) {
		t.Fatalf("got %v, want InvalidIdentifier", err)
	}
}

func TestParseMarkerBeforeBlockObjectIsAllowed(t *testing.T) {
	st := mustParse(t, `^{IMG src="a.png"}`)
	if len(st.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(st.Blocks))
	}
	if st.Selection == nil || st.Selection.Anchor.Offset != 0 {
		t.Fatalf("got selection %+v, want an anchor at offset 0", st.Selection)
	}
}

func TestParseTabsInIndentation(t *testing.T) {
	_, err := Parse("UL:\n\tLI: a\n")
	if !errors.Is(err, tree.ErrTabsInIndentation) {
		t.Fatalf("got %v, want TabsInIndentation", err)
	}
}

func TestParseIndentationSkipsLevel(t *testing.T) {
	_, err := Parse("UL:\n    LI: a\n")
	if !errors.Is(err, tree.ErrIndentationSkipsLevel) {
		t.Fatalf("got %v, want IndentationSkipsLevel", err)
	}
}

func TestParseEmptyContainer(t *testing.T) {
	_, err := Parse("UL:\n")
	if !errors.Is(err, tree.ErrEmptyContainer) {
		t.Fatalf("got %v, want EmptyContainer", err)
	}
}

func TestParseInvalidChildUnderTextBlock(t *testing.T) {
	_, err := Parse("P: foo\n  X: bar\n")
	if !errors.Is(err, tree.ErrInvalidChildUnderTextBlock) {
		t.Fatalf("got %v, want InvalidChildUnderTextBlock", err)
	}
}

func TestParseMissingColonInMark(t *testing.T) {
	_, err := Parse("P: [strong]\n")
	if !errors.Is(err, tree.ErrMissingColonInMark) {
		t.Fatalf("got %v, want MissingColonInMark", err)
	}
}

func TestParseUnbalancedBracket(t *testing.T) {
	_, err := Parse("P: [strong:foo\n")
	if !errors.Is(err, tree.ErrUnbalancedBracket) {
		t.Fatalf("got %v, want UnbalancedBracket", err)
	}
}

func TestParseUnbalancedBrace(t *testing.T) {
	_, err := Parse("P: {obj\n")
	if !errors.Is(err, tree.ErrUnbalancedBrace) {
		t.Fatalf("got %v, want UnbalancedBrace", err)
	}
}

func TestParseMalformedAttribute(t *testing.T) {
	_, err := Parse("P foo: bar\n")
	if !errors.Is(err, tree.ErrMalformedAttribute) {
		t.Fatalf("got %v, want MalformedAttribute", err)
	}
}

func TestParseInvalidJSONAttribute(t *testing.T) {
	_, err := Parse(`P count=[1,: bar` + "\n")
	if !errors.Is(err, tree.ErrInvalidJson) {
		t.Fatalf("got %v, want InvalidJson", err)
	}
}

func TestParseBlockObjectWithAttrs(t *testing.T) {
	st := mustParse(t, `{IMG src="a.png" width=10}`)
	want := &tree.EditorState{
		Blocks: []tree.Block{
			&tree.BlockObject{Type: "IMG", Attrs: tree.Attributes{
				"src":   tree.StringValue("a.png"),
				"width": tree.IntValue(10),
			}},
		},
	}
	if !tree.Equal(st, want) {
		t.Errorf("mismatch:\n%s", cmp.Diff(want, st))
	}
}

func TestParseInlineContainer(t *testing.T) {
	st := mustParse(t, `ROW:{{CELL a=1};;{CELL a=2}}`)
	want := &tree.EditorState{
		Blocks: []tree.Block{
			&tree.ContainerBlock{Type: "ROW", Children: []tree.Block{
				&tree.BlockObject{Type: "CELL", Attrs: tree.Attributes{"a": tree.IntValue(1)}},
				&tree.BlockObject{Type: "CELL", Attrs: tree.Attributes{"a": tree.IntValue(2)}},
			}},
		},
	}
	if !tree.Equal(st, want) {
		t.Errorf("mismatch:\n%s", cmp.Diff(want, st))
	}
}

func TestParseEscapedSemicolons(t *testing.T) {
	st := mustParse(t, `P: foo\;\;bar`)
	want := &tree.EditorState{
		Blocks: []tree.Block{
			&tree.TextBlock{Type: "P", Children: []tree.InlineNode{&tree.Text{Text: "foo;;bar"}}},
		},
	}
	if !tree.Equal(st, want) {
		t.Errorf("mismatch:\n%s", cmp.Diff(want, st))
	}
}
