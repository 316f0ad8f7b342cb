package tree

import "testing"

func TestEqualIdenticalStates(t *testing.T) {
	a := &EditorState{
		Blocks: []Block{
			&TextBlock{Type: "P", Children: []InlineNode{&Text{Text: "hi"}}},
		},
	}
	b := &EditorState{
		Blocks: []Block{
			&TextBlock{Type: "P", Children: []InlineNode{&Text{Text: "hi"}}},
		},
	}
	if !Equal(a, b) {
		t.Error("expected equal states to compare equal")
	}
}

func TestEqualDiffersOnAttrs(t *testing.T) {
	a := &EditorState{Blocks: []Block{&BlockObject{Type: "IMG", Attrs: Attributes{"src": StringValue("a.png")}}}}
	b := &EditorState{Blocks: []Block{&BlockObject{Type: "IMG", Attrs: Attributes{"src": StringValue("b.png")}}}}
	if Equal(a, b) {
		t.Error("expected states with differing attrs to compare unequal")
	}
}

func TestEqualDiffersOnSelection(t *testing.T) {
	block := &TextBlock{Type: "P", Children: []InlineNode{&Text{Text: "hi"}}}
	a := &EditorState{
		Blocks:    []Block{block},
		Selection: &Selection{Anchor: Point{Path: []int{0, 0}, Offset: 0}, Focus: Point{Path: []int{0, 0}, Offset: 0}},
	}
	b := &EditorState{
		Blocks:    []Block{block},
		Selection: &Selection{Anchor: Point{Path: []int{0, 0}, Offset: 2}, Focus: Point{Path: []int{0, 0}, Offset: 2}},
	}
	if Equal(a, b) {
		t.Error("expected states with differing selections to compare unequal")
	}
}

func TestBlockEqualMarkModeMatters(t *testing.T) {
	a := &TextBlock{Type: "P", Children: []InlineNode{
		&Mark{Type: "strong", Mode: Decorator, Children: []InlineNode{&Text{Text: "x"}}},
	}}
	b := &TextBlock{Type: "P", Children: []InlineNode{
		&Mark{Type: "strong", Mode: Overlay, Children: []InlineNode{&Text{Text: "x"}}},
	}}
	if BlockEqual(a, b) {
		t.Error("expected differing mark modes to compare unequal")
	}
}

func TestValueEqualNestedArray(t *testing.T) {
	a := ArrayValue([]AttributeValue{IntValue(1), StringValue("x")})
	b := ArrayValue([]AttributeValue{IntValue(1), StringValue("x")})
	if !valueEqual(a, b) {
		t.Error("expected equal nested arrays to compare equal")
	}
	c := ArrayValue([]AttributeValue{IntValue(1), StringValue("y")})
	if valueEqual(a, c) {
		t.Error("expected differing nested arrays to compare unequal")
	}
}
