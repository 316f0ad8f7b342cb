package tree

// Equal reports whether two editor states are structurally identical,
// including selection. This is the equality used by the round-trip
// property: parse(serialize(d)) == d.
func Equal(a, b *EditorState) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Blocks) != len(b.Blocks) {
		return false
	}
	for i := range a.Blocks {
		if !BlockEqual(a.Blocks[i], b.Blocks[i]) {
			return false
		}
	}
	return selectionEqual(a.Selection, b.Selection)
}

func selectionEqual(a, b *Selection) bool {
	if a == nil || b == nil {
		return a == b
	}
	return pointEqual(a.Anchor, b.Anchor) && pointEqual(a.Focus, b.Focus)
}

func attrsEqual(a, b Attributes) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !valueEqual(av, bv) {
			return false
		}
	}
	return true
}

func valueEqual(a, b AttributeValue) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AttrNull:
		return true
	case AttrString:
		return a.Str == b.Str
	case AttrInt:
		return a.Int == b.Int
	case AttrFloat:
		return a.Float == b.Float
	case AttrBool:
		return a.Bool == b.Bool
	case AttrArray:
		if len(a.Arr) != len(b.Arr) {
			return false
		}
		for i := range a.Arr {
			if !valueEqual(a.Arr[i], b.Arr[i]) {
				return false
			}
		}
		return true
	case AttrObject:
		if len(a.Obj) != len(b.Obj) {
			return false
		}
		for k, av := range a.Obj {
			bv, ok := b.Obj[k]
			if !ok || !valueEqual(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

// BlockEqual reports structural equality of two blocks.
func BlockEqual(a, b Block) bool {
	switch av := a.(type) {
	case *TextBlock:
		bv, ok := b.(*TextBlock)
		if !ok || av.Type != bv.Type || !attrsEqual(av.Attrs, bv.Attrs) {
			return false
		}
		return inlineSliceEqual(av.Children, bv.Children)
	case *ContainerBlock:
		bv, ok := b.(*ContainerBlock)
		if !ok || av.Type != bv.Type || !attrsEqual(av.Attrs, bv.Attrs) {
			return false
		}
		if len(av.Children) != len(bv.Children) {
			return false
		}
		for i := range av.Children {
			if !BlockEqual(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	case *RawBlock:
		bv, ok := b.(*RawBlock)
		if !ok || av.Type != bv.Type || !attrsEqual(av.Attrs, bv.Attrs) {
			return false
		}
		if len(av.Lines) != len(bv.Lines) {
			return false
		}
		for i := range av.Lines {
			if av.Lines[i] != bv.Lines[i] {
				return false
			}
		}
		return true
	case *BlockObject:
		bv, ok := b.(*BlockObject)
		if !ok {
			return false
		}
		return av.Type == bv.Type && attrsEqual(av.Attrs, bv.Attrs)
	default:
		return false
	}
}

func inlineSliceEqual(a, b []InlineNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !inlineEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func inlineEqual(a, b InlineNode) bool {
	switch av := a.(type) {
	case *Text:
		bv, ok := b.(*Text)
		return ok && av.Text == bv.Text
	case *Mark:
		bv, ok := b.(*Mark)
		if !ok || av.Type != bv.Type || av.Mode != bv.Mode || !attrsEqual(av.Attrs, bv.Attrs) {
			return false
		}
		return inlineSliceEqual(av.Children, bv.Children)
	case *InlineObject:
		bv, ok := b.(*InlineObject)
		return ok && av.Type == bv.Type && attrsEqual(av.Attrs, bv.Attrs)
	default:
		return false
	}
}
