package match

import (
	"github.com/kdoc/richstate/debug"
	"github.com/kdoc/richstate/parse"
	"github.com/kdoc/richstate/tree"
)

// GetRange locates patternStr within doc and returns the matching
// range as a Selection, or nil if no match exists. patternStr is
// itself parsed as a document fragment: a single text-block pattern is
// matched textually or structurally against doc's top-level text
// blocks, and a single block-object pattern against doc's top-level
// block objects; a multi-block pattern is matched as a contiguous run
// of text blocks. A single container or raw-block pattern matches
// nothing.
func GetRange(doc *tree.EditorState, patternStr string) (*tree.Selection, error) {
	patState, err := parse.Parse(normalize(patternStr))
	if err != nil {
		return nil, err
	}
	if len(patState.Blocks) == 0 {
		return nil, nil
	}

	var sel *tree.Selection
	if len(patState.Blocks) == 1 {
		switch pb := patState.Blocks[0].(type) {
		case *tree.TextBlock:
			sel = searchSingleBlock(doc, pb)
		case *tree.BlockObject:
			sel = searchBlockObject(doc, pb)
		}
	} else {
		sel = searchMultiBlock(doc, patState.Blocks)
	}

	if debug.Match() {
		debug.Logf("match: pattern %q -> %+v\n", patternStr, sel)
	}
	return sel, nil
}

// GetPointBefore returns the anchor of GetRange's match, or nil if
// there is no match.
func GetPointBefore(doc *tree.EditorState, patternStr string) (*tree.Point, error) {
	sel, err := GetRange(doc, patternStr)
	if err != nil || sel == nil {
		return nil, err
	}
	p := sel.Anchor
	return &p, nil
}

// GetPointAfter returns the focus of GetRange's match, or nil if
// there is no match.
func GetPointAfter(doc *tree.EditorState, patternStr string) (*tree.Point, error) {
	sel, err := GetRange(doc, patternStr)
	if err != nil || sel == nil {
		return nil, err
	}
	p := sel.Focus
	return &p, nil
}

// searchSingleBlock dispatches on the shape of the pattern's own
// content — a lone text run, a leading mark, or a leading inline
// object — and tries that search against each of doc's top-level text
// blocks in order, returning the first hit.
func searchSingleBlock(doc *tree.EditorState, pat *tree.TextBlock) *tree.Selection {
	var probe func(children []tree.InlineNode, base []int) *tree.Selection

	if len(pat.Children) == 1 {
		if t, ok := pat.Children[0].(*tree.Text); ok {
			patText := t.Text
			probe = func(children []tree.InlineNode, base []int) *tree.Selection {
				return searchText(children, base, patText)
			}
		}
	}
	if probe == nil && len(pat.Children) > 0 {
		switch p0 := pat.Children[0].(type) {
		case *tree.Mark:
			probe = func(children []tree.InlineNode, base []int) *tree.Selection {
				return searchMark(children, base, p0)
			}
		case *tree.InlineObject:
			probe = func(children []tree.InlineNode, base []int) *tree.Selection {
				return searchObject(children, base, p0)
			}
		}
	}
	if probe == nil {
		return nil
	}

	for i, b := range doc.Blocks {
		tb, ok := b.(*tree.TextBlock)
		if !ok {
			continue
		}
		if sel := probe(tb.Children, []int{i}); sel != nil {
			return sel
		}
	}
	return nil
}

// searchBlockObject looks for a top-level BlockObject matching pat's
// type and attributes, returning the same-path 0/1 range block
// objects use for their own leading/trailing markers.
func searchBlockObject(doc *tree.EditorState, pat *tree.BlockObject) *tree.Selection {
	for i, b := range doc.Blocks {
		bo, ok := b.(*tree.BlockObject)
		if !ok {
			continue
		}
		if bo.Type == pat.Type && attrsSuperset(bo.Attrs, pat.Attrs) {
			return &tree.Selection{
				Anchor: tree.Point{Path: []int{i}, Offset: 0},
				Focus:  tree.Point{Path: []int{i}, Offset: 1},
			}
		}
	}
	return nil
}
