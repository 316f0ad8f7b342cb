package match

import (
	"reflect"
	"strings"
	"unicode/utf16"

	"github.com/kdoc/richstate/tree"
)

func clonePath(p []int) []int {
	out := make([]int, len(p))
	copy(out, p)
	return out
}

func appendPath(base []int, i int) []int {
	return append(clonePath(base), i)
}

// concatText flattens the text runs reachable from children, in
// document order, descending into marks and skipping inline objects.
func concatText(children []tree.InlineNode) string {
	var sb strings.Builder
	for _, c := range children {
		switch v := c.(type) {
		case *tree.Text:
			sb.WriteString(v.Text)
		case *tree.Mark:
			sb.WriteString(concatText(v.Children))
		}
	}
	return sb.String()
}

func attrsSuperset(doc, pat tree.Attributes) bool {
	for k, v := range pat {
		dv, ok := doc[k]
		if !ok || !reflect.DeepEqual(dv, v) {
			return false
		}
	}
	return true
}

// indexUTF16 returns the position of sub within s, measured in UTF-16
// code units, or -1 if sub does not occur.
func indexUTF16(s, sub string) int {
	if sub == "" {
		return 0
	}
	su := utf16.Encode([]rune(s))
	pu := utf16.Encode([]rune(sub))
	if len(pu) > len(su) {
		return -1
	}
	for i := 0; i+len(pu) <= len(su); i++ {
		match := true
		for j := range pu {
			if su[i+j] != pu[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// searchText walks children depth-first, left to right, looking for
// the first Text run containing patText as a substring, descending
// into Marks when a node itself carries no match.
func searchText(children []tree.InlineNode, basePath []int, patText string) *tree.Selection {
	for i, c := range children {
		switch v := c.(type) {
		case *tree.Text:
			if k := indexUTF16(v.Text, patText); k >= 0 {
				p := appendPath(basePath, i)
				m := tree.UTF16Len(patText)
				return &tree.Selection{
					Anchor: tree.Point{Path: clonePath(p), Offset: k},
					Focus:  tree.Point{Path: clonePath(p), Offset: k + m},
				}
			}
		case *tree.Mark:
			if sel := searchText(v.Children, appendPath(basePath, i), patText); sel != nil {
				return sel
			}
		}
	}
	return nil
}

// searchMark looks for a sibling Mark whose type, mode, and attributes
// match pat (attribute omission on the pattern side matches any
// value) and whose text starts with the pattern's own text.
func searchMark(children []tree.InlineNode, basePath []int, pat *tree.Mark) *tree.Selection {
	patText := concatText(pat.Children)
	for i, c := range children {
		m, ok := c.(*tree.Mark)
		if !ok {
			continue
		}
		if m.Type == pat.Type && m.Mode == pat.Mode && attrsSuperset(m.Attrs, pat.Attrs) &&
			strings.HasPrefix(concatText(m.Children), patText) {
			return siblingRange(children, basePath, i)
		}
		if sel := searchMark(m.Children, appendPath(basePath, i), pat); sel != nil {
			return sel
		}
	}
	return nil
}

// searchObject looks for a sibling InlineObject whose type and
// attributes match pat.
func searchObject(children []tree.InlineNode, basePath []int, pat *tree.InlineObject) *tree.Selection {
	for i, c := range children {
		switch v := c.(type) {
		case *tree.InlineObject:
			if v.Type == pat.Type && attrsSuperset(v.Attrs, pat.Attrs) {
				p := appendPath(basePath, i)
				return &tree.Selection{
					Anchor: tree.Point{Path: clonePath(p), Offset: 0},
					Focus:  tree.Point{Path: clonePath(p), Offset: 1},
				}
			}
		case *tree.Mark:
			if sel := searchObject(v.Children, appendPath(basePath, i), pat); sel != nil {
				return sel
			}
		}
	}
	return nil
}

// siblingRange builds the range around children[i]: the anchor sits
// at the end of the previous sibling if it is text, else right before
// children[i]; the focus sits right after children[i].
func siblingRange(children []tree.InlineNode, basePath []int, i int) *tree.Selection {
	var anchor tree.Point
	if i > 0 {
		if t, ok := children[i-1].(*tree.Text); ok {
			anchor = tree.Point{Path: appendPath(basePath, i-1), Offset: tree.UTF16Len(t.Text)}
		} else {
			anchor = tree.Point{Path: appendPath(basePath, i), Offset: 0}
		}
	} else {
		anchor = tree.Point{Path: appendPath(basePath, i), Offset: 0}
	}
	var focus tree.Point
	if i+1 < len(children) {
		focus = tree.Point{Path: appendPath(basePath, i+1), Offset: 0}
	} else {
		focus = tree.Point{Path: appendPath(basePath, len(children)), Offset: 0}
	}
	return &tree.Selection{Anchor: anchor, Focus: focus}
}
