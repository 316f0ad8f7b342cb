package match

import (
	"strings"

	"github.com/kdoc/richstate/tree"
)

type textRun struct {
	path []int
	text string
}

// flattenRuns lists the Text descendants of children in document
// order, descending into Marks and skipping InlineObjects, the same
// traversal concatText uses to build the text it walks.
func flattenRuns(children []tree.InlineNode, basePath []int) []textRun {
	var out []textRun
	for i, c := range children {
		switch v := c.(type) {
		case *tree.Text:
			out = append(out, textRun{path: appendPath(basePath, i), text: v.Text})
		case *tree.Mark:
			out = append(out, flattenRuns(v.Children, appendPath(basePath, i))...)
		}
	}
	return out
}

// pointAtOffset finds the (path, offset) that sits target UTF-16 code
// units into the concatenated text of children.
func pointAtOffset(children []tree.InlineNode, basePath []int, target int) tree.Point {
	runs := flattenRuns(children, basePath)
	if len(runs) == 0 {
		return tree.Point{Path: appendPath(basePath, 0), Offset: 0}
	}
	cum := 0
	for _, r := range runs {
		l := tree.UTF16Len(r.text)
		if target <= cum+l {
			return tree.Point{Path: r.path, Offset: target - cum}
		}
		cum += l
	}
	last := runs[len(runs)-1]
	return tree.Point{Path: last.path, Offset: tree.UTF16Len(last.text)}
}

// searchMultiBlock locates a contiguous run of document text blocks
// whose concatenated text is bounded by the pattern's own blocks: the
// first document block must end with the pattern's first block text,
// the last must start with the pattern's last block text, and every
// block strictly between them must match exactly.
func searchMultiBlock(doc *tree.EditorState, pat []tree.Block) *tree.Selection {
	n := len(pat)
	if n == 0 {
		return nil
	}
	patTexts := make([]string, n)
	for i, b := range pat {
		tb, ok := b.(*tree.TextBlock)
		if !ok {
			return nil
		}
		patTexts[i] = concatText(tb.Children)
	}

	for s := 0; s+n <= len(doc.Blocks); s++ {
		docTexts := make([]string, n)
		docBlocks := make([]*tree.TextBlock, n)
		ok := true
		for i := 0; i < n; i++ {
			tb, isText := doc.Blocks[s+i].(*tree.TextBlock)
			if !isText {
				ok = false
				break
			}
			docBlocks[i] = tb
			docTexts[i] = concatText(tb.Children)
		}
		if !ok {
			continue
		}
		if !strings.HasSuffix(docTexts[0], patTexts[0]) {
			continue
		}
		if !strings.HasPrefix(docTexts[n-1], patTexts[n-1]) {
			continue
		}
		middleOK := true
		for i := 1; i <= n-2; i++ {
			if docTexts[i] != patTexts[i] {
				middleOK = false
				break
			}
		}
		if !middleOK {
			continue
		}

		startOffset := tree.UTF16Len(docTexts[0]) - tree.UTF16Len(patTexts[0])
		anchor := pointAtOffset(docBlocks[0].Children, []int{s}, startOffset)
		endOffset := tree.UTF16Len(patTexts[n-1])
		focus := pointAtOffset(docBlocks[n-1].Children, []int{s + n - 1}, endOffset)
		return &tree.Selection{Anchor: anchor, Focus: focus}
	}
	return nil
}
