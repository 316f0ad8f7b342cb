package diffutil

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/kdoc/richstate/encode"
	"github.com/kdoc/richstate/tree"
)

// Diff renders a line-level diff of a's and b's canonical multiline
// serializations, in diffmatchpatch's pretty-text form: the text of
// both sides in order, inserted lines wrapped in green and deleted
// lines in red ANSI escapes, with no '+'/'-' line prefixes.
func Diff(a, b *tree.EditorState) string {
	left := encode.Serialize(a)
	right := encode.Serialize(b)

	dmp := diffmatchpatch.New()
	linesA, linesB, lineArray := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffMain(linesA, linesB, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
