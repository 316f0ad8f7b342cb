package richstate

import (
	"github.com/kdoc/richstate/encode"
	"github.com/kdoc/richstate/match"
	"github.com/kdoc/richstate/parse"
	"github.com/kdoc/richstate/tree"
)

type (
	EditorState    = tree.EditorState
	Block          = tree.Block
	InlineNode     = tree.InlineNode
	TextBlock      = tree.TextBlock
	ContainerBlock = tree.ContainerBlock
	RawBlock       = tree.RawBlock
	BlockObject    = tree.BlockObject
	Text           = tree.Text
	Mark           = tree.Mark
	InlineObject   = tree.InlineObject
	Point          = tree.Point
	Selection      = tree.Selection
	Attributes     = tree.Attributes
	AttributeValue = tree.AttributeValue

	Option = encode.Option
)

var (
	WithSingleLine = encode.WithSingleLine
	WithColor      = encode.WithColor
)

// Parse lexes and parses notation text into an EditorState.
func Parse(input string) (*EditorState, error) {
	return parse.Parse(input)
}

// Serialize renders state back to canonical notation text.
func Serialize(state *EditorState, opts ...Option) string {
	return encode.Serialize(state, opts...)
}

// GetRange locates patternStr within doc, returning the matching range
// or nil if there is no match.
func GetRange(doc *EditorState, patternStr string) (*Selection, error) {
	return match.GetRange(doc, patternStr)
}

// GetPointBefore returns the start of GetRange's match.
func GetPointBefore(doc *EditorState, patternStr string) (*Point, error) {
	return match.GetPointBefore(doc, patternStr)
}

// GetPointAfter returns the end of GetRange's match.
func GetPointAfter(doc *EditorState, patternStr string) (*Point, error) {
	return match.GetPointAfter(doc, patternStr)
}
