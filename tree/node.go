package tree

// Name is an identifier used for block, mark, and inline-object types, and
// for attribute keys. Names are non-empty, start with an ASCII letter, and
// contain only ASCII letters, digits, '_', or '-'.
type Name = string

// ValidName reports whether s satisfies the Name grammar.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '_' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// MarkMode selects how a Mark's span is interpreted.
type MarkMode int

const (
	Decorator MarkMode = iota
	Annotation
	Overlay
)

func (m MarkMode) String() string {
	switch m {
	case Decorator:
		return "decorator"
	case Annotation:
		return "annotation"
	case Overlay:
		return "overlay"
	default:
		return "?"
	}
}

// Attributes maps attribute names to values. Insertion order is not
// significant; the serializer sorts keys by code point.
type Attributes map[Name]AttributeValue

// Block is the sum type of top-level or nested structural units.
type Block interface {
	isBlock()
	BlockType() Name
	BlockAttrs() Attributes
}

// TextBlock holds inline content.
type TextBlock struct {
	Type     Name
	Attrs    Attributes
	Children []InlineNode
}

func (*TextBlock) isBlock()              {}
func (b *TextBlock) BlockType() Name     { return b.Type }
func (b *TextBlock) BlockAttrs() Attributes { return b.Attrs }

// ContainerBlock holds child blocks; Children is never empty for a
// successfully parsed document.
type ContainerBlock struct {
	Type     Name
	Attrs    Attributes
	Children []Block
}

func (*ContainerBlock) isBlock()              {}
func (b *ContainerBlock) BlockType() Name     { return b.Type }
func (b *ContainerBlock) BlockAttrs() Attributes { return b.Attrs }

// RawBlock holds raw, unparsed lines. Lines may be empty.
type RawBlock struct {
	Type  Name
	Attrs Attributes
	Lines []string
}

func (*RawBlock) isBlock()              {}
func (b *RawBlock) BlockType() Name     { return b.Type }
func (b *RawBlock) BlockAttrs() Attributes { return b.Attrs }

// BlockObject is an atomic block carrying only attributes.
type BlockObject struct {
	Type  Name
	Attrs Attributes
}

func (*BlockObject) isBlock()              {}
func (b *BlockObject) BlockType() Name     { return b.Type }
func (b *BlockObject) BlockAttrs() Attributes { return b.Attrs }

// InlineNode is the sum type of inline content.
type InlineNode interface {
	isInline()
}

// Text is a leaf run of characters.
type Text struct {
	Text string
}

func (*Text) isInline() {}

// Mark is a formatting span over inline content.
type Mark struct {
	Type     Name
	Mode     MarkMode
	Attrs    Attributes
	Children []InlineNode
}

func (*Mark) isInline() {}

// InlineObject is an atomic inline leaf carrying only attributes.
type InlineObject struct {
	Type  Name
	Attrs Attributes
}

func (*InlineObject) isInline() {}

// Point addresses a boundary in the tree by child-index path plus an
// offset whose meaning depends on the node the path resolves to: a
// UTF-16 code-unit index into a text leaf, a byte index into a raw
// line, 0 or 1 for before or after an atomic object, and 0 when the
// path ends in a child index naming a position between children.
type Point struct {
	Path   []int
	Offset int
}

// ClonePath returns a copy of p's path, safe to store independently of
// any parser-owned slice.
func (p Point) ClonePath() []int {
	if p.Path == nil {
		return nil
	}
	out := make([]int, len(p.Path))
	copy(out, p.Path)
	return out
}

// Selection is an anchor/focus pair. A collapsed selection has an equal
// anchor and focus.
type Selection struct {
	Anchor Point
	Focus  Point
}

// Collapsed reports whether the selection's anchor and focus coincide.
func (s Selection) Collapsed() bool {
	return pointEqual(s.Anchor, s.Focus)
}

func pointEqual(a, b Point) bool {
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

// EditorState is the root of a parsed document.
type EditorState struct {
	Blocks    []Block
	Selection *Selection
}
