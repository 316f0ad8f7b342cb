package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/kdoc/richstate/tree"
)

// yamlBlock and yamlInline are plain-value mirrors of tree.Block and
// tree.InlineNode, existing only so goccy/go-yaml has something
// concrete to marshal — the tree package's interfaces carry no tags
// and are never meant to survive a round trip through YAML.
type yamlBlock struct {
	Kind     string         `yaml:"kind"`
	Type     string         `yaml:"type,omitempty"`
	Attrs    map[string]any `yaml:"attrs,omitempty"`
	Children []yamlBlock    `yaml:"children,omitempty"`
	Inline   []yamlInline   `yaml:"inline,omitempty"`
	Lines    []string       `yaml:"lines,omitempty"`
}

type yamlInline struct {
	Kind     string         `yaml:"kind"`
	Type     string         `yaml:"type,omitempty"`
	Mode     string         `yaml:"mode,omitempty"`
	Text     string         `yaml:"text,omitempty"`
	Attrs    map[string]any `yaml:"attrs,omitempty"`
	Children []yamlInline   `yaml:"children,omitempty"`
}

type yamlPoint struct {
	Path   []int `yaml:"path"`
	Offset int   `yaml:"offset"`
}

type yamlDoc struct {
	Blocks []yamlBlock `yaml:"blocks"`
	Anchor *yamlPoint  `yaml:"anchor,omitempty"`
	Focus  *yamlPoint  `yaml:"focus,omitempty"`
}

// DumpYAML renders state as a debug-only YAML tree. It is not part of
// the notation's round-trip contract; use Serialize/parse.Parse for
// that.
func DumpYAML(state *tree.EditorState) (string, error) {
	doc := yamlDoc{Blocks: make([]yamlBlock, len(state.Blocks))}
	for i, b := range state.Blocks {
		doc.Blocks[i] = dumpBlock(b)
	}
	if state.Selection != nil {
		doc.Anchor = &yamlPoint{Path: state.Selection.Anchor.Path, Offset: state.Selection.Anchor.Offset}
		doc.Focus = &yamlPoint{Path: state.Selection.Focus.Path, Offset: state.Selection.Focus.Offset}
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func dumpBlock(b tree.Block) yamlBlock {
	switch v := b.(type) {
	case *tree.TextBlock:
		return yamlBlock{Kind: "text", Type: v.Type, Attrs: dumpAttrs(v.Attrs), Inline: dumpInlines(v.Children)}
	case *tree.ContainerBlock:
		children := make([]yamlBlock, len(v.Children))
		for i, c := range v.Children {
			children[i] = dumpBlock(c)
		}
		return yamlBlock{Kind: "container", Type: v.Type, Attrs: dumpAttrs(v.Attrs), Children: children}
	case *tree.RawBlock:
		return yamlBlock{Kind: "raw", Type: v.Type, Attrs: dumpAttrs(v.Attrs), Lines: v.Lines}
	case *tree.BlockObject:
		return yamlBlock{Kind: "object", Type: v.Type, Attrs: dumpAttrs(v.Attrs)}
	default:
		return yamlBlock{Kind: "unknown"}
	}
}

func dumpInlines(children []tree.InlineNode) []yamlInline {
	out := make([]yamlInline, len(children))
	for i, c := range children {
		out[i] = dumpInline(c)
	}
	return out
}

func dumpInline(n tree.InlineNode) yamlInline {
	switch v := n.(type) {
	case *tree.Text:
		return yamlInline{Kind: "text", Text: v.Text}
	case *tree.Mark:
		return yamlInline{Kind: "mark", Type: v.Type, Mode: v.Mode.String(), Attrs: dumpAttrs(v.Attrs), Children: dumpInlines(v.Children)}
	case *tree.InlineObject:
		return yamlInline{Kind: "object", Type: v.Type, Attrs: dumpAttrs(v.Attrs)}
	default:
		return yamlInline{Kind: "unknown"}
	}
}

func dumpAttrs(attrs tree.Attributes) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v.ToJSON()
	}
	return out
}
