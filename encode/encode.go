package encode

import (
	"strings"

	"github.com/kdoc/richstate/debug"
	"github.com/kdoc/richstate/tree"
)

type encState struct {
	singleLine bool
	sel        *tree.Selection
	colors     *Colors
}

// Serialize produces canonical notation text for state. The result
// re-parses to a structurally equal tree and selection (§8
// round-trip property).
func Serialize(state *tree.EditorState, opts ...Option) string {
	es := &encState{}
	for _, o := range opts {
		o(es)
	}
	if state.Selection != nil {
		es.sel = state.Selection
	}
	var sb strings.Builder
	sep := "\n"
	if es.singleLine {
		sep = ";;"
	}
	for i, b := range state.Blocks {
		if i > 0 {
			sb.WriteString(sep)
		}
		es.emitBlock(&sb, b, []int{i}, 0)
	}
	out := sb.String()
	if debug.Encode() {
		debug.Logf("encode: %d blocks -> %d bytes\n", len(state.Blocks), len(out))
	}
	return out
}

func (es *encState) indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// markersAt returns the marker text ("", "^", "|", or "^|") for the
// boundary (path, offset). A collapsed selection emits only "|".
func (es *encState) markersAt(path []int, offset int) string {
	if es.sel == nil {
		return ""
	}
	anchorHere := pointEqual(es.sel.Anchor, path, offset)
	focusHere := pointEqual(es.sel.Focus, path, offset)
	if es.sel.Collapsed() {
		if focusHere {
			return "|"
		}
		return ""
	}
	var sb strings.Builder
	if anchorHere {
		sb.WriteByte('^')
	}
	if focusHere {
		sb.WriteByte('|')
	}
	return sb.String()
}

func pointEqual(p tree.Point, path []int, offset int) bool {
	if p.Offset != offset || len(p.Path) != len(path) {
		return false
	}
	for i := range path {
		if path[i] != p.Path[i] {
			return false
		}
	}
	return true
}

func (es *encState) color(kind, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Apply(kind, s)
}

func (es *encState) emitBlock(sb *strings.Builder, b tree.Block, path []int, depth int) {
	sb.WriteString(es.markersAt(path, 0))
	switch v := b.(type) {
	case *tree.BlockObject:
		sb.WriteString(es.color("tag", "{"+v.Type))
		es.emitAttrs(sb, v.Attrs)
		sb.WriteString(es.color("tag", "}"))
		sb.WriteString(es.markersAt(path, 1))
	case *tree.TextBlock:
		sb.WriteString(es.color("tag", v.Type))
		es.emitAttrs(sb, v.Attrs)
		sb.WriteString(": ")
		es.emitInlineContent(sb, v.Children, path, depth)
	case *tree.ContainerBlock:
		sb.WriteString(es.color("tag", v.Type))
		es.emitAttrs(sb, v.Attrs)
		if es.singleLine {
			sb.WriteString(":{")
			for i, c := range v.Children {
				if i > 0 {
					sb.WriteString(";;")
				}
				es.emitBlock(sb, c, append(append([]int{}, path...), i), depth+1)
			}
			sb.WriteString("}")
		} else {
			sb.WriteString(":\n")
			for i, c := range v.Children {
				if i > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(es.indent(depth + 1))
				es.emitBlock(sb, c, append(append([]int{}, path...), i), depth+1)
			}
		}
	case *tree.RawBlock:
		sb.WriteString(es.color("tag", v.Type+"!"))
		es.emitAttrs(sb, v.Attrs)
		sb.WriteString(":\n")
		for i, line := range v.Lines {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(es.indent(depth + 1))
			es.emitRawLine(sb, line, append(append([]int{}, path...), i))
		}
	}
}
