package encode

import (
	"strings"

	"github.com/kdoc/richstate/tree"
)

// emitInlineContent writes a sequence of inline children belonging to
// basePath (a text block's or mark's own path), checking every
// candidate boundary against the selection.
func (es *encState) emitInlineContent(sb *strings.Builder, children []tree.InlineNode, basePath []int, depth int) {
	for i, c := range children {
		childPath := append(append([]int{}, basePath...), i)
		if t, ok := c.(*tree.Text); ok {
			es.emitText(sb, t.Text, childPath)
			continue
		}
		sb.WriteString(es.markersAt(childPath, 0))
		switch v := c.(type) {
		case *tree.Mark:
			es.emitMark(sb, v, childPath, depth)
		case *tree.InlineObject:
			es.emitInlineObject(sb, v)
		}
	}
	sb.WriteString(es.markersAt(append(append([]int{}, basePath...), len(children)), 0))
}

// emitText writes text's characters with escaping, checking the
// selection at every character boundary (offset 0 through
// UTF16Len(text)) as it goes.
func (es *encState) emitText(sb *strings.Builder, text string, path []int) {
	runes := []rune(text)
	offset := 0
	for _, r := range runes {
		sb.WriteString(es.markersAt(path, offset))
		sb.WriteString(es.color("text", escapeChar(r)))
		offset += utf16RuneWidth(r)
	}
	sb.WriteString(es.markersAt(path, offset))
}

func utf16RuneWidth(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}

func escapeChar(r rune) string {
	switch r {
	case '\\':
		return `\\`
	case '[':
		return `\[`
	case ']':
		return `\]`
	case '{':
		return `\{`
	case '}':
		return `\}`
	case '|':
		return `\|`
	case '^':
		return `\^`
	case ';':
		return `\;`
	default:
		return string(r)
	}
}

func (es *encState) emitMark(sb *strings.Builder, m *tree.Mark, path []int, depth int) {
	sb.WriteString(es.color("tag", "["))
	switch m.Mode {
	case tree.Annotation:
		sb.WriteString("@")
	case tree.Overlay:
		sb.WriteString("~")
	}
	sb.WriteString(es.color("tag", m.Type))
	es.emitAttrs(sb, m.Attrs)
	sb.WriteString(":")
	es.emitInlineContent(sb, m.Children, path, depth)
	sb.WriteString(es.color("tag", "]"))
}

func (es *encState) emitInlineObject(sb *strings.Builder, o *tree.InlineObject) {
	sb.WriteString(es.color("tag", "{"+o.Type))
	es.emitAttrs(sb, o.Attrs)
	sb.WriteString(es.color("tag", "}"))
}

// emitRawLine writes one raw line, escaping only the two characters
// that would otherwise be read as selection markers, and checking the
// selection at every byte offset within the line.
func (es *encState) emitRawLine(sb *strings.Builder, line string, path []int) {
	offset := 0
	for i := 0; i < len(line); i++ {
		sb.WriteString(es.markersAt(path, offset))
		c := line[i]
		switch c {
		case '|':
			sb.WriteString(`\|`)
		case '^':
			sb.WriteString(`\^`)
		default:
			sb.WriteByte(c)
		}
		offset++
	}
	sb.WriteString(es.markersAt(path, offset))
}
