package encode

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/kdoc/richstate/tree"
)

// emitAttrs writes key-sorted `" "+key+"="+value` pairs. A nil or
// empty Attributes writes nothing.
func (es *encState) emitAttrs(sb *strings.Builder, attrs tree.Attributes) {
	if len(attrs) == 0 {
		return
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(es.color("attr", k))
		sb.WriteByte('=')
		sb.WriteString(es.color("value", formatValue(attrs[k])))
	}
}

func formatValue(v tree.AttributeValue) string {
	switch v.Kind {
	case tree.AttrNull:
		return "null"
	case tree.AttrString:
		return formatString(v.Str)
	case tree.AttrInt:
		return strconv.FormatInt(v.Int, 10)
	case tree.AttrBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case tree.AttrFloat, tree.AttrArray, tree.AttrObject:
		b, _ := json.Marshal(v.ToJSON())
		return string(b)
	default:
		return "null"
	}
}

func formatString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
