package token

import (
	"fmt"
	"strconv"
	"unicode/utf16"

	"github.com/kdoc/richstate/tree"
)

// decodeEscape decodes the escape sequence starting just after the
// backslash at src[i] (src[i-1] == '\\'). It returns the decoded rune(s)
// as a string and the number of source bytes consumed (not including
// the backslash itself).
func decodeEscape(src []byte, i int, line, col int) (string, int, error) {
	if i >= len(src) {
		return "", 0, tree.NewParseError(tree.InvalidEscapeSequence, line, col, "backslash at end of input")
	}
	c := src[i]
	switch c {
	case 's':
		return " ", 1, nil
	case 't':
		return "\t", 1, nil
	case 'n':
		return "\n", 1, nil
	case 'r':
		return "\r", 1, nil
	case '\\':
		return "\\", 1, nil
	case '"':
		return "\"", 1, nil
	case '[':
		return "[", 1, nil
	case ']':
		return "]", 1, nil
	case '{':
		return "{", 1, nil
	case '}':
		return "}", 1, nil
	case '|':
		return "|", 1, nil
	case '^':
		return "^", 1, nil
	case ';':
		return ";", 1, nil
	case 'u':
		if i+5 > len(src) {
			return "", 0, tree.NewParseError(tree.InvalidEscapeSequence, line, col, "incomplete \\u escape")
		}
		hex := string(src[i+1 : i+5])
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return "", 0, tree.NewParseError(tree.InvalidEscapeSequence, line, col, fmt.Sprintf("invalid \\u escape %q", hex))
		}
		r1 := rune(n)
		if utf16.IsSurrogate(r1) {
			if i+11 <= len(src) && src[i+5] == '\\' && src[i+6] == 'u' {
				hex2 := string(src[i+7 : i+11])
				n2, err := strconv.ParseUint(hex2, 16, 32)
				if err == nil {
					r2 := rune(n2)
					if combined := utf16.DecodeRune(r1, r2); combined != 0xFFFD {
						return string(combined), 11, nil
					}
				}
			}
		}
		return string(r1), 5, nil
	default:
		return "", 0, tree.NewParseError(tree.InvalidEscapeSequence, line, col, fmt.Sprintf("\\%c", c))
	}
}
