package tree

import "unicode/utf16"

// UTF16Len returns the length of s in UTF-16 code units, the unit
// selection offsets are counted in (§9: "the width of a JavaScript
// string.length").
func UTF16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
