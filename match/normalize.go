package match

import "strings"

// normalize turns a bare pattern fragment into a parseable document
// string. A fragment that already reads as block syntax (an
// uppercase-initial type name, optionally raw-marked, followed by a
// colon) or as a bare block object ("{TYPE ...}" with no colon) is
// used as-is; anything else is assumed to be inline content destined
// for an implicit "P: " host block.
func normalize(patternStr string) string {
	if looksLikeBlock(patternStr) {
		return patternStr
	}
	return "P: " + patternStr
}

func looksLikeBlock(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		i := 1
		for i < len(s) && isNameByte(s[i]) {
			i++
		}
		if i > 0 {
			j := i
			if j < len(s) && s[j] == '!' {
				j++
			}
			if j < len(s) && s[j] == ':' {
				return true
			}
		}
	}
	return looksLikeBlockObject(s)
}

func looksLikeBlockObject(s string) bool {
	if s[0] != '{' || len(s) < 2 {
		return false
	}
	if !(s[1] >= 'A' && s[1] <= 'Z') {
		return false
	}
	return !strings.Contains(s, ":")
}

func isNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_' || b == '-'
}
