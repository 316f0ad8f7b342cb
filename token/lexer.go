package token

import (
	"strings"

	"github.com/kdoc/richstate/debug"
	"github.com/kdoc/richstate/tree"
)

// Lexer scans a notation document into a Token stream. expectIdent,
// rawMode, and expectAttrValue are mutable flags the parser sets before
// each call to Next; they are the mechanism by which one grammar
// position disambiguates what would otherwise be an ambiguous character
// class: a letter starts an IDENT only under ExpectIdent, a '{', '[',
// '"', '-' or digit starts a JSON, STRING or NUMBER token only under
// ExpectAttrValue, and RawMode turns every structural character except
// '|' and '^' into text.
type Lexer struct {
	src []byte
	pos int
	line, col int

	indentStack    []int
	pendingDedents int
	atLineStart    bool

	ExpectIdent     bool
	RawMode         bool
	ExpectAttrValue bool
}

// New creates a Lexer over input. CRLF sequences are normalized to LF
// per §4.1; a trailing LF is appended internally if missing so every
// line, including the last, has a uniform terminator.
func New(input string) *Lexer {
	norm := strings.ReplaceAll(input, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")
	b := []byte(norm)
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	return &Lexer{
		src:         b,
		pos:         0,
		line:        1,
		col:         1,
		indentStack: []int{0},
		atLineStart: true,
	}
}

// Next returns the next token, or an error identifying the offending
// position via a *tree.ParseError.
func (lx *Lexer) Next() (Token, error) {
	tok, err := lx.next()
	if debug.Lex() {
		if err != nil {
			debug.Logf("lex: error at %d:%d: %v\n", lx.line, lx.col, err)
		} else {
			debug.Logf("lex: %s %q at %d:%d\n", tok.Type, tok.Value, tok.Line, tok.Column)
		}
	}
	return tok, err
}

func (lx *Lexer) next() (Token, error) {
	if lx.pendingDedents > 0 {
		lx.pendingDedents--
		return Token{Type: DEDENT, Line: lx.line, Column: lx.col}, nil
	}
	if lx.atLineStart {
		tok, produced, err := lx.lineStart()
		if err != nil {
			return Token{}, err
		}
		if produced {
			return tok, nil
		}
	}
	return lx.scanToken()
}

func (lx *Lexer) advanceRune() rune {
	if lx.pos >= len(lx.src) {
		return 0
	}
	c := lx.src[lx.pos]
	if c < 0x80 {
		lx.pos++
		if c == '\n' {
			lx.line++
			lx.col = 1
		} else {
			lx.col++
		}
		return rune(c)
	}
	r, size := decodeRune(lx.src[lx.pos:])
	lx.pos += size
	lx.col++
	return r
}

func (lx *Lexer) consumeN(n int) {
	for i := 0; i < n; i++ {
		lx.pos++
		lx.col++
	}
}

func (lx *Lexer) peekAt(i int) byte {
	if lx.pos+i < 0 || lx.pos+i >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+i]
}

// measureIndent peeks (without consuming) the run of spaces/tabs
// starting at the current position.
func (lx *Lexer) measureIndent() (width int, hasTab bool, tabLine, tabCol int, blank bool) {
	i := lx.pos
	line, col := lx.line, lx.col
	for i < len(lx.src) {
		c := lx.src[i]
		switch c {
		case ' ':
			width++
			i++
			col++
		case '\t':
			if !hasTab {
				hasTab, tabLine, tabCol = true, line, col
			}
			width++
			i++
			col++
		default:
			blank = i >= len(lx.src) || lx.src[i] == '\n'
			return width, hasTab, tabLine, tabCol, blank
		}
	}
	return width, hasTab, tabLine, tabCol, true
}

// lineStart runs the off-side algorithm for one line. It returns
// (token, true, nil) when a NEWLINE/INDENT/DEDENT/EOF was produced,
// (zero, false, nil) when the line's indentation matched the
// established level and scanning should continue with scanToken, or a
// non-nil error.
func (lx *Lexer) lineStart() (Token, bool, error) {
	for {
		if lx.pos >= len(lx.src) {
			return lx.eofDedent()
		}
		width, hasTab, tabLine, tabCol, blank := lx.measureIndent()
		if blank {
			lx.consumeN(width)
			if lx.pos < len(lx.src) && lx.src[lx.pos] == '\n' {
				line, col := lx.line, lx.col
				lx.advanceRune()
				return Token{Type: NEWLINE, Line: line, Column: col}, true, nil
			}
			continue
		}

		top := lx.indentStack[len(lx.indentStack)-1]
		if lx.RawMode && width >= top {
			// Raw continuation line: the block's own indentation is
			// stripped without validation; anything past it, including
			// extra leading whitespace, is preserved as raw content.
			lx.consumeN(top)
			lx.atLineStart = false
			return Token{}, false, nil
		}

		if hasTab {
			return Token{}, false, tree.NewParseError(tree.TabsInIndentation, tabLine, tabCol, "")
		}
		if width%2 != 0 {
			return Token{}, false, tree.NewParseError(tree.IndentationNotMultipleOfTwo, lx.line, lx.col, "")
		}
		lx.consumeN(width)
		line, col := lx.line, lx.col
		switch {
		case width > top:
			if width != top+2 {
				return Token{}, false, tree.NewParseError(tree.IndentationSkipsLevel, line, col, "")
			}
			lx.indentStack = append(lx.indentStack, width)
			lx.atLineStart = false
			return Token{Type: INDENT, Line: line, Column: col}, true, nil
		case width < top:
			pops := 0
			for len(lx.indentStack) > 1 && lx.indentStack[len(lx.indentStack)-1] > width {
				lx.indentStack = lx.indentStack[:len(lx.indentStack)-1]
				pops++
			}
			if lx.indentStack[len(lx.indentStack)-1] != width {
				return Token{}, false, tree.NewParseError(tree.IndentationNotMultipleOfTwo, line, col, "dedent to invalid level")
			}
			lx.pendingDedents = pops - 1
			lx.atLineStart = false
			return Token{Type: DEDENT, Line: line, Column: col}, true, nil
		default:
			lx.atLineStart = false
			return Token{}, false, nil
		}
	}
}

func (lx *Lexer) eofDedent() (Token, bool, error) {
	if len(lx.indentStack) > 1 {
		pops := len(lx.indentStack) - 1
		lx.indentStack = lx.indentStack[:1]
		lx.pendingDedents = pops - 1
		return Token{Type: DEDENT, Line: lx.line, Column: lx.col}, true, nil
	}
	return Token{Type: EOF, Line: lx.line, Column: lx.col}, true, nil
}

// scanToken scans one token starting mid-line (indentation already
// resolved for this line).
func (lx *Lexer) scanToken() (Token, error) {
	if lx.pos >= len(lx.src) {
		return Token{Type: EOF, Line: lx.line, Column: lx.col}, nil
	}
	line, col := lx.line, lx.col
	c := lx.src[lx.pos]

	if c == '\n' {
		lx.advanceRune()
		lx.atLineStart = true
		return Token{Type: NEWLINE, Line: line, Column: col}, nil
	}

	if lx.RawMode {
		return lx.scanRaw(line, col)
	}

	attrVal := lx.ExpectAttrValue
	lx.ExpectAttrValue = false
	if attrVal {
		switch {
		case c == '{' || c == '[':
			return lx.scanJSON(line, col)
		case c == '"':
			return lx.scanString(line, col)
		case c == '-' || isASCIIDigit(c):
			return lx.scanNumber(line, col)
		}
	}

	if c == ' ' || c == '\t' {
		lx.advanceRune()
		return Token{Type: SPACE, Value: string(c), Line: line, Column: col}, nil
	}

	switch c {
	case ':':
		lx.advanceRune()
		return Token{Type: COLON, Value: ":", Line: line, Column: col}, nil
	case '!':
		lx.advanceRune()
		return Token{Type: BANG, Value: "!", Line: line, Column: col}, nil
	case '[':
		lx.advanceRune()
		return Token{Type: LBRACKET, Line: line, Column: col}, nil
	case ']':
		lx.advanceRune()
		return Token{Type: RBRACKET, Line: line, Column: col}, nil
	case '{':
		lx.advanceRune()
		return Token{Type: LBRACE, Line: line, Column: col}, nil
	case '}':
		lx.advanceRune()
		return Token{Type: RBRACE, Line: line, Column: col}, nil
	case '|':
		lx.advanceRune()
		return Token{Type: FOCUS, Line: line, Column: col}, nil
	case '^':
		lx.advanceRune()
		return Token{Type: ANCHOR, Line: line, Column: col}, nil
	case '@':
		lx.advanceRune()
		return Token{Type: AT, Value: "@", Line: line, Column: col}, nil
	case '~':
		lx.advanceRune()
		return Token{Type: TILDE, Value: "~", Line: line, Column: col}, nil
	case '=':
		lx.advanceRune()
		return Token{Type: EQUALS, Value: "=", Line: line, Column: col}, nil
	case ';':
		if lx.peekAt(1) == ';' {
			lx.advanceRune()
			lx.advanceRune()
			return Token{Type: BLOCK_SEP, Line: line, Column: col}, nil
		}
	}

	if lx.ExpectIdent && isASCIILetter(c) {
		return lx.scanIdentOrKeyword(line, col)
	}
	return lx.scanTextRun(line, col)
}
