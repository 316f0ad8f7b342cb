package token

import "testing"

// nextWithIdent calls Next with ExpectIdent set for that one token, the
// same pattern parse.Parser.advanceWithFlags uses: the lexer never
// guesses IDENT vs TEXT on its own.
func nextWithIdent(t *testing.T, lx *Lexer) Token {
	t.Helper()
	lx.ExpectIdent = true
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("Next(): %v", err)
	}
	return tok
}

func next(t *testing.T, lx *Lexer) Token {
	t.Helper()
	tok, err := lx.Next()
	if err != nil {
		t.Fatalf("Next(): %v", err)
	}
	return tok
}

func TestLexerIdentRequiresExpectIdent(t *testing.T) {
	lx := New("P: hello")
	tok := nextWithIdent(t, lx)
	if tok.Type != IDENT || tok.Value != "P" {
		t.Fatalf("got %s %q, want IDENT \"P\"", tok.Type, tok.Value)
	}
	colon := next(t, lx)
	if colon.Type != COLON {
		t.Fatalf("got %s, want COLON", colon.Type)
	}
}

func TestLexerBareIdentIsTextWithoutFlag(t *testing.T) {
	lx := New("P: hello")
	tok := next(t, lx)
	if tok.Type != TEXT {
		t.Fatalf("got %s, want TEXT (ExpectIdent unset)", tok.Type)
	}
}

func TestLexerIndentDedent(t *testing.T) {
	lx := New("Doc:\n  P: a\nP: b\n")
	var indents, dedents int
	for {
		tok := next(t, lx)
		switch tok.Type {
		case INDENT:
			indents++
		case DEDENT:
			dedents++
		}
		if tok.Type == EOF {
			break
		}
	}
	if indents != 1 || dedents != 1 {
		t.Errorf("got %d INDENT, %d DEDENT, want 1 and 1", indents, dedents)
	}
}

func TestLexerTabsInIndentationError(t *testing.T) {
	lx := New("Doc:\n\tP: a\n")
	var sawErr bool
	for i := 0; i < 20; i++ {
		_, err := lx.Next()
		if err != nil {
			sawErr = true
			break
		}
	}
	if !sawErr {
		t.Fatal("expected an error for a tab in indentation")
	}
}

func TestLexerOddIndentationWidth(t *testing.T) {
	lx := New("Doc:\n   P: a\n")
	var sawErr bool
	for i := 0; i < 20; i++ {
		_, err := lx.Next()
		if err != nil {
			sawErr = true
			break
		}
	}
	if !sawErr {
		t.Fatal("expected an error for indentation not a multiple of two")
	}
}

func TestLexerEscapeSequencesInText(t *testing.T) {
	lx := New(`a\nb\tc`)
	tok := next(t, lx)
	if tok.Type != TEXT || tok.Value != "a\nb\tc" {
		t.Errorf("got %s %q, want TEXT %q", tok.Type, tok.Value, "a\nb\tc")
	}
}

func TestLexerUnicodeEscape(t *testing.T) {
	lx := New("\\u00e9")
	tok := next(t, lx)
	if tok.Type != TEXT || tok.Value != "é" {
		t.Errorf("got %s %q, want TEXT %q", tok.Type, tok.Value, "é")
	}
}

func TestLexerRawModeEscapesOnlyPipeAndCaret(t *testing.T) {
	lx := New(`a\|b\^c\nd`)
	lx.RawMode = true
	tok := next(t, lx)
	if tok.Type != TEXT {
		t.Fatalf("got %s, want TEXT", tok.Type)
	}
	want := `a|b^c\nd`
	if tok.Value != want {
		t.Errorf("got %q, want %q", tok.Value, want)
	}
}

func TestLexerRawModeFocusAnchor(t *testing.T) {
	lx := New(`x|y^z`)
	lx.RawMode = true
	var got []Type
	for i := 0; i < 5; i++ {
		got = append(got, next(t, lx).Type)
	}
	want := []Type{TEXT, FOCUS, TEXT, ANCHOR, TEXT}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("token %d: got %s, want %s", i, got[i], w)
		}
	}
}

func TestLexerAttrValueNumberAndString(t *testing.T) {
	lx := New(`5`)
	lx.ExpectAttrValue = true
	tok := next(t, lx)
	if tok.Type != NUMBER || tok.Value != "5" {
		t.Errorf("got %s %q, want NUMBER \"5\"", tok.Type, tok.Value)
	}

	lx = New(`"hi"`)
	lx.ExpectAttrValue = true
	tok = next(t, lx)
	if tok.Type != STRING || tok.Value != "hi" {
		t.Errorf("got %s %q, want STRING \"hi\"", tok.Type, tok.Value)
	}
}

func TestLexerBlockSepToken(t *testing.T) {
	lx := New(";; P: a")
	tok := next(t, lx)
	if tok.Type != BLOCK_SEP {
		t.Fatalf("got %s, want BLOCK_SEP", tok.Type)
	}
}
