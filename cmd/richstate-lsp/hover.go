package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/kdoc/richstate/token"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	line := int(params.Position.Line) + 1
	col := int(params.Position.Character) + 1

	tok, ok := tokenAt(doc.content, line, col)
	if !ok {
		return nil, nil
	}
	text := describeToken(tok)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// tokenAt re-lexes content and returns the last token starting at or
// before (line, col) on that line, the same convention a cursor uses
// when it sits inside rather than exactly on a token boundary.
func tokenAt(content string, line, col int) (token.Token, bool) {
	lx := token.New(content)
	var best token.Token
	found := false
	for {
		tok, err := lx.Next()
		if err != nil {
			break
		}
		if tok.Type == token.EOF {
			break
		}
		if tok.Line == line && tok.Column <= col {
			best = tok
			found = true
		} else if tok.Line > line {
			break
		}
	}
	return best, found
}

func describeToken(tok token.Token) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("**Token:** `%s`", tok.Type))
	if tok.Value != "" {
		val := tok.Value
		if len(val) > 60 {
			val = val[:60] + "..."
		}
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", val))
	}
	if desc := tokenKindDescription(tok.Type); desc != "" {
		parts = append(parts, desc)
	}
	return strings.Join(parts, "\n\n")
}

func tokenKindDescription(t token.Type) string {
	switch t {
	case token.IDENT:
		return "block, mark, inline-object type, or attribute name"
	case token.TEXT:
		return "inline text run"
	case token.STRING, token.NUMBER, token.BOOLEAN, token.JSON:
		return "attribute value"
	case token.FOCUS:
		return "cursor marker"
	case token.ANCHOR:
		return "selection anchor marker"
	case token.AT:
		return "annotation mark sigil"
	case token.TILDE:
		return "overlay mark sigil"
	case token.BANG:
		return "raw-block sentinel"
	default:
		return ""
	}
}
