package parse

import (
	"strings"

	"github.com/kdoc/richstate/token"
	"github.com/kdoc/richstate/tree"
)

// parseInlineContent parses inline_content: a run of text, marks, and
// inline objects terminated by NEWLINE, EOF, RBRACKET, RBRACE, DEDENT,
// or BLOCK_SEP. It leaves the terminator as the current token; callers
// decide whether to consume it. basePath is the path of the enclosing
// text block or mark.
func (p *Parser) parseInlineContent(basePath []int) ([]tree.InlineNode, error) {
	var children []tree.InlineNode
	var currentText strings.Builder

	flush := func() {
		if currentText.Len() > 0 {
			children = append(children, &tree.Text{Text: currentText.String()})
			currentText.Reset()
		}
	}

loop:
	for {
		switch p.tok.Type {
		case token.NEWLINE, token.EOF, token.RBRACKET, token.RBRACE, token.DEDENT, token.BLOCK_SEP:
			break loop
		case token.ANCHOR, token.FOCUS:
			kind := p.tok.Type
			path := append(append([]int{}, basePath...), len(children))
			if err := p.recordMarker(kind, path, tree.UTF16Len(currentText.String())); err != nil {
				return nil, err
			}
			if err := p.advanceWithFlags(false); err != nil {
				return nil, err
			}
		case token.LBRACKET:
			flush()
			markPath := append(append([]int{}, basePath...), len(children))
			if err := p.advanceWithFlags(true); err != nil {
				return nil, err
			}
			mark, err := p.parseMark(markPath)
			if err != nil {
				return nil, err
			}
			children = append(children, mark)
		case token.LBRACE:
			flush()
			obj, err := p.parseInlineObjectTail()
			if err != nil {
				return nil, err
			}
			children = append(children, obj)
		default:
			currentText.WriteString(p.tok.Value)
			if err := p.advanceWithFlags(false); err != nil {
				return nil, err
			}
		}
	}
	flush()
	return children, nil
}

// parseMark parses `('@'|'~')? IDENT attrs ':' inline_content ']'`.
// p.tok holds the token right after the opening '['. markPath is this
// mark's own path.
func (p *Parser) parseMark(markPath []int) (*tree.Mark, error) {
	mode := tree.Decorator
	switch p.tok.Type {
	case token.AT:
		mode = tree.Annotation
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	case token.TILDE:
		mode = tree.Overlay
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	if p.tok.Type != token.IDENT {
		return nil, tree.NewParseError(tree.InvalidIdentifier, p.tok.Line, p.tok.Column, "expected mark type")
	}
	typeName := p.tok.Value
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	attrs, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.COLON {
		return nil, tree.NewParseError(tree.MissingColonInMark, p.tok.Line, p.tok.Column, "")
	}
	if err := p.advanceWithFlags(false); err != nil {
		return nil, err
	}
	children, err := p.parseInlineContent(markPath)
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.RBRACKET {
		return nil, tree.NewParseError(tree.UnbalancedBracket, p.tok.Line, p.tok.Column, "")
	}
	if err := p.advanceWithFlags(false); err != nil {
		return nil, err
	}
	return &tree.Mark{Type: typeName, Mode: mode, Attrs: attrs, Children: children}, nil
}

// parseInlineObjectTail parses `'{' IDENT attrs '}'`. p.tok holds the
// LBRACE.
func (p *Parser) parseInlineObjectTail() (*tree.InlineObject, error) {
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	if p.tok.Type != token.IDENT {
		return nil, tree.NewParseError(tree.InvalidIdentifier, p.tok.Line, p.tok.Column, "expected inline object type")
	}
	typeName := p.tok.Value
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	attrs, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.RBRACE {
		return nil, tree.NewParseError(tree.UnbalancedBrace, p.tok.Line, p.tok.Column, "")
	}
	if err := p.advanceWithFlags(false); err != nil {
		return nil, err
	}
	return &tree.InlineObject{Type: typeName, Attrs: attrs}, nil
}
