package parse

import (
	"strings"

	"github.com/kdoc/richstate/token"
	"github.com/kdoc/richstate/tree"
)

// parseBlock parses one block. p.path must already hold this block's
// own path; p.tok must already hold this block's leading token.
func (p *Parser) parseBlock() (tree.Block, error) {
	markerLine, markerCol := p.tok.Line, p.tok.Column
	sawMarker := false
	for p.tok.Type == token.ANCHOR || p.tok.Type == token.FOCUS {
		sawMarker = true
		kind := p.tok.Type
		path := p.clonePath()
		if err := p.recordMarker(kind, path, 0); err != nil {
			return nil, err
		}
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	if p.tok.Type == token.LBRACE {
		return p.parseBlockObjectTail()
	}
	// A leading anchor/focus marker is only meaningful before a block
	// object; §4.2's block dispatch grants that allowance to the LBRACE
	// branch alone.
	if sawMarker {
		return nil, tree.NewParseError(tree.InvalidIdentifier, markerLine, markerCol, "anchor/focus marker not allowed before a block type name")
	}
	if p.tok.Type != token.IDENT {
		return nil, tree.NewParseError(tree.InvalidIdentifier, p.tok.Line, p.tok.Column, "expected block type name")
	}
	typeName := p.tok.Value
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	if p.tok.Type == token.BANG {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
		attrs, err := p.parseAttrs()
		if err != nil {
			return nil, err
		}
		if p.tok.Type != token.COLON {
			return nil, tree.NewParseError(tree.MissingSpaceAfterColon, p.tok.Line, p.tok.Column, "expected ':'")
		}
		if err := p.advanceWithFlags(false); err != nil {
			return nil, err
		}
		return p.parseRawBlockBody(typeName, attrs)
	}
	attrs, err := p.parseAttrs()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != token.COLON {
		return nil, tree.NewParseError(tree.MissingSpaceAfterColon, p.tok.Line, p.tok.Column, "expected ':'")
	}
	if err := p.advanceWithFlags(false); err != nil {
		return nil, err
	}
	switch p.tok.Type {
	case token.NEWLINE, token.EOF, token.DEDENT, token.BLOCK_SEP:
		return p.parseContainerBlockBody(typeName, attrs)
	case token.LBRACE:
		return p.parseInlineContainerBlockBody(typeName, attrs)
	case token.SPACE:
		if err := p.advanceWithFlags(false); err != nil {
			return nil, err
		}
		return p.parseTextBlockBody(typeName, attrs)
	default:
		return nil, tree.NewParseError(tree.MissingSpaceAfterColon, p.tok.Line, p.tok.Column, "")
	}
}

// parseBlockObjectTail parses `'{' IDENT attrs '}'` plus a trailing
// selection marker. p.tok holds the LBRACE.
func (p *Parser) parseBlockObjectTail() (tree.Block, error) {
	path := p.clonePath()
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	if p.tok.Type != token.IDENT {
		return nil, tree.NewParseError(tree.InvalidIdentifier, p.tok.Line, p.tok.Column, "expected block object type")
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
		return nil, tree.NewParseError(tree.UnbalancedBrace, p.tok.Line, p.tok.Column, "expected '}'")
	}
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	for p.tok.Type == token.FOCUS || p.tok.Type == token.ANCHOR {
		kind := p.tok.Type
		if err := p.recordMarker(kind, path, 1); err != nil {
			return nil, err
		}
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	return &tree.BlockObject{Type: typeName, Attrs: attrs}, nil
}

// parseContainerBlockBody parses the multiline container form:
// `NEWLINE INDENT block+ DEDENT`. p.tok is the token dispatch already
// consumed (NEWLINE/EOF/DEDENT/BLOCK_SEP).
func (p *Parser) parseContainerBlockBody(typeName tree.Name, attrs tree.Attributes) (tree.Block, error) {
	basePath := p.clonePath()
	for p.tok.Type == token.NEWLINE {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	if p.tok.Type != token.INDENT {
		return nil, tree.NewParseError(tree.EmptyContainer, p.tok.Line, p.tok.Column, "")
	}
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	var children []tree.Block
	for {
		for p.tok.Type == token.NEWLINE || p.tok.Type == token.BLOCK_SEP {
			if err := p.advanceWithFlags(true); err != nil {
				return nil, err
			}
		}
		if p.tok.Type == token.DEDENT || p.tok.Type == token.EOF {
			break
		}
		p.path = append(append([]int{}, basePath...), len(children))
		child, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	if len(children) == 0 {
		return nil, tree.NewParseError(tree.EmptyContainer, p.tok.Line, p.tok.Column, "")
	}
	if p.tok.Type == token.DEDENT {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	return &tree.ContainerBlock{Type: typeName, Attrs: attrs, Children: children}, nil
}

// parseInlineContainerBlockBody parses `'{' block (';;' block)* '}'`.
// p.tok holds the LBRACE.
func (p *Parser) parseInlineContainerBlockBody(typeName tree.Name, attrs tree.Attributes) (tree.Block, error) {
	basePath := p.clonePath()
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	var children []tree.Block
	for p.tok.Type != token.RBRACE {
		if p.tok.Type == token.EOF {
			return nil, tree.NewParseError(tree.UnbalancedBrace, p.tok.Line, p.tok.Column, "")
		}
		p.path = append(append([]int{}, basePath...), len(children))
		child, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		if p.tok.Type == token.BLOCK_SEP {
			if err := p.advanceWithFlags(true); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if p.tok.Type != token.RBRACE {
		return nil, tree.NewParseError(tree.UnbalancedBrace, p.tok.Line, p.tok.Column, "")
	}
	if len(children) == 0 {
		return nil, tree.NewParseError(tree.EmptyContainer, p.tok.Line, p.tok.Column, "")
	}
	if err := p.advanceWithFlags(false); err != nil {
		return nil, err
	}
	return &tree.ContainerBlock{Type: typeName, Attrs: attrs, Children: children}, nil
}

// parseTextBlockBody parses a text block's inline content. p.tok
// already holds the first inline-content token (the mandatory SPACE
// after the colon has been consumed by the caller).
func (p *Parser) parseTextBlockBody(typeName tree.Name, attrs tree.Attributes) (tree.Block, error) {
	basePath := p.clonePath()
	children, err := p.parseInlineContent(basePath)
	if err != nil {
		return nil, err
	}
	if p.tok.Type == token.NEWLINE {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
		if p.tok.Type == token.INDENT {
			return nil, tree.NewParseError(tree.InvalidChildUnderTextBlock, p.tok.Line, p.tok.Column, "")
		}
	}
	return &tree.TextBlock{Type: typeName, Attrs: attrs, Children: children}, nil
}

// parseRawBlockBody parses the raw block body. p.tok holds the token
// right after the colon.
func (p *Parser) parseRawBlockBody(typeName tree.Name, attrs tree.Attributes) (tree.Block, error) {
	basePath := p.clonePath()
	for p.tok.Type == token.NEWLINE {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	if p.tok.Type != token.INDENT {
		return &tree.RawBlock{Type: typeName, Attrs: attrs}, nil
	}
	if err := p.advanceRaw(); err != nil {
		return nil, err
	}

	var lines []string
	lineIndex := 0
	for {
		var sb strings.Builder
		p.path = append(append([]int{}, basePath...), lineIndex)
	inner:
		for {
			switch p.tok.Type {
			case token.NEWLINE, token.DEDENT, token.EOF:
				break inner
			case token.FOCUS, token.ANCHOR:
				kind := p.tok.Type
				if err := p.recordMarker(kind, p.clonePath(), sb.Len()); err != nil {
					return nil, err
				}
				if err := p.advanceRaw(); err != nil {
					return nil, err
				}
			default:
				sb.WriteString(p.tok.Value)
				if err := p.advanceRaw(); err != nil {
					return nil, err
				}
			}
		}
		lines = append(lines, sb.String())
		if p.tok.Type == token.NEWLINE {
			if err := p.advanceRaw(); err != nil {
				return nil, err
			}
		}
		if p.tok.Type == token.DEDENT || p.tok.Type == token.EOF {
			break
		}
		lineIndex++
	}
	if p.tok.Type == token.DEDENT {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	return &tree.RawBlock{Type: typeName, Attrs: attrs, Lines: lines}, nil
}
