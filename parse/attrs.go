package parse

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kdoc/richstate/token"
	"github.com/kdoc/richstate/tree"
)

// parseAttrs consumes `(SPACE IDENT '=' value)*`. p.tok must already
// hold the token that follows whatever preceded the attribute list,
// fetched with ExpectIdent set; a leading SPACE opens each attribute.
func (p *Parser) parseAttrs() (tree.Attributes, error) {
	var attrs tree.Attributes
	for p.tok.Type == token.SPACE {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
		if p.tok.Type != token.IDENT {
			return nil, tree.NewParseError(tree.MalformedAttribute, p.tok.Line, p.tok.Column, "expected attribute name")
		}
		key := p.tok.Value
		if err := p.advanceWithFlags(false); err != nil {
			return nil, err
		}
		if p.tok.Type != token.EQUALS {
			return nil, tree.NewParseError(tree.MalformedAttribute, p.tok.Line, p.tok.Column, "expected '=' after attribute name")
		}
		p.lx.ExpectAttrValue = true
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
		val, err := p.parseAttrValue()
		if err != nil {
			return nil, err
		}
		if attrs == nil {
			attrs = tree.Attributes{}
		}
		attrs[key] = val
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	return attrs, nil
}

func (p *Parser) parseAttrValue() (tree.AttributeValue, error) {
	switch p.tok.Type {
	case token.JSON:
		dec := json.NewDecoder(strings.NewReader(p.tok.Value))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return tree.AttributeValue{}, tree.NewParseError(tree.InvalidJson, p.tok.Line, p.tok.Column, err.Error())
		}
		return tree.FromJSON(v), nil
	case token.STRING:
		return tree.StringValue(p.tok.Value), nil
	case token.NUMBER:
		n, err := strconv.ParseInt(p.tok.Value, 10, 64)
		if err != nil {
			return tree.AttributeValue{}, tree.NewParseError(tree.MalformedAttribute, p.tok.Line, p.tok.Column, err.Error())
		}
		return tree.IntValue(n), nil
	case token.BOOLEAN:
		return tree.BoolValue(p.tok.Value == "true"), nil
	case token.IDENT:
		return tree.StringValue(p.tok.Value), nil
	default:
		return tree.AttributeValue{}, tree.NewParseError(tree.MalformedAttribute, p.tok.Line, p.tok.Column, "expected attribute value")
	}
}
