package parse

import (
	"github.com/kdoc/richstate/debug"
	"github.com/kdoc/richstate/token"
	"github.com/kdoc/richstate/tree"
)

// Parser holds the mutable state of one parse: the lexer, its current
// lookahead token, the path of the node under construction, and any
// selection endpoints recorded so far.
type Parser struct {
	lx  *token.Lexer
	tok token.Token

	path []int

	anchor    tree.Point
	focus     tree.Point
	anchorSet bool
	focusSet  bool
}

// Parse lexes and parses input into an EditorState, or returns a
// *tree.ParseError identifying the first offense.
func Parse(input string) (*tree.EditorState, error) {
	p := &Parser{lx: token.New(input)}
	if err := p.advanceWithFlags(true); err != nil {
		return nil, err
	}
	for p.tok.Type == token.NEWLINE || p.tok.Type == token.BLOCK_SEP {
		if err := p.advanceWithFlags(true); err != nil {
			return nil, err
		}
	}
	if p.tok.Type == token.EOF {
		return nil, tree.NewParseError(tree.EmptyDocument, p.tok.Line, p.tok.Column, "")
	}

	var blocks []tree.Block
	for p.tok.Type != token.EOF {
		p.path = []int{len(blocks)}
		b, err := p.parseBlock()
		if err != nil {
			if debug.Parse() {
				debug.Logf("parse: block %d failed: %v\n", len(blocks), err)
			}
			return nil, err
		}
		if debug.Parse() {
			debug.Logf("parse: block %d = %s %v\n", len(blocks), b.BlockType(), b.BlockAttrs())
		}
		blocks = append(blocks, b)
		for p.tok.Type == token.NEWLINE || p.tok.Type == token.BLOCK_SEP {
			if err := p.advanceWithFlags(true); err != nil {
				return nil, err
			}
		}
	}

	return &tree.EditorState{Blocks: blocks, Selection: p.finalizeSelection()}, nil
}

func (p *Parser) finalizeSelection() *tree.Selection {
	switch {
	case !p.anchorSet && !p.focusSet:
		return nil
	case p.anchorSet && !p.focusSet:
		return &tree.Selection{Anchor: p.anchor, Focus: p.anchor}
	case !p.anchorSet && p.focusSet:
		return &tree.Selection{Anchor: p.focus, Focus: p.focus}
	default:
		return &tree.Selection{Anchor: p.anchor, Focus: p.focus}
	}
}

func (p *Parser) advance() error {
	t, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// advanceWithFlags sets expectIdent for the token about to be fetched
// and clears rawMode (every non-raw grammar position does).
func (p *Parser) advanceWithFlags(expectIdent bool) error {
	p.lx.ExpectIdent = expectIdent
	p.lx.RawMode = false
	return p.advance()
}

func (p *Parser) advanceRaw() error {
	p.lx.RawMode = true
	return p.advance()
}

func (p *Parser) clonePath() []int {
	out := make([]int, len(p.path))
	copy(out, p.path)
	return out
}

func (p *Parser) recordMarker(kind token.Type, path []int, offset int) error {
	if kind == token.FOCUS {
		if p.focusSet {
			return tree.NewParseError(tree.MultipleFocus, p.tok.Line, p.tok.Column, "")
		}
		p.focus = tree.Point{Path: path, Offset: offset}
		p.focusSet = true
		return nil
	}
	if p.anchorSet {
		return tree.NewParseError(tree.MultipleAnchor, p.tok.Line, p.tok.Column, "")
	}
	p.anchor = tree.Point{Path: path, Offset: offset}
	p.anchorSet = true
	return nil
}
