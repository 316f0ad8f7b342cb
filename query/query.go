package query

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/kdoc/richstate/tree"
)

// blockEnv is the variable set bound to expression evaluates against:
// Type is the block's type name, Attrs is its attribute map converted
// to plain JSON values so expr-lang's own comparison operators work
// against strings, numbers, and bools directly.
type blockEnv struct {
	Type  string
	Attrs map[string]any
}

// FindBlocks compiles expression once and evaluates it against every
// top-level block in state, in document order, returning every block
// for which it evaluates true. The expression must evaluate to a bool;
// any other result type is an error.
func FindBlocks(state *tree.EditorState, expression string) ([]tree.Block, error) {
	program, err := expr.Compile(expression, expr.Env(blockEnv{}), expr.AsBool())
	if err != nil {
		return nil, err
	}

	var out []tree.Block
	for _, b := range state.Blocks {
		env := blockEnv{Type: b.BlockType(), Attrs: attrsToJSON(b.BlockAttrs())}
		result, err := expr.Run(program, env)
		if err != nil {
			return nil, err
		}
		matched, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("query: expression did not evaluate to a bool: %v", result)
		}
		if matched {
			out = append(out, b)
		}
	}
	return out, nil
}

func attrsToJSON(attrs tree.Attributes) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v.ToJSON()
	}
	return out
}
