package main

import (
	"fmt"

	"github.com/kdoc/richstate/tree"
)

// setBlockAttrs replaces b's attribute map in place. tree.Block has no
// setter of its own since the notation's core packages never mutate a
// parsed tree; the CLI's patch command is the one place that does.
func setBlockAttrs(b tree.Block, attrs tree.Attributes) error {
	switch v := b.(type) {
	case *tree.TextBlock:
		v.Attrs = attrs
	case *tree.ContainerBlock:
		v.Attrs = attrs
	case *tree.RawBlock:
		v.Attrs = attrs
	case *tree.BlockObject:
		v.Attrs = attrs
	default:
		return fmt.Errorf("patch: unknown block type %T", b)
	}
	return nil
}
