package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kdoc/richstate/encode"
	"github.com/kdoc/richstate/parse"
	"github.com/kdoc/richstate/query"
	"github.com/kdoc/richstate/tree"
)

func runQuery(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression argument", cli.ErrUsage)
	}
	expression := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		st, err := parse.Parse(src)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		blocks, err := query.FindBlocks(st, expression)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		out := encode.Serialize(&tree.EditorState{Blocks: blocks}, cfg.encOpts()...)
		fmt.Fprintln(cc.Out, out)
	}
	return nil
}
