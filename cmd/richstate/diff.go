package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kdoc/richstate/diffutil"
	"github.com/kdoc/richstate/parse"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	aSrc, err := readArg(args[0])
	if err != nil {
		return err
	}
	bSrc, err := readArg(args[1])
	if err != nil {
		return err
	}
	a, err := parse.Parse(aSrc)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[0], err)
	}
	b, err := parse.Parse(bSrc)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", args[1], err)
	}
	fmt.Fprint(cc.Out, diffutil.Diff(a, b))
	return nil
}
