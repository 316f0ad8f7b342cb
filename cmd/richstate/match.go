package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kdoc/richstate/match"
	"github.com/kdoc/richstate/parse"
)

func runMatch(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern argument", cli.ErrUsage)
	}
	pattern := args[0]
	for _, arg := range argsOrStdin(args[1:]) {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		st, err := parse.Parse(src)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		switch {
		case cfg.Before:
			p, err := match.GetPointBefore(st, pattern)
			if err != nil {
				return fmt.Errorf("error matching %s: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%v\n", p)
		case cfg.After:
			p, err := match.GetPointAfter(st, pattern)
			if err != nil {
				return fmt.Errorf("error matching %s: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%v\n", p)
		default:
			sel, err := match.GetRange(st, pattern)
			if err != nil {
				return fmt.Errorf("error matching %s: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%v\n", sel)
		}
	}
	return nil
}
