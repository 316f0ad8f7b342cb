package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kdoc/richstate/encode"
	"github.com/kdoc/richstate/parse"
)

func runSerialize(cfg *SerializeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serialize.Parse(cc, args)
	if err != nil {
		cfg.Serialize.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		st, err := parse.Parse(src)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		fmt.Fprintln(cc.Out, encode.Serialize(st, cfg.encOpts()...))
	}
	return nil
}
