package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/kdoc/richstate/encode"
	"github.com/kdoc/richstate/parse"
)

func runParse(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		cfg.Parse.Usage(cc, err)
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
		if cfg.YAML {
			out, err := encode.DumpYAML(st)
			if err != nil {
				return fmt.Errorf("error dumping %s as yaml: %w", arg, err)
			}
			fmt.Fprint(cc.Out, out)
			continue
		}
		fmt.Fprintln(cc.Out, encode.Serialize(st, cfg.encOpts()...))
	}
	return nil
}
