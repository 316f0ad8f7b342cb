package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/kdoc/richstate/encode"
	"github.com/kdoc/richstate/parse"
	"github.com/kdoc/richstate/patchop"
)

func runPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a JSON Patch document argument", cli.ErrUsage)
	}
	patchSrc, err := readArg(args[0])
	if err != nil {
		return err
	}
	idx := 0
	if cfg.Path != "" {
		idx, err = strconv.Atoi(cfg.Path)
		if err != nil {
			return fmt.Errorf("%w: -path must be a block index: %w", cli.ErrUsage, err)
		}
	}
	for _, arg := range argsOrStdin(args[1:]) {
		src, err := readArg(arg)
		if err != nil {
			return err
		}
		st, err := parse.Parse(src)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", arg, err)
		}
		if idx < 0 || idx >= len(st.Blocks) {
			return fmt.Errorf("%w: block index %d out of range", cli.ErrUsage, idx)
		}
		attrs, err := patchop.ApplyAttrPatch(st.Blocks[idx].BlockAttrs(), []byte(patchSrc))
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := setBlockAttrs(st.Blocks[idx], attrs); err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, encode.Serialize(st, cfg.encOpts()...))
	}
	return nil
}
