package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "richstate").
		WithSynopsis("richstate [opts] command [opts]").
		WithDescription("richstate reads, writes, and searches rich-text editor state notation.").
		WithOpts(opts...).
		WithSubs(
			ParseCommand(cfg),
			SerializeCommand(cfg),
			MatchCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg),
			DiffCommand(cfg),
		)
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [files]").
		WithDescription("parse notation and print the resulting tree").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runParse(cfg, cc, args)
		})
}

func SerializeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SerializeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Serialize, "serialize").
		WithAliases("ser").
		WithSynopsis("serialize [files]").
		WithDescription("round-trip notation through parse and Serialize").
		WithRun(func(cc *cli.Context, args []string) error {
			return runSerialize(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Match, "match").
		WithAliases("m").
		WithSynopsis("match <pattern> [files]").
		WithDescription("locate a pattern in a document and print the matched range").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runMatch(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query <expression> [files]").
		WithDescription("select top-level blocks matching an expr-lang boolean expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return runQuery(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch [opts] <patch.json> [files]").
		WithDescription("apply an RFC 6902 JSON Patch to one block's attributes").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runPatch(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff <a> <b>").
		WithDescription("diff two notation documents' canonical serializations").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
}
