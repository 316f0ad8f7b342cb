package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/kdoc/richstate/encode"
)

// MainConfig holds the flags shared by every subcommand.
type MainConfig struct {
	SingleLine bool `cli:"name=s aliases=single-line desc='serialize on one line, blocks separated by ;;'"`
	Color      bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts() []encode.Option {
	var opts []encode.Option
	if cfg.SingleLine {
		opts = append(opts, encode.WithSingleLine())
	}
	if cfg.Color || isatty.IsTerminal(os.Stdout.Fd()) {
		opts = append(opts, encode.WithColor())
	}
	return opts
}

type ParseConfig struct {
	*MainConfig
	YAML  bool `cli:"name=yaml desc='dump the tree as YAML instead of re-serializing'"`
	Parse *cli.Command
}

type SerializeConfig struct {
	*MainConfig
	Serialize *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Before bool `cli:"name=before desc='print only the point before the match'"`
	After  bool `cli:"name=after desc='print only the point after the match'"`
	Match  *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Path  string `cli:"name=path desc='path (block index) of the block whose attrs to patch'"`
	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}
