package main

import (
	"fmt"
	"io"
	"os"
)

// readArg reads arg's contents, treating "-" as stdin.
func readArg(arg string) (string, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return "", fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// argsOrStdin returns args unchanged, or ["-"] if args is empty, so
// every subcommand reads stdin by default.
func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
