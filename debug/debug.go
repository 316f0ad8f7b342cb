// Package debug provides opt-in, environment-gated diagnostic logging
// for the lexer, parser, matcher, and encoder, without pulling a
// logging framework into a synchronous, dependency-free core.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type flags struct {
	Lex    bool
	Parse  bool
	Match  bool
	Encode bool
}

var d *flags

func init() {
	d = &flags{
		Lex:    boolEnv("RICHSTATE_DEBUG_LEX"),
		Parse:  boolEnv("RICHSTATE_DEBUG_PARSE"),
		Match:  boolEnv("RICHSTATE_DEBUG_MATCH"),
		Encode: boolEnv("RICHSTATE_DEBUG_ENCODE"),
	}
}

func boolEnv(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, _ := strconv.ParseBool(v)
	return b
}

func Lex() bool    { return d.Lex }
func Parse() bool  { return d.Parse }
func Match() bool  { return d.Match }
func Encode() bool { return d.Encode }

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
