package encode

import "github.com/fatih/color"

// Colors maps a semantic kind ("tag", "attr", "value", "text") to an
// ANSI-coloring function.
type Colors struct {
	byKind map[string]func(string, ...any) string
}

// NewColors builds the default palette. Callers gate its use behind
// their own isatty check (see cmd/richstate); Serialize does not
// probe the terminal itself.
func NewColors() *Colors {
	return &Colors{byKind: map[string]func(string, ...any) string{
		"tag":   color.New(color.FgBlue, color.Bold).SprintfFunc(),
		"attr":  color.RGB(196, 96, 16).SprintfFunc(),
		"value": color.RGB(8, 196, 16).SprintfFunc(),
		"text":  color.New(color.FgWhite).SprintfFunc(),
	}}
}

func (c *Colors) Apply(kind, s string) string {
	f, ok := c.byKind[kind]
	if !ok {
		return s
	}
	return f(s)
}
