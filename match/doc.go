// Package match implements the pattern-locator: it re-parses a
// pattern fragment through the same lexer/parser front end used for
// whole documents and runs a structural/textual search over a
// document tree, returning the matched range as a Selection.
package match
