// Package parse implements the recursive-descent parser that turns a
// token stream into a *tree.EditorState. It threads a live path and
// text offset through construction (see design notes) so that
// selection markers encountered mid-stream are resolved to tree
// coordinates in the same pass, with no separate resolution walk.
package parse
