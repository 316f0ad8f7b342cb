// Package encode serializes a *tree.EditorState back into notation
// text. It is the mirror image of package parse: it walks the tree
// with a live path, testing at each candidate boundary whether the
// document's selection endpoints land there, and emits selection
// markers accordingly.
package encode
