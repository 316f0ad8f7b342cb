// Package tree defines the typed document model produced by parse and
// consumed by encode and match: blocks, inline nodes, attributes, and the
// path/offset addressing used for selections.
package tree
