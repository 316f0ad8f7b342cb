// Package diffutil renders a human-readable diff between two editor
// states by line-diffing their canonical multiline serializations.
package diffutil
