// Package query selects top-level blocks by evaluating an expr-lang
// boolean expression against each block's type and attributes,
// generalizing the exact/superset attribute matching the matcher
// package performs for a single located pattern.
package query
