// Package richstate is the public facade over the notation's
// lexer/parser/serializer/matcher, re-exporting the four operations an
// embedding editor needs without requiring an import of the internal
// packages that implement them.
package richstate
