package encode

// Option configures a Serialize call.
type Option func(*encState)

// WithSingleLine selects the single-line container/block-separator
// form instead of the default multiline one.
func WithSingleLine() Option {
	return func(s *encState) { s.singleLine = true }
}

// WithColor enables ANSI-colored output, gated at the call site by
// the caller (typically an isatty check); Serialize itself does not
// probe the terminal.
func WithColor() Option {
	return func(s *encState) { s.colors = NewColors() }
}
