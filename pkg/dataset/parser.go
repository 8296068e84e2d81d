package dataset

import "context"

// Parser turns a raw Document into structural Records that downstream
// packages consume. The first record is always treated as the header row.
type Parser interface {
	Parse(ctx context.Context, doc Document) (Records, error)
}

// ParserOptions exposes the CSV dialect knobs the parser honours.
type ParserOptions struct {
	// Comma is the field delimiter. Zero means ',' per RFC 4180.
	Comma rune

	// Comment, when non-zero, marks lines starting with the rune as comments
	// to be skipped.
	Comment rune

	// TrimLeadingSpace discards white space at the start of a field.
	TrimLeadingSpace bool

	// LazyQuotes permits bare quotes inside unquoted fields. Off by default;
	// malformed quoting is surfaced as a parse error.
	LazyQuotes bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithComma overrides the field delimiter.
func WithComma(comma rune) ParserOption {
	return func(opts *ParserOptions) {
		opts.Comma = comma
	}
}

// WithComment enables comment lines starting with the supplied rune.
func WithComment(comment rune) ParserOption {
	return func(opts *ParserOptions) {
		opts.Comment = comment
	}
}

// WithTrimLeadingSpace toggles leading-space trimming.
func WithTrimLeadingSpace(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.TrimLeadingSpace = enabled
	}
}

// WithLazyQuotes toggles lenient quote handling.
func WithLazyQuotes(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.LazyQuotes = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{Comma: ','}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}
