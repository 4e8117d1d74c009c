package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the loader.
var (
	// ErrMalformedRecord indicates a record that cannot be read as (A, B, weight).
	ErrMalformedRecord = errors.New("loader: malformed record")

	// ErrBadWeight indicates a weight field that is not a usable number.
	ErrBadWeight = errors.New("loader: bad weight")

	// ErrOptionViolation indicates an invalid combination of options.
	ErrOptionViolation = errors.New("loader: option violation")
)

// ParseError reports the first bad record of an input.
type ParseError struct {
	Line   int      // 1-based line of the record
	Record []string // raw fields, nil when the line could not be split
	Err    error    // wraps ErrMalformedRecord or ErrBadWeight
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// Record is one parsed input line.
// To is empty for an isolated-node record.
type Record struct {
	From   string
	To     string
	Weight float64
	Line   int
}

// Isolated reports whether r only registers a node.
func (r Record) Isolated() bool { return r.To == "" }

// Options configures parsing.
type Options struct {
	Comma     rune // field delimiter, default ','
	Comment   rune // comment prefix, default '#'; 0 disables comments
	Header    bool // skip the first record
	Isolated  bool // accept single-field records as isolated nodes
	TrimSpace bool // trim surrounding blanks from every field, default true
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Comma:     ',',
		Comment:   '#',
		TrimSpace: true,
	}
}

// WithComma sets the field delimiter.
func WithComma(r rune) Option {
	return func(o *Options) { o.Comma = r }
}

// WithComment sets the comment prefix; 0 disables comments.
func WithComment(r rune) Option {
	return func(o *Options) { o.Comment = r }
}

// WithHeader skips the first record.
func WithHeader(skip bool) Option {
	return func(o *Options) { o.Header = skip }
}

// WithIsolated accepts single-field records as isolated nodes.
func WithIsolated(accept bool) Option {
	return func(o *Options) { o.Isolated = accept }
}

// WithTrimSpace controls trimming of surrounding blanks.
func WithTrimSpace(trim bool) Option {
	return func(o *Options) { o.TrimSpace = trim }
}

func (o Options) validate() error {
	switch {
	case o.Comma == 0 || o.Comma == '\r' || o.Comma == '\n' || o.Comma == '"':
		return fmt.Errorf("%w: comma %q", ErrOptionViolation, o.Comma)
	case o.Comment == '\r' || o.Comment == '\n' || o.Comment == '"':
		return fmt.Errorf("%w: comment %q", ErrOptionViolation, o.Comment)
	case o.Comment != 0 && o.Comment == o.Comma:
		return fmt.Errorf("%w: comma and comment are both %q", ErrOptionViolation, o.Comma)
	}

	return nil
}
