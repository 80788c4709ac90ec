package rtfmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidPlaceholder   = errors.New("invalid placeholder")
	ErrInvalidSpecifier     = errors.New("invalid specifier")
	ErrMissingArgument      = errors.New("missing argument")
	ErrInvalidSize          = errors.New("invalid size")
	ErrUnsupportedSpecifier = errors.New("unsupported specifier")
	ErrInvalidValue         = errors.New("unsupported value type")
)

// ParseError reports a failed parse. Offset is the byte offset into
// the template at which the failing placeholder began; everything
// before it was consumed successfully.
type ParseError struct {
	Offset int
	Err    error
}

// Error returns the offset and the cause.
func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

// Unwrap returns the cause, one of the package sentinel errors wrapped
// with context.
func (e *ParseError) Unwrap() error { return e.Err }

// Parse interprets template against the given argument stores and
// returns the resolved segments. Nil stores are empty. On failure the
// error is a [*ParseError] whose Offset locates the failing
// placeholder; the sentinel errors classify the cause.
func Parse(template string, positional PositionalArguments, named NamedArguments) (*ParsedFormat, error) {
	tok := NewTokenizer(template, NewSource(positional, named))
	var segments []Segment
	for tok.Scan() {
		segments = append(segments, tok.Segment())
	}
	if err := tok.Err(); err != nil {
		return nil, err
	}
	return &ParsedFormat{segments: segments}, nil
}

// Render adapts the given Go values with [Args] and [Named], parses
// template, and renders it once.
func Render(template string, positional []any, named map[string]any) (string, error) {
	args, err := Args(positional...)
	if err != nil {
		return "", err
	}
	names, err := Named(named)
	if err != nil {
		return "", err
	}
	p, err := Parse(template, args, names)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
