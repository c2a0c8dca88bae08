package mimekit

import (
	"errors"
	"fmt"
)

// Common mimekit errors
var (
	// ErrInvalidArgument indicates a missing or unusable argument, such as a
	// zero MediaType passed to a constructor or a nil link.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrMalformedType indicates a MIME type string that does not follow the
	// type/subtype[;params] format.
	ErrMalformedType = errors.New("malformed media type")

	// ErrInvalidName indicates a media type name that fails the RFC 2045
	// token/token grammar.
	ErrInvalidName = errors.New("invalid media type name")

	// ErrEmptyAssociation indicates a root-XML association with neither a
	// namespace URI nor a local name.
	ErrEmptyAssociation = errors.New("both namespace URI and local name are empty")
)

// ParseError records a failure to parse a MIME type string and the input
// that caused it
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse MIME type (expected type/subtype[;q=x.y] format): %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsMalformedType reports whether an error indicates a MIME type string
// that does not follow the type/subtype format
func IsMalformedType(err error) bool {
	return errors.Is(err, ErrMalformedType)
}

// IsInvalidArgument reports whether an error indicates a missing or
// unusable argument
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
