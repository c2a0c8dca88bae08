package mimekit

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// MediaType is an immutable, normalized media type name such as
// "text/plain". It is a comparable value type: two MediaType values are
// equal exactly when their normalized names are equal, so it can be used
// directly as a map key.
//
// The zero value represents "no media type" and is how the universal
// wildcard entry produced by Parse("*/*") carries its type.
type MediaType struct {
	name string
}

// NewMediaType creates a MediaType from the given name. The name is
// trimmed and lower-cased; it must pass IsValid.
func NewMediaType(name string) (MediaType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsValid(name) {
		return MediaType{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return MediaType{name: name}, nil
}

// MustMediaType is like NewMediaType but panics on an invalid name.
// It simplifies registration of built-in types.
func MustMediaType(name string) MediaType {
	mt, err := NewMediaType(name)
	if err != nil {
		panic(err)
	}
	return mt
}

// String returns the normalized name, or the empty string for the zero
// value.
func (m MediaType) String() string {
	return m.name
}

// IsZero reports whether this is the zero MediaType.
func (m MediaType) IsZero() bool {
	return m.name == ""
}

// Compare orders media types lexicographically by normalized name.
func (m MediaType) Compare(other MediaType) int {
	return strings.Compare(m.name, other.name)
}

// Hash returns a 64-bit hash of the normalized name.
func (m MediaType) Hash() uint64 {
	return xxhash.Sum64String(m.name)
}

// IsValid checks that the given string is a valid Internet media type name
// based on rules from RFC 2045 section 5.1. For validation purposes the
// rules can be simplified to the following:
//
//	name      := token "/" token
//	token     := 1*<any US-ASCII char except SPACE, CTLs, or tspecials>
//	tspecials := "(" / ")" / "<" / ">" / "@" / "," / ";" / ":" /
//	             "\" / <"> / "/" / "[" / "]" / "?" / "="
//
// Exactly one slash must appear, and it must not be the first or last
// character. The empty string is not valid.
func IsValid(name string) bool {
	slash := false
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch <= ' ' || ch >= 127:
			return false
		case ch == '(' || ch == ')' || ch == '<' || ch == '>' || ch == '@' ||
			ch == ',' || ch == ';' || ch == ':' || ch == '\\' || ch == '"' ||
			ch == '[' || ch == ']' || ch == '?' || ch == '=':
			return false
		case ch == '/':
			if slash || i == 0 || i+1 == len(name) {
				return false
			}
			slash = true
		}
	}
	return slash
}
