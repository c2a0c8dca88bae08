package mimekit

import "bytes"

// Magic is an opaque byte-pattern predicate used to recognize content by
// its bytes. Implementations decide for themselves whether the buffer is
// long enough; a too-short buffer is simply no match.
type Magic interface {
	Eval(data []byte) bool
}

// MagicFunc adapts a plain function to the Magic interface, for callers
// with their own matching engines.
type MagicFunc func(data []byte) bool

// Eval implements Magic.
func (f MagicFunc) Eval(data []byte) bool {
	return f(data)
}

// Signature is a byte-pattern magic: the pattern must appear at Offset,
// or anywhere in the window [Offset, OffsetEnd] when OffsetEnd is set.
type Signature struct {
	// Offset from the start of the buffer.
	Offset int

	// OffsetEnd is the last offset the pattern may start at. Zero means
	// the pattern must sit exactly at Offset.
	OffsetEnd int

	// Pattern is the byte sequence to match.
	Pattern []byte
}

// NewSignature creates a signature matching pattern exactly at offset.
func NewSignature(offset int, pattern []byte) *Signature {
	return &Signature{Offset: offset, Pattern: pattern}
}

// Eval reports whether the pattern appears within the signature's offset
// window. Buffers too short for the pattern never match.
func (s *Signature) Eval(data []byte) bool {
	if len(s.Pattern) == 0 {
		return false
	}
	end := s.OffsetEnd
	if end < s.Offset {
		end = s.Offset
	}
	for off := s.Offset; off <= end; off++ {
		if off < 0 || off+len(s.Pattern) > len(data) {
			return false
		}
		if bytes.Equal(data[off:off+len(s.Pattern)], s.Pattern) {
			return true
		}
	}
	return false
}

// Size returns the pattern length. The registry uses it to rank
// competing matches by specificity.
func (s *Signature) Size() int {
	return len(s.Pattern)
}

// minBufferLength returns how many leading bytes a buffer needs for this
// signature to be evaluable at every offset in its window.
func (s *Signature) minBufferLength() int {
	end := s.OffsetEnd
	if end < s.Offset {
		end = s.Offset
	}
	return end + len(s.Pattern)
}
