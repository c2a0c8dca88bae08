package mimekit

import "io"

// Purifier cleans a resettable byte stream before MIME detection runs on
// it. Implementations may consume the stream while cleansing; callers
// (the Detector here, or any external detection pipeline) rewind the
// stream to the start afterwards so detection re-reads cleansed content.
//
// The registry and the MimeType entries never call a Purifier themselves.
type Purifier interface {
	Purify(stream io.ReadSeeker) error
}

// PurifierFunc adapts a plain function to the Purifier interface.
type PurifierFunc func(stream io.ReadSeeker) error

// Purify implements Purifier.
func (f PurifierFunc) Purify(stream io.ReadSeeker) error {
	return f(stream)
}
