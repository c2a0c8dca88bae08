package mimekit

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/gobwas/glob"
)

// fallbackType is returned when nothing else matches.
const fallbackType = "application/octet-stream"

// Detector sniffs MIME types from content using a frozen Registry. It
// buffers the leading bytes of a stream, runs any configured purifiers,
// collects magic matches, and falls back to extension lookup via a name
// hint. Accept patterns restrict which types a detector may report.
//
// A Detector is immutable after construction and safe for concurrent use
// as long as its purifiers are.
type Detector struct {
	registry  *Registry
	purifiers []Purifier
	accept    []glob.Glob
	maxRead   int
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector) error

// WithPurifiers adds stream purifiers, run in order before sniffing.
func WithPurifiers(purifiers ...Purifier) DetectorOption {
	return func(d *Detector) error {
		d.purifiers = append(d.purifiers, purifiers...)
		return nil
	}
}

// WithAcceptTypes restricts detection results to types whose full name
// matches one of the glob patterns, e.g. "image/*" or "application/pdf".
func WithAcceptTypes(patterns ...string) DetectorOption {
	return func(d *Detector) error {
		for _, p := range patterns {
			g, err := glob.Compile(p, '/')
			if err != nil {
				return fmt.Errorf("%w: bad accept pattern %q: %v", ErrInvalidArgument, p, err)
			}
			d.accept = append(d.accept, g)
		}
		return nil
	}
}

// WithMaxReadBytes caps how many leading bytes Detect reads. The cap is
// never lowered below what the registry's magics need.
func WithMaxReadBytes(n int) DetectorOption {
	return func(d *Detector) error {
		if n <= 0 {
			return fmt.Errorf("%w: max read bytes must be positive", ErrInvalidArgument)
		}
		d.maxRead = n
		return nil
	}
}

// NewDetector creates a Detector over the given registry.
func NewDetector(registry *Registry, opts ...DetectorOption) (*Detector, error) {
	if registry == nil {
		return nil, fmt.Errorf("%w: registry is missing", ErrInvalidArgument)
	}
	d := &Detector{
		registry: registry,
		maxRead:  8192,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.maxRead < registry.MinLength() {
		d.maxRead = registry.MinLength()
	}
	return d, nil
}

// Registry returns the registry this detector sniffs against.
func (d *Detector) Registry() *Registry {
	return d.registry
}

// DetectBytes returns the best accepted match for the given content, or
// nil when nothing matches. nameHint, when non-empty, supplies an
// extension fallback for content without a magic match; it may be a bare
// extension or a full file name.
func (d *Detector) DetectBytes(data []byte, nameHint string) *MimeType {
	for _, t := range d.registry.DetectBytes(data) {
		if d.accepted(t) {
			return t
		}
	}
	if nameHint != "" {
		ext := filepath.Ext(nameHint)
		if ext == "" {
			ext = nameHint
		}
		for _, t := range d.registry.ForExtension(ext) {
			if d.accepted(t) {
				return t
			}
		}
	}
	if t, ok := d.registry.Lookup(fallbackType); ok && d.accepted(t) {
		return t
	}
	return nil
}

// Detect reads the leading bytes from r and returns the best accepted
// match, or nil when nothing matches.
func (d *Detector) Detect(r io.Reader, nameHint string) (*MimeType, error) {
	buf := make([]byte, d.maxRead)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, fmt.Errorf("cannot read content for detection: %w", err)
	}
	return d.DetectBytes(buf[:n], nameHint), nil
}

// DetectStream runs the configured purifiers over the stream, rewinding
// after each so detection re-reads cleansed content from the start, then
// detects on the leading bytes. The stream is left positioned at the
// start.
func (d *Detector) DetectStream(rs io.ReadSeeker, nameHint string) (*MimeType, error) {
	for _, p := range d.purifiers {
		if err := p.Purify(rs); err != nil {
			return nil, fmt.Errorf("purifier failed: %w", err)
		}
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
	}
	t, err := d.Detect(rs, nameHint)
	if err != nil {
		return nil, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return t, nil
}

// DetectXML returns the first accepted entry whose root-XML association
// matches the given root element, or nil.
func (d *Detector) DetectXML(namespaceURI, localName string) *MimeType {
	for _, t := range d.registry.DetectXML(namespaceURI, localName) {
		if d.accepted(t) {
			return t
		}
	}
	return nil
}

func (d *Detector) accepted(t *MimeType) bool {
	if len(d.accept) == 0 {
		return true
	}
	name := t.Name()
	for _, g := range d.accept {
		if g.Match(name) {
			return true
		}
	}
	return false
}
