package mimekit

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestDetectorDetectBytes(t *testing.T) {
	d, err := NewDetector(DefaultRegistry())
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}

	if got := d.DetectBytes(pngHeader, ""); got == nil || got.Name() != "image/png" {
		t.Errorf("DetectBytes(png header) = %v, want image/png", got)
	}
	if got := d.DetectBytes([]byte("%PDF-1.7"), ""); got == nil || got.Name() != "application/pdf" {
		t.Errorf("DetectBytes(pdf header) = %v, want application/pdf", got)
	}
}

func TestDetectorExtensionFallback(t *testing.T) {
	d, err := NewDetector(DefaultRegistry())
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}

	content := []byte("col1,col2\n1,2\n")
	if got := d.DetectBytes(content, "report.csv"); got == nil || got.Name() != "text/csv" {
		t.Errorf("DetectBytes(csv, report.csv) = %v, want text/csv", got)
	}
	// bare extension hint works too
	if got := d.DetectBytes(content, "csv"); got == nil || got.Name() != "text/csv" {
		t.Errorf("DetectBytes(csv, csv) = %v, want text/csv", got)
	}
}

func TestDetectorFallsBackToOctetStream(t *testing.T) {
	d, err := NewDetector(DefaultRegistry())
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}
	got := d.DetectBytes([]byte("no magic here"), "file.unknownext")
	if got == nil || got.Name() != "application/octet-stream" {
		t.Errorf("DetectBytes(unknown) = %v, want application/octet-stream", got)
	}
}

func TestDetectorAcceptTypes(t *testing.T) {
	d, err := NewDetector(DefaultRegistry(), WithAcceptTypes("image/*"))
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}

	if got := d.DetectBytes(pngHeader, ""); got == nil || got.Name() != "image/png" {
		t.Errorf("DetectBytes(png) = %v, want image/png", got)
	}
	// pdf is filtered out, and so is the octet-stream fallback
	if got := d.DetectBytes([]byte("%PDF-1.7"), ""); got != nil {
		t.Errorf("DetectBytes(pdf) = %v, want nil under image/* filter", got)
	}
}

func TestDetectorBadAcceptPattern(t *testing.T) {
	if _, err := NewDetector(DefaultRegistry(), WithAcceptTypes("image/[")); err == nil {
		t.Fatal("NewDetector(bad pattern) error = nil, want error")
	}
}

func TestDetectorDetectReader(t *testing.T) {
	d, err := NewDetector(DefaultRegistry())
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}

	got, err := d.Detect(bytes.NewReader(pngHeader), "")
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if got == nil || got.Name() != "image/png" {
		t.Errorf("Detect(png reader) = %v, want image/png", got)
	}

	// short streams are fine
	got, err = d.Detect(strings.NewReader("hi"), "note.md")
	if err != nil {
		t.Fatalf("Detect(short) error = %v", err)
	}
	if got == nil || got.Name() != "text/markdown" {
		t.Errorf("Detect(short, note.md) = %v, want text/markdown", got)
	}
}

func TestDetectorDetectStreamRunsPurifiers(t *testing.T) {
	var order []string
	first := PurifierFunc(func(stream io.ReadSeeker) error {
		order = append(order, "first")
		// purifiers may consume the stream; the detector rewinds
		_, err := io.Copy(io.Discard, stream)
		return err
	})
	second := PurifierFunc(func(stream io.ReadSeeker) error {
		order = append(order, "second")
		return nil
	})

	d, err := NewDetector(DefaultRegistry(), WithPurifiers(first, second))
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}

	rs := bytes.NewReader(pngHeader)
	got, err := d.DetectStream(rs, "")
	if err != nil {
		t.Fatalf("DetectStream() error = %v", err)
	}
	if got == nil || got.Name() != "image/png" {
		t.Errorf("DetectStream() = %v, want image/png", got)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("purifier order = %v, want [first second]", order)
	}
	// stream is left at the start
	if pos, _ := rs.Seek(0, io.SeekCurrent); pos != 0 {
		t.Errorf("stream position after DetectStream = %d, want 0", pos)
	}
}

func TestDetectorDetectStreamPurifierError(t *testing.T) {
	failing := PurifierFunc(func(stream io.ReadSeeker) error {
		return io.ErrUnexpectedEOF
	})
	d, err := NewDetector(DefaultRegistry(), WithPurifiers(failing))
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}
	if _, err := d.DetectStream(bytes.NewReader(pngHeader), ""); err == nil {
		t.Fatal("DetectStream() error = nil, want purifier error")
	}
}

func TestDetectorDetectXML(t *testing.T) {
	d, err := NewDetector(DefaultRegistry())
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}
	got := d.DetectXML("http://www.w3.org/2000/svg", "svg")
	if got == nil || got.Name() != "image/svg+xml" {
		t.Errorf("DetectXML(svg) = %v, want image/svg+xml", got)
	}
	if got := d.DetectXML("urn:nobody", "nothing"); got != nil {
		t.Errorf("DetectXML(unknown) = %v, want nil", got)
	}
}

func TestNewDetectorValidation(t *testing.T) {
	if _, err := NewDetector(nil); err == nil {
		t.Fatal("NewDetector(nil) error = nil, want error")
	}
	if _, err := NewDetector(DefaultRegistry(), WithMaxReadBytes(0)); err == nil {
		t.Fatal("WithMaxReadBytes(0) accepted, want error")
	}

	// the cap never drops below what the registry's magics need
	d, err := NewDetector(DefaultRegistry(), WithMaxReadBytes(16))
	if err != nil {
		t.Fatalf("NewDetector() error = %v", err)
	}
	if d.maxRead < DefaultRegistry().MinLength() {
		t.Errorf("maxRead = %d, want >= %d", d.maxRead, DefaultRegistry().MinLength())
	}
}
