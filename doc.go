// Package mimekit models registered media types (MIME types) and the
// evidence used to recognize them: canonical names, quality weightings,
// file extensions, byte-pattern magic signatures, and XML root-element
// associations.
//
// # Core types
//
//   - MediaType: an immutable normalized type name, usable as a map key
//   - MimeType: one registry entry with its extensions, magics, and
//     root-XML associations
//   - Registry: a frozen index of entries by name, alias, and extension
//   - Detector: content sniffing over a registry with purifiers and
//     accept filters
//
// # Quick Start
//
// Parsing and inspecting type strings:
//
//	t, err := mimekit.Parse("application/rdf+xml;q=0.9")
//	t.FullType() // "application/rdf+xml"
//	t.Quality()  // 0.9
//
// Detecting content against the built-in registry:
//
//	detector, err := mimekit.NewDetector(mimekit.DefaultRegistry())
//	t, err := detector.Detect(file, file.Name())
//
// Registering custom types:
//
//	b := mimekit.DefaultRegistryBuilder()
//	b.Type("application/x-example").
//	    Extensions("exm").
//	    Signature(0, []byte("EXMP")).
//	    RootXML("urn:example", "example")
//	registry, err := b.Build()
//
// # Lifecycle
//
// Entries are mutable only through a RegistryBuilder. Build freezes them
// into a Registry whose read path (Lookup, ForExtension, DetectBytes,
// DetectXML) is lock-free and safe for concurrent use.
//
// # Identity
//
// MimeType equality, ordering, and hashing delegate to the media type
// name only; subtype and quality variants produced by Parse collapse to
// one identity. Registries rely on this to key purely on the primary
// name.
package mimekit
