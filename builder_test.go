package mimekit

import "testing"

func TestRegistryBuilderBasics(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("application/x-example").
		Description("Example Data").
		Acronym("EXM").
		UTI("com.example.data").
		Link("https://example.com/spec").
		Extensions("exm", "example", ".exm").
		Signature(0, []byte("EXMP")).
		RootXML("urn:example", "example")

	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	e, ok := reg.Lookup("application/x-example")
	if !ok {
		t.Fatal("Lookup() did not find the registered type")
	}
	if e.Description() != "Example Data" {
		t.Errorf("Description() = %q, want %q", e.Description(), "Example Data")
	}
	if e.Acronym() != "EXM" {
		t.Errorf("Acronym() = %q, want %q", e.Acronym(), "EXM")
	}
	if e.UniformTypeIdentifier() != "com.example.data" {
		t.Errorf("UniformTypeIdentifier() = %q, want %q", e.UniformTypeIdentifier(), "com.example.data")
	}
	if links := e.Links(); len(links) != 1 || links[0].Host != "example.com" {
		t.Errorf("Links() = %v, want one example.com link", links)
	}
	// dot-prefixed duplicate collapses with the bare form
	if exts := e.Extensions(); len(exts) != 2 || exts[0] != "exm" {
		t.Errorf("Extensions() = %v, want [exm example]", exts)
	}
	if !e.Matches([]byte("EXMP....")) {
		t.Error("Matches() = false for registered signature")
	}
	if !e.MatchesXML("urn:example", "example") {
		t.Error("MatchesXML() = false for registered association")
	}
}

func TestRegistryBuilderTypeIsCreateOrExtend(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("a/b").Extensions("one")
	b.Type("a/b").Extensions("two")

	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
	e, _ := reg.Lookup("a/b")
	if exts := e.Extensions(); len(exts) != 2 {
		t.Errorf("Extensions() = %v, want both extensions on one entry", exts)
	}
}

func TestRegistryBuilderInvalidName(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("not a type").Extensions("x")

	if _, err := b.Build(); err == nil {
		t.Fatal("Build() error = nil, want invalid-name error")
	}
}

func TestRegistryBuilderEmptyRootXML(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("a/b").RootXML("", "")

	_, err := b.Build()
	if err == nil {
		t.Fatal("Build() error = nil, want error for empty association")
	}
	if !IsInvalidArgument(err) {
		t.Errorf("IsInvalidArgument(%v) = false, want true", err)
	}
}

func TestRegistryBuilderBadSignature(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("a/b").Signature(0, nil)

	if _, err := b.Build(); err == nil {
		t.Fatal("Build() error = nil, want error for empty pattern")
	}
}

func TestRegistryBuilderAlias(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("application/xml").Alias("text/xml")

	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	canonical, _ := reg.Lookup("application/xml")
	aliased, ok := reg.Lookup("text/xml")
	if !ok {
		t.Fatal("Lookup(alias) did not resolve")
	}
	if aliased != canonical {
		t.Error("alias resolves to a different entry than the canonical name")
	}
}

func TestRegistryBuilderAliasConflict(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("a/b")
	b.Type("a/c").Alias("a/b")

	if _, err := b.Build(); err == nil {
		t.Fatal("Build() error = nil, want alias conflict error")
	}
}

func TestRegistryBuilderErrorPoisons(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("bad name")
	// later calls keep chaining without panicking
	b.Type("a/b").Extensions("ok").Signature(0, []byte("OK"))

	if b.Err() == nil {
		t.Fatal("Err() = nil after invalid type name")
	}
	if _, err := b.Build(); err == nil {
		t.Fatal("Build() error = nil, want first recorded error")
	}
}

func TestBuilderMinLengthFromSignatures(t *testing.T) {
	b := NewRegistryBuilder()
	b.Type("application/x-tar").Signature(257, []byte("ustar"))

	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	e, _ := reg.Lookup("application/x-tar")
	if got := e.MinLength(); got != 262 {
		t.Errorf("MinLength() = %d, want 262", got)
	}
	if got := reg.MinLength(); got != 262 {
		t.Errorf("Registry.MinLength() = %d, want 262", got)
	}
}
