package mimekit

import (
	"fmt"
	"net/url"
	"strings"
)

// RegistryBuilder provides a fluent API for assembling a Registry. It is
// the only path to the mutators of a MimeType entry, so once Build has
// produced a Registry the entries are immutable by construction.
//
// The builder is not safe for concurrent use; registry construction is a
// single-threaded build phase.
type RegistryBuilder struct {
	types  []*MimeType
	byName map[string]*MimeType
	err    error
}

// NewRegistryBuilder creates an empty registry builder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{
		byName: make(map[string]*MimeType),
	}
}

// Type returns a builder for the entry registered under the given
// canonical name, creating the entry if it does not exist yet. The name
// must be a valid type/subtype token pair; an invalid name poisons the
// builder and surfaces from Build.
func (b *RegistryBuilder) Type(name string) *TypeBuilder {
	if b.err != nil {
		return &TypeBuilder{b: b}
	}
	mediaType, err := NewMediaType(name)
	if err != nil {
		b.err = err
		return &TypeBuilder{b: b}
	}
	if existing, ok := b.byName[mediaType.String()]; ok {
		return &TypeBuilder{b: b, t: existing}
	}
	t, err := newMimeType(mediaType)
	if err != nil {
		b.err = err
		return &TypeBuilder{b: b}
	}
	b.types = append(b.types, t)
	b.byName[mediaType.String()] = t
	return &TypeBuilder{b: b, t: t}
}

// Err returns the first error recorded by the builder, if any.
func (b *RegistryBuilder) Err() error {
	return b.err
}

// Build freezes the assembled entries into a read-only Registry.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	reg := &Registry{
		types:  b.types,
		byName: b.byName,
		byExt:  make(map[string][]*MimeType),
	}
	for _, t := range b.types {
		for _, ext := range t.extensions {
			reg.byExt[ext] = append(reg.byExt[ext], t)
		}
		if t.HasMagic() {
			reg.magicTypes = append(reg.magicTypes, t)
		}
		if t.HasRootXML() {
			reg.xmlTypes = append(reg.xmlTypes, t)
		}
		if t.minLength > reg.minLength {
			reg.minLength = t.minLength
		}
	}
	return reg, nil
}

// TypeBuilder configures a single MimeType entry. All methods return the
// builder for chaining; errors are recorded on the parent RegistryBuilder
// and surface from Build.
type TypeBuilder struct {
	b *RegistryBuilder
	t *MimeType
}

// Extensions adds known file extensions in order of preference, best
// first. Leading dots are stripped and duplicates are ignored.
func (tb *TypeBuilder) Extensions(exts ...string) *TypeBuilder {
	if tb.t == nil {
		return tb
	}
	for _, ext := range exts {
		tb.t.addExtension(normalizeExtension(ext))
	}
	return tb
}

// Signature adds a byte-pattern magic anchored exactly at offset.
func (tb *TypeBuilder) Signature(offset int, pattern []byte) *TypeBuilder {
	return tb.SignatureRange(offset, offset, pattern)
}

// SignatureRange adds a byte-pattern magic that may start anywhere in
// [offset, offsetEnd].
func (tb *TypeBuilder) SignatureRange(offset, offsetEnd int, pattern []byte) *TypeBuilder {
	if tb.t == nil {
		return tb
	}
	if tb.b.err == nil && (offset < 0 || offsetEnd < offset || len(pattern) == 0) {
		tb.b.err = fmt.Errorf("%w: bad signature for %s (offset %d..%d, %d pattern bytes)",
			ErrInvalidArgument, tb.t.Name(), offset, offsetEnd, len(pattern))
		return tb
	}
	sig := &Signature{Offset: offset, OffsetEnd: offsetEnd, Pattern: pattern}
	tb.t.addMagic(sig)
	tb.t.setMinLength(sig.minBufferLength())
	return tb
}

// Magic adds an externally supplied magic predicate. Nil magics are
// ignored.
func (tb *TypeBuilder) Magic(m Magic) *TypeBuilder {
	if tb.t != nil {
		tb.t.addMagic(m)
	}
	return tb
}

// MinLength raises the number of bytes this entry's magics need to see.
// Use it alongside Magic, whose buffer needs the registry cannot inspect.
func (tb *TypeBuilder) MinLength(n int) *TypeBuilder {
	if tb.t != nil {
		tb.t.setMinLength(n)
	}
	return tb
}

// RootXML associates an XML root element with this entry. At least one of
// namespaceURI and localName must be non-empty.
func (tb *TypeBuilder) RootXML(namespaceURI, localName string) *TypeBuilder {
	if tb.t == nil {
		return tb
	}
	if err := tb.t.addRootXML(namespaceURI, localName); err != nil && tb.b.err == nil {
		tb.b.err = fmt.Errorf("%s: %w", tb.t.Name(), err)
	}
	return tb
}

// Description sets the human-readable description.
func (tb *TypeBuilder) Description(description string) *TypeBuilder {
	if tb.t != nil {
		tb.t.setDescription(description)
	}
	return tb
}

// Acronym sets the acronym for this media type.
func (tb *TypeBuilder) Acronym(acronym string) *TypeBuilder {
	if tb.t != nil {
		tb.t.setAcronym(acronym)
	}
	return tb
}

// UTI sets the Apple Uniform Type Identifier.
func (tb *TypeBuilder) UTI(uti string) *TypeBuilder {
	if tb.t != nil {
		tb.t.setUniformTypeIdentifier(uti)
	}
	return tb
}

// Link adds a documentation link. The raw URL must parse.
func (tb *TypeBuilder) Link(rawURL string) *TypeBuilder {
	if tb.t == nil {
		return tb
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		if tb.b.err == nil {
			tb.b.err = fmt.Errorf("%w: bad link for %s: %v", ErrInvalidArgument, tb.t.Name(), err)
		}
		return tb
	}
	if err := tb.t.addLink(u); err != nil && tb.b.err == nil {
		tb.b.err = err
	}
	return tb
}

// Alias registers an alternate name resolving to this entry. The alias
// must be a valid name and must not collide with another entry.
func (tb *TypeBuilder) Alias(name string) *TypeBuilder {
	if tb.t == nil {
		return tb
	}
	alias := strings.ToLower(strings.TrimSpace(name))
	if !IsValid(alias) {
		if tb.b.err == nil {
			tb.b.err = fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
		return tb
	}
	if existing, ok := tb.b.byName[alias]; ok && existing != tb.t {
		if tb.b.err == nil {
			tb.b.err = fmt.Errorf("%w: alias %q already registered to %s",
				ErrInvalidArgument, alias, existing.Name())
		}
		return tb
	}
	tb.b.byName[alias] = tb.t
	return tb
}
