package mimekit

import (
	"encoding/hex"
	"fmt"

	"github.com/BurntSushi/toml"
)

// TypeDefinition is one media type in a TOML definitions document.
type TypeDefinition struct {
	Name        string              `toml:"name"`
	Description string              `toml:"description"`
	Acronym     string              `toml:"acronym"`
	UTI         string              `toml:"uti"`
	Aliases     []string            `toml:"aliases"`
	Extensions  []string            `toml:"extensions"`
	Links       []string            `toml:"links"`
	MinLength   int                 `toml:"min_length"`
	Magic       []MagicDefinition   `toml:"magic"`
	RootXML     []RootXMLDefinition `toml:"root_xml"`
}

// MagicDefinition describes a byte-pattern signature. Exactly one of
// Value (a literal string) and Hex (hex-encoded bytes) must be set.
type MagicDefinition struct {
	Offset    int    `toml:"offset"`
	OffsetEnd int    `toml:"offset_end"`
	Value     string `toml:"value"`
	Hex       string `toml:"hex"`
}

// RootXMLDefinition describes an XML root-element association.
type RootXMLDefinition struct {
	Namespace string `toml:"namespace"`
	LocalName string `toml:"local_name"`
}

// DefinitionsFile is the top-level structure of a TOML definitions
// document:
//
//	[[types]]
//	name = "application/x-example"
//	description = "Example Data"
//	extensions = ["example", "exm"]
//	[[types.magic]]
//	offset = 0
//	value = "EXMP"
//	[[types.root_xml]]
//	namespace = "urn:example"
//	local_name = "example"
type DefinitionsFile struct {
	Types []TypeDefinition `toml:"types"`
}

// LoadDefinitions reads a TOML definitions file and applies its types to
// the given builder. Already-registered types are extended, matching the
// builder's create-or-extend semantics.
func LoadDefinitions(b *RegistryBuilder, path string) error {
	defs := &DefinitionsFile{}
	if _, err := toml.DecodeFile(path, defs); err != nil {
		return fmt.Errorf("cannot load definitions %s: %w", path, err)
	}
	return ApplyDefinitions(b, defs)
}

// ParseDefinitions parses a TOML definitions document from a string.
func ParseDefinitions(data string) (*DefinitionsFile, error) {
	defs := &DefinitionsFile{}
	if _, err := toml.Decode(data, defs); err != nil {
		return nil, fmt.Errorf("cannot parse definitions: %w", err)
	}
	return defs, nil
}

// ApplyDefinitions applies every type of a definitions document to the
// builder.
func ApplyDefinitions(b *RegistryBuilder, defs *DefinitionsFile) error {
	for _, def := range defs.Types {
		tb := b.Type(def.Name)
		if def.Description != "" {
			tb.Description(def.Description)
		}
		if def.Acronym != "" {
			tb.Acronym(def.Acronym)
		}
		if def.UTI != "" {
			tb.UTI(def.UTI)
		}
		for _, alias := range def.Aliases {
			tb.Alias(alias)
		}
		tb.Extensions(def.Extensions...)
		for _, link := range def.Links {
			tb.Link(link)
		}
		for _, m := range def.Magic {
			pattern, err := m.pattern()
			if err != nil {
				return fmt.Errorf("%s: %w", def.Name, err)
			}
			end := m.OffsetEnd
			if end < m.Offset {
				end = m.Offset
			}
			tb.SignatureRange(m.Offset, end, pattern)
		}
		for _, rx := range def.RootXML {
			tb.RootXML(rx.Namespace, rx.LocalName)
		}
		if def.MinLength > 0 {
			tb.MinLength(def.MinLength)
		}
	}
	return b.Err()
}

// pattern resolves the literal or hex form of the signature bytes.
func (m MagicDefinition) pattern() ([]byte, error) {
	switch {
	case m.Value != "" && m.Hex != "":
		return nil, fmt.Errorf("%w: magic has both value and hex", ErrInvalidArgument)
	case m.Value != "":
		return []byte(m.Value), nil
	case m.Hex != "":
		pattern, err := hex.DecodeString(m.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: bad hex magic %q: %v", ErrInvalidArgument, m.Hex, err)
		}
		return pattern, nil
	default:
		return nil, fmt.Errorf("%w: magic has neither value nor hex", ErrInvalidArgument)
	}
}
