package mimekit

import (
	"os"
	"path/filepath"
	"testing"
)

const exampleDefinitions = `
[[types]]
name = "application/x-example"
description = "Example Data"
acronym = "EXM"
uti = "com.example.data"
aliases = ["application/x-exm"]
extensions = ["exm", "example"]
links = ["https://example.com/spec"]

[[types.magic]]
offset = 0
value = "EXMP"

[[types.magic]]
offset = 4
offset_end = 8
hex = "cafebabe"

[[types.root_xml]]
namespace = "urn:example"
local_name = "example"
`

func TestParseDefinitions(t *testing.T) {
	defs, err := ParseDefinitions(exampleDefinitions)
	if err != nil {
		t.Fatalf("ParseDefinitions() error = %v", err)
	}
	if len(defs.Types) != 1 {
		t.Fatalf("parsed %d types, want 1", len(defs.Types))
	}
	def := defs.Types[0]
	if def.Name != "application/x-example" {
		t.Errorf("Name = %q, want application/x-example", def.Name)
	}
	if len(def.Magic) != 2 || len(def.RootXML) != 1 {
		t.Errorf("got %d magics and %d root_xml, want 2 and 1", len(def.Magic), len(def.RootXML))
	}
}

func TestApplyDefinitions(t *testing.T) {
	defs, err := ParseDefinitions(exampleDefinitions)
	if err != nil {
		t.Fatalf("ParseDefinitions() error = %v", err)
	}
	b := NewRegistryBuilder()
	if err := ApplyDefinitions(b, defs); err != nil {
		t.Fatalf("ApplyDefinitions() error = %v", err)
	}
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	e, ok := reg.Lookup("application/x-example")
	if !ok {
		t.Fatal("defined type missing from registry")
	}
	if !e.Matches([]byte("EXMP....")) {
		t.Error("literal magic did not match")
	}
	if !e.Matches([]byte{0, 0, 0, 0, 0xCA, 0xFE, 0xBA, 0xBE}) {
		t.Error("hex magic did not match at window start")
	}
	if !e.MatchesXML("urn:example", "example") {
		t.Error("root_xml association did not match")
	}
	if _, ok := reg.Lookup("application/x-exm"); !ok {
		t.Error("alias from definitions missing")
	}
	if got := e.Extension(); got != "exm" {
		t.Errorf("Extension() = %q, want exm", got)
	}
}

func TestLoadDefinitionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom-types.toml")
	if err := os.WriteFile(path, []byte(exampleDefinitions), 0o644); err != nil {
		t.Fatal(err)
	}

	b := DefaultRegistryBuilder()
	if err := LoadDefinitions(b, path); err != nil {
		t.Fatalf("LoadDefinitions() error = %v", err)
	}
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// custom type layered over the built-ins
	if _, ok := reg.Lookup("application/x-example"); !ok {
		t.Error("custom type missing")
	}
	if _, ok := reg.Lookup("image/png"); !ok {
		t.Error("built-in type missing")
	}
}

func TestLoadDefinitionsMissingFile(t *testing.T) {
	b := NewRegistryBuilder()
	if err := LoadDefinitions(b, filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("LoadDefinitions(missing) error = nil, want error")
	}
}

func TestMagicDefinitionPattern(t *testing.T) {
	tests := []struct {
		name    string
		def     MagicDefinition
		want    string
		wantErr bool
	}{
		{name: "literal", def: MagicDefinition{Value: "EXMP"}, want: "EXMP"},
		{name: "hex", def: MagicDefinition{Hex: "504b0304"}, want: "PK\x03\x04"},
		{name: "both set", def: MagicDefinition{Value: "x", Hex: "78"}, wantErr: true},
		{name: "neither set", def: MagicDefinition{}, wantErr: true},
		{name: "bad hex", def: MagicDefinition{Hex: "zz"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.def.pattern()
			if tt.wantErr {
				if err == nil {
					t.Fatal("pattern() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("pattern() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("pattern() = %q, want %q", got, tt.want)
			}
		})
	}
}
