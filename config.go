package mimekit

import (
	"strings"

	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Path to a TOML definitions file layered over the built-in types
	DefinitionsPath string `env:"MIMEKIT_DEFINITIONS_PATH"`

	// Reload the registry when the definitions file changes
	WatchDefinitions bool `env:"MIMEKIT_WATCH_DEFINITIONS,default:false"`

	// Upper bound on the bytes a Detector reads for sniffing
	MaxReadBytes int `env:"MIMEKIT_MAX_READ_BYTES,default:8192"`

	// Accepted type patterns for detection results (comma-separated globs,
	// e.g. "image/*,application/pdf"); empty accepts everything
	AcceptTypes string `env:"MIMEKIT_ACCEPT_TYPES"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AcceptTypeList splits the comma-separated accept patterns.
func (c *Config) AcceptTypeList() []string {
	if c.AcceptTypes == "" {
		return nil
	}
	parts := strings.Split(c.AcceptTypes, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RegistryFromConfig builds a registry from the built-in types, layered
// with the configured definitions file when one is set.
func RegistryFromConfig(cfg *Config) (*Registry, error) {
	if cfg.DefinitionsPath == "" {
		return DefaultRegistryBuilder().Build()
	}
	return loadRegistry(cfg.DefinitionsPath)
}

// DetectorFromConfig builds a Detector over the configured registry with
// the configured read limit and accept patterns.
func DetectorFromConfig(cfg *Config) (*Detector, error) {
	reg, err := RegistryFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	opts := []DetectorOption{WithMaxReadBytes(cfg.MaxReadBytes)}
	if accept := cfg.AcceptTypeList(); len(accept) > 0 {
		opts = append(opts, WithAcceptTypes(accept...))
	}
	return NewDetector(reg, opts...)
}
