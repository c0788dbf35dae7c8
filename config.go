package fsmx

import (
	"github.com/comalice/fsmx/internal/loader"
	"github.com/comalice/fsmx/internal/primitives"
)

// Configuration types. States is ordered; the order is the one States("")
// reports.
type (
	Config      = primitives.Config
	StateConfig = primitives.StateConfig
	States      = primitives.States
)

// NewStateConfig creates a state definition for use in a Config literal.
func NewStateConfig(name string) *StateConfig {
	return primitives.NewStateConfig(name)
}

// LoadConfig reads a YAML (.yaml, .yml) or JSON (.json) config file. State
// order follows the document. The result is not validated; New does that.
func LoadConfig(path string) (Config, error) {
	return loader.Load(path)
}

// ParseConfig decodes a config document; format is "yaml", "yml" or "json".
func ParseConfig(data []byte, format string) (Config, error) {
	f, err := loader.ParseFormat(format)
	if err != nil {
		return Config{}, &ConfigError{Reason: "cannot parse", Err: err}
	}
	return loader.Parse(data, f)
}

// ConfigFromMap decodes a loosely typed config value. States are ordered by
// name since a map carries no order.
func ConfigFromMap(m map[string]any) (Config, error) {
	return primitives.FromMap(m)
}

// Load reads the config file at path and builds a Machine from it.
func Load(path string, opts ...Option) (*Machine, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// NewFromMap builds a Machine from a loosely typed config value.
func NewFromMap(m map[string]any, opts ...Option) (*Machine, error) {
	cfg, err := ConfigFromMap(m)
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}
