package primitives

import (
	"sort"

	"github.com/mitchellh/mapstructure"
)

type looseState struct {
	Transitions map[string]string `mapstructure:"transitions"`
}

type looseConfig struct {
	ID      string                `mapstructure:"id"`
	Version string                `mapstructure:"version"`
	Initial string                `mapstructure:"initial"`
	States  map[string]looseState `mapstructure:"states"`
}

// FromMap decodes a loosely typed configuration such as the result of a
// generic JSON or YAML decode:
//
//	map[string]any{
//		"initial": "A",
//		"states": map[string]any{
//			"A": map[string]any{"transitions": map[string]any{"to_b": "B"}},
//			"B": map[string]any{},
//		},
//	}
//
// A Go map carries no key order, so the resulting states are sorted by name.
// Unknown keys and non-string names or targets are rejected. The result is
// not validated.
func FromMap(m map[string]any) (Config, error) {
	if m == nil {
		return Config{}, &ConfigError{Reason: "configuration is required"}
	}

	var lc looseConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &lc,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, &ConfigError{Reason: "cannot build decoder", Err: err}
	}
	if err := dec.Decode(m); err != nil {
		return Config{}, &ConfigError{Reason: "cannot decode", Err: err}
	}

	names := make([]string, 0, len(lc.States))
	for name := range lc.States {
		names = append(names, name)
	}
	sort.Strings(names)

	cfg := Config{ID: lc.ID, Version: lc.Version, Initial: lc.Initial}
	if lc.States != nil {
		cfg.States = make(States, 0, len(names))
	}
	for _, name := range names {
		cfg.States = append(cfg.States, StateConfig{Name: name, Transitions: lc.States[name].Transitions})
	}
	return cfg, nil
}
