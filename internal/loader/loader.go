// Package loader reads and writes machine configuration documents.
// The codec is chosen by file extension: .yaml/.yml or .json.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/fsmx/internal/primitives"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", &primitives.ConfigError{Reason: fmt.Sprintf("unsupported config extension %q (want .yaml, .yml or .json)", filepath.Ext(path))}
}

// ParseFormat converts a format name such as "yml" or "JSON".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown format %q", name)
}

// Load reads the config at path. The result is decoded but not validated.
func Load(path string) (primitives.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return primitives.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return primitives.Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return primitives.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a document. Unknown top-level fields are rejected.
func Parse(data []byte, format Format) (primitives.Config, error) {
	var cfg primitives.Config
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			if errors.Is(err, io.EOF) {
				return primitives.Config{}, &primitives.ConfigError{Reason: "document is empty"}
			}
			return primitives.Config{}, &primitives.ConfigError{Reason: "cannot parse yaml", Err: err}
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			if errors.Is(err, io.EOF) {
				return primitives.Config{}, &primitives.ConfigError{Reason: "document is empty"}
			}
			return primitives.Config{}, &primitives.ConfigError{Reason: "cannot parse json", Err: err}
		}
	default:
		return primitives.Config{}, fmt.Errorf("unknown format %q", format)
	}
	return cfg, nil
}

// Encode renders cfg in the given format, keeping declared state order.
func Encode(cfg primitives.Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// Save writes cfg to path in the format implied by its extension.
func Save(path string, cfg primitives.Config) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(cfg, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
