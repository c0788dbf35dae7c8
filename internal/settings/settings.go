// Package settings loads the CLI's process settings from the environment,
// optionally seeded from .env files.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/comalice/fsmx/internal/logging"
)

// Settings holds the environment-driven knobs of the fsmx CLI.
//
// Example:
//
//	FSMX_LOG_LEVEL=debug FSMX_STRICT=false fsmx run machine.yaml to_b
type Settings struct {
	LogLevel  string `env:"FSMX_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"FSMX_LOG_FORMAT" envDefault:"text"`
	Strict    bool   `env:"FSMX_STRICT" envDefault:"true"`
}

// Load reads .env files and then the environment. With no files it tries
// ".env" in the working directory and ignores its absence; explicitly named
// files must exist. Variables already set in the environment win over file
// values.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("settings: .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	return Parse()
}

// Parse reads settings from the environment only.
func Parse() (Settings, error) {
	s, err := env.ParseAs[Settings]()
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %w", err)
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return Settings{}, fmt.Errorf("settings: FSMX_LOG_LEVEL: %w", err)
	}
	switch strings.ToLower(s.LogFormat) {
	case "text", "json":
	default:
		return Settings{}, fmt.Errorf("settings: FSMX_LOG_FORMAT: unknown format %q (want text or json)", s.LogFormat)
	}
	return s, nil
}

// Level returns the parsed log level. Parse has already rejected bad names.
func (s Settings) Level() slog.Level {
	level, _ := logging.ParseLevel(s.LogLevel)
	return level
}
