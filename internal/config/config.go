// Package config resolves runtime configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UI modes.
const (
	UIMenu = "menu" // numbered prompt loop (default)
	UIList = "list" // full-screen interactive list
)

const defaultFileName = "todos.json"

// Config is resolved once at startup, is immutable afterwards, and is
// threaded through calls rather than held in package state.
type Config struct {
	FilePath string     // storage document location
	UI       string     // UIMenu or UIList
	Theme    string     // classic | neon | mono
	LogLevel slog.Level // stderr log threshold
}

// FromEnv builds a Config from the process environment:
//
//	FILE_PATH   storage file (default todos.json)
//	TUDU_UI     ui mode (default menu)
//	TUDU_THEME  color theme (default classic)
//	TUDU_LOG    slog level (default warn)
func FromEnv() (Config, error) {
	cfg := Config{
		FilePath: envOr("FILE_PATH", defaultFileName),
		UI:       envOr("TUDU_UI", UIMenu),
		Theme:    envOr("TUDU_THEME", "classic"),
		LogLevel: slog.LevelWarn,
	}
	if v := os.Getenv("TUDU_LOG"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("TUDU_LOG: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate validates the resolved configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.FilePath, validation.Required),
		validation.Field(&c.UI, validation.Required, validation.In(UIMenu, UIList)),
		validation.Field(&c.Theme, validation.Required, validation.In("classic", "neon", "mono")),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
