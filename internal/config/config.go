// Package config loads folio's runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Flags in cmd/folio override these.
type Config struct {
	TypeSpeed    time.Duration `env:"FOLIO_TYPE_SPEED" envDefault:"100ms"`
	DeleteSpeed  time.Duration `env:"FOLIO_DELETE_SPEED" envDefault:"50ms"`
	DelayBetween time.Duration `env:"FOLIO_DELAY_BETWEEN" envDefault:"2s"`
	CloseDelay   time.Duration `env:"FOLIO_CLOSE_DELAY" envDefault:"300ms"`

	ContentDir string `env:"FOLIO_CONTENT_DIR"`
	LogFile    string `env:"FOLIO_LOG_FILE"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`
	AltScreen  bool   `env:"FOLIO_ALT_SCREEN" envDefault:"true"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME" envDefault:"folio"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads an optional dotenv file, then the environment.
// A missing dotenv file is not an error; variables already set win.
func Load(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects non-positive durations.
func (c Config) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"type speed", c.TypeSpeed},
		{"delete speed", c.DeleteSpeed},
		{"delay between", c.DelayBetween},
		{"close delay", c.CloseDelay},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.d)
		}
	}
	return nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
