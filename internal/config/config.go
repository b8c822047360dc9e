// Package config loads efowizard settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/efocats/efowizard/internal/validate"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "efowizard.yaml"

// Config holds runtime settings. Nothing here describes form state.
type Config struct {
	Theme         string `yaml:"theme" env:"EFOWIZARD_THEME"`         // dark, light, auto or ""
	StrictOptions bool   `yaml:"strict_options" env:"EFOWIZARD_STRICT"` // require catalog membership for area/plan
	LogFile       string `yaml:"log_file" env:"EFOWIZARD_LOG_FILE"`
	Verbose       bool   `yaml:"verbose" env:"EFOWIZARD_VERBOSE"`
}

// Warnings reports settings that are valid but probably not what the user
// meant. Call it on the fully merged config: a flag may resolve a warning
// the file alone would raise.
func (c *Config) Warnings() []string {
	var out []string
	if c.LogFile != "" && !c.Verbose {
		out = append(out, "log_file is set but verbose is off; debug entries are dropped")
	}
	return out
}

// Load reads path and applies environment overrides. A missing file is
// an error only when required is true.
func Load(path string, required bool) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		cfg, err = Parse(data)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := applyEnv(cfg, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and schema-checks raw YAML.
func Parse(data []byte) (*Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	r, err := validate.Config(doc)
	if err != nil {
		return nil, err
	}
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid config: %s", strings.Join(r.Errors, "; "))
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// applyEnv overrides cfg from environ, or from the process environment
// when environ is nil. Unset variables leave fields alone.
func applyEnv(cfg *Config, environ map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	switch strings.ToLower(cfg.Theme) {
	case "", "auto", "dark", "light":
		cfg.Theme = strings.ToLower(cfg.Theme)
	default:
		return fmt.Errorf("unknown theme %q (known: dark, light, auto)", cfg.Theme)
	}
	return nil
}
