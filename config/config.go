// Package config handles the machconf CLI configuration.
//
// Config is stored at $XDG_CONFIG_HOME/machconf/config.yaml (defaults to
// ~/.config/machconf/config.yaml) and carries the machine-file directory,
// the facet precedence order and the default severity, so the same dotfiles
// checkout works unchanged on every host.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/djbozjr/machconf"
)

// Config holds the CLI's persistent settings. Zero fields fall back to the
// library defaults at resolution time.
type Config struct {
	Directory string   `yaml:"directory,omitempty"`
	Order     []string `yaml:"order,omitempty,flow"`
	Severity  string   `yaml:"severity,omitempty"`
	Verbose   bool     `yaml:"verbose,omitempty"`
}

// Path returns where the config file lives, honoring XDG_CONFIG_HOME before
// falling back to ~/.config.
func Path() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".config", "machconf", "config.yaml")
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "machconf", "config.yaml")
}

// Load reads the config file. A missing file yields a zero Config rather
// than an error, so first runs work without any setup.
func Load() (*Config, error) {
	p := Path()
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", p, err)
	}
	return &cfg, nil
}

// Save writes the config back to Path, creating parent directories as
// needed.
func (c *Config) Save() error {
	p := Path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(p), err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", p, err)
	}
	return nil
}

// MachineDirectory resolves the configured machine-file directory: a leading
// ~ expands to the user's home, and an empty value falls back to the library
// default.
func (c *Config) MachineDirectory() string {
	if c.Directory == "" {
		return machconf.DefaultDirectory()
	}
	return expandPath(c.Directory)
}

// PrecedenceOrder parses the configured facet order, falling back to the
// library default when none is set.
func (c *Config) PrecedenceOrder() ([]machconf.FacetKind, error) {
	order, err := machconf.ParseOrder(c.Order)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return machconf.DefaultOrder, nil
	}
	return order, nil
}

// LoadSeverity parses the configured severity, with the library default for
// an empty value.
func (c *Config) LoadSeverity() (machconf.Severity, error) {
	return machconf.ParseSeverity(c.Severity)
}

// expandPath resolves a leading ~ to the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
