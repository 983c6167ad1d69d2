// Package config provides configuration management for dingoc's two
// passes: simplify toggles for the CFG simplifier, and reporting
// toggles for the import resolver.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the complete dingoc configuration.
type Config struct {
	Simplify SimplifyConfig `toml:"simplify"`
	Resolve  ResolveConfig  `toml:"resolve"`
}

// SimplifyConfig controls the CFG simplifier pass.
type SimplifyConfig struct {
	// Enabled controls whether `dingoc simplify` runs the pass at all,
	// or just echoes the parsed function back unchanged.
	Enabled bool `toml:"enabled"`

	// Label is the pass's disambiguator, passed to cfg.NewSimplifyCfg.
	// A host pipeline scheduling the pass more than once uses it to tell
	// the runs apart in its dumps.
	Label string `toml:"label"`
}

// ResolveConfig controls the import resolver's diagnostic reporting
// beyond the hard conflict errors it always produces.
type ResolveConfig struct {
	// ReportUnusedImports opts into Resolver.UnusedImports() reporting
	// after a successful resolve.
	ReportUnusedImports bool `toml:"report_unused_imports"`

	// ReportUnusedExternCrates opts into Resolver.UnusedExternCrates()
	// reporting after a successful resolve.
	ReportUnusedExternCrates bool `toml:"report_unused_extern_crates"`
}

// DefaultConfig returns dingoc's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Simplify: SimplifyConfig{
			Enabled: true,
			Label:   "default",
		},
		Resolve: ResolveConfig{
			ReportUnusedImports:      false,
			ReportUnusedExternCrates: false,
		},
	}
}

// Load loads configuration from multiple sources with precedence:
//  1. CLI flags (highest priority) - passed as overrides
//  2. Project dingoc.toml (current directory)
//  3. User config (~/.dingoc/config.toml)
//  4. Built-in defaults (lowest priority)
func Load(overrides *Config) (*Config, error) {
	cfg := DefaultConfig()

	userConfigPath := filepath.Join(os.Getenv("HOME"), ".dingoc", "config.toml")
	if err := loadConfigFile(userConfigPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	projectConfigPath := "dingoc.toml"
	if err := loadConfigFile(projectConfigPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load project config: %w", err)
	}

	if overrides != nil {
		if overrides.Simplify.Label != "" {
			cfg.Simplify.Label = overrides.Simplify.Label
		}
		if overrides.Resolve.ReportUnusedImports {
			cfg.Resolve.ReportUnusedImports = true
		}
		if overrides.Resolve.ReportUnusedExternCrates {
			cfg.Resolve.ReportUnusedExternCrates = true
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadConfigFile loads a TOML configuration file into cfg. A missing
// file is not an error — callers fall back to whatever cfg already
// held.
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Simplify.Label == "" {
		return fmt.Errorf("simplify.label must not be empty")
	}
	return nil
}
