// SPDX-License-Identifier: MPL-2.0

// Package config loads preflight's application configuration: log
// verbosity, the probe runner mode, and genome-input defaults. These knobs
// affect diagnostics and wiring, never check logic.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"preflight/internal/execx"
	"preflight/internal/genomes"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "preflight"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

// ErrInvalidRunnerMode is returned when the configured runner mode is not
// recognized.
var ErrInvalidRunnerMode = errors.New("invalid runner mode")

type (
	// Config holds the resolved application configuration.
	Config struct {
		// Verbose raises log verbosity to debug level.
		Verbose bool `mapstructure:"verbose"`
		// Quiet lowers log verbosity to error level. Takes precedence over
		// Verbose when both are set.
		Quiet bool `mapstructure:"quiet"`
		// Runner selects how probe commands are executed (bash or virtual).
		Runner execx.Mode `mapstructure:"runner"`
		// GenomeExtension is the default extension for directory scans.
		GenomeExtension string `mapstructure:"genome_extension"`
		// Manifest is the default tool-requirements manifest path.
		Manifest string `mapstructure:"manifest"`
	}

	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
	}
)

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Runner:          execx.ModeBash,
		GenomeExtension: genomes.DefaultExtension,
		Manifest:        "preflight.toml",
	}
}

// ConfigDir returns the preflight configuration directory, following
// $XDG_CONFIG_HOME with a ~/.config fallback.
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Load reads configuration from defaults, an optional config file and
// PREFLIGHT_* environment variables, in increasing precedence.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("quiet", defaults.Quiet)
	v.SetDefault("runner", string(defaults.Runner))
	v.SetDefault("genome_extension", defaults.GenomeExtension)
	v.SetDefault("manifest", defaults.Manifest)

	v.SetEnvPrefix("PREFLIGHT")
	// Explicit binds so Unmarshal sees environment values; AutomaticEnv
	// alone only affects direct Get calls.
	for _, key := range []string{"verbose", "quiet", "runner", "genome_extension", "manifest"} {
		v.MustBindEnv(key)
	}

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFilePath, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		// A missing default config file is fine; anything else is not.
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configured enum values.
func (c *Config) Validate() error {
	if !c.Runner.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRunnerMode, string(c.Runner))
	}
	return nil
}
