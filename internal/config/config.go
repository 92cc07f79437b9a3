// Package config holds the condorcet command configuration, read through
// viper from defaults, an optional YAML file and CONDORCET_* environment
// variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/condorcet/duelgraph"
)

// EnvPrefix is the prefix of environment overrides: vote.method is read
// from CONDORCET_VOTE_METHOD.
const EnvPrefix = "CONDORCET"

// Config represents the complete condorcet configuration
type Config struct {
	Vote    VoteConfig    `mapstructure:"vote"`
	Logging LoggingConfig `mapstructure:"log"`
}

// VoteConfig controls how elections are resolved
type VoteConfig struct {
	// Method is the completion method used when no Condorcet winner exists.
	// Options: "minimax", "ranked-pairs", "schulze", "condorcet", or the
	// short codes "cm", "cp", "cs".
	Method string `mapstructure:"method"`
	// MaxCandidates bounds the accepted candidate count (default: 256)
	MaxCandidates int `mapstructure:"max_candidates"`
	// Trace includes the step-by-step resolution trace in the output
	Trace bool `mapstructure:"trace"`
}

// LoggingConfig controls diagnostic logging
type LoggingConfig struct {
	// Level is the minimum level written: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Format is the record encoding: "text" or "json"
	Format string `mapstructure:"format"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Vote: VoteConfig{
			Method:        "schulze",
			MaxCandidates: duelgraph.DefaultMaxNodes,
			Trace:         false,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	// Vote defaults
	v.SetDefault("vote.method", defaults.Vote.Method)
	v.SetDefault("vote.max_candidates", defaults.Vote.MaxCandidates)
	v.SetDefault("vote.trace", defaults.Vote.Trace)

	// Logging defaults
	v.SetDefault("log.level", defaults.Logging.Level)
	v.SetDefault("log.format", defaults.Logging.Format)
}

// BindEnv makes v read CONDORCET_* environment overrides
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// New returns a viper instance with defaults and environment overrides
// applied. When file is non-empty it is read as the config file; otherwise
// config.yaml is looked up in the working directory and ConfigDir, and a
// missing file is not an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || file != "" {
			return nil, err
		}
	}

	return v, nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "condorcet")
	}
	// Fall back to ~/.config/condorcet
	home, err := os.UserHomeDir()
	if err != nil {
		return ".condorcet"
	}
	return filepath.Join(home, ".config", "condorcet")
}
