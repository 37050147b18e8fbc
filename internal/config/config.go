// Package config loads the builder's application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	apperrors "github.com/formcanvas/formcanvas/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Config holds the settings shared by the builder TUI and the CLI
// commands. All fields are optional; zero values fall back to defaults.
type Config struct {
	// LogLevel controls zerolog verbosity.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
	// DataDir is where the session snapshot and the form registry live.
	DataDir string `yaml:"data_dir"`
	// RedisURL, when set, adds a Redis tier in front of the file tiers.
	RedisURL string `yaml:"redis_url" validate:"omitempty,uri"`
	// Confirmations gates destructive TUI actions behind a prompt.
	Confirmations *bool `yaml:"confirmations"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	yes := true
	return Config{
		LogLevel:      "info",
		Confirmations: &yes,
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, "formcanvas", "config.yaml"), nil
}

// Load reads and validates the config file at path. A missing file is
// not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, apperrors.NewParseError(path, 0, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Confirmations == nil {
		yes := true
		cfg.Confirmations = &yes
	}

	if err := configValidator().Struct(cfg); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return cfg, apperrors.NewValidationError(first.Field(),
				fmt.Sprintf("failed %s constraint", first.Tag()), err)
		}
		return cfg, err
	}

	return cfg, nil
}

// ResolveDataDir returns the data directory, defaulting to the user
// config dir.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve data directory: %w", err)
	}
	return filepath.Join(base, "formcanvas"), nil
}

// SessionPath returns the primary session snapshot location.
func (c Config) SessionPath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// RegistryPath returns the saved-form registry location.
func (c Config) RegistryPath() (string, error) {
	dir, err := c.ResolveDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "forms.json"), nil
}

// ConfirmationsEnabled reports whether destructive actions prompt.
func (c Config) ConfirmationsEnabled() bool {
	return c.Confirmations == nil || *c.Confirmations
}

func configValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}
