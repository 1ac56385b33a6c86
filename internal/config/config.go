// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Timeline TimelineConfig `toml:"timeline"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// TimelineConfig holds the visible daily axis settings.
type TimelineConfig struct {
	DayStart string  `toml:"day_start"` // e.g., "06:30"
	DayEnd   string  `toml:"day_end"`   // e.g., "24:00"
	MinScale float64 `toml:"min_scale"` // minimum rows per hour
	MaxScale float64 `toml:"max_scale"` // maximum rows per hour
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			DayStart: "06:30",
			DayEnd:   "24:00",
			MinScale: 2,
			MaxScale: 8,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tourboard.db"
	}
	return filepath.Join(home, ".local", "share", "tourboard", "tourboard.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "tourboard", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Expand paths
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TOURBOARD_DAY_START"); v != "" {
		cfg.Timeline.DayStart = v
	}
	if v := os.Getenv("TOURBOARD_DAY_END"); v != "" {
		cfg.Timeline.DayEnd = v
	}
	if v := os.Getenv("TOURBOARD_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TOURBOARD_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validateTime(c.Timeline.DayStart, "day_start"); err != nil {
		return err
	}
	if err := validateTime(c.Timeline.DayEnd, "day_end"); err != nil {
		return err
	}
	if c.Timeline.DayStart >= c.Timeline.DayEnd {
		return errors.New("day_start must be before day_end")
	}
	if c.Timeline.MinScale <= 0 {
		return errors.New("min_scale must be positive")
	}
	if c.Timeline.MaxScale < c.Timeline.MinScale {
		return errors.New("max_scale must not be below min_scale")
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// validateTime checks if a time string is in HH:MM format. "24:00" is
// accepted as the end-of-day bound.
func validateTime(t, field string) error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	hour := t[0:2]
	min := t[3:5]
	if !isDigits(hour) || !isDigits(min) {
		return fmt.Errorf("%s must be in HH:MM format, got %q", field, t)
	}
	if t > "24:00" {
		return fmt.Errorf("%s is out of range, got %q", field, t)
	}
	return nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
