package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/gerunddev/wordcraft/internal/goals"
)

// Config represents the wordcraft configuration
type Config struct {
	LogFile         string        `json:"log_file"`
	LogLevel        string        `json:"log_level"`
	Interval        time.Duration `json:"-"` // Custom JSON handling below
	Goal            goals.Goal    `json:"-"`
	Extensions      []string      `json:"extensions,omitempty"`
	ExcludePatterns []string      `json:"exclude_patterns,omitempty"`
}

// fileConfig is the on-disk shape, durations and goals as plain strings/ints
type fileConfig struct {
	LogFile         string   `json:"log_file"`
	LogLevel        string   `json:"log_level,omitempty"`
	Interval        string   `json:"interval"`
	Goal            int      `json:"goal,omitempty"`
	GoalType        string   `json:"goal_type,omitempty"`
	Extensions      []string `json:"extensions,omitempty"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogFile:         filepath.Join(os.TempDir(), "wordcraft.log"),
		LogLevel:        "info",
		Interval:        2 * time.Second,
		Goal:            goals.Goal{Type: goals.Minimum},
		Extensions:      []string{".md", ".markdown"},
		ExcludePatterns: []string{}, // No exclusions by default
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "wordcraft", "config.json")
	}
	return filepath.Join(home, ".config", "wordcraft", "config.json")
}

// StateFilePath returns the path to the word-count history file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "wordcraft", "state.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultConfig()
	cfg := &Config{
		LogFile:         raw.LogFile,
		LogLevel:        raw.LogLevel,
		Interval:        defaults.Interval,
		Extensions:      raw.Extensions,
		ExcludePatterns: raw.ExcludePatterns,
	}

	if raw.Interval != "" {
		interval, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return nil, fmt.Errorf("invalid interval format '%s': %w", raw.Interval, err)
		}
		cfg.Interval = interval
	}

	goalType, err := goals.ParseType(raw.GoalType)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Goal = goals.Goal{Type: goalType, Target: raw.Goal}

	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = defaults.Extensions
	}
	if cfg.ExcludePatterns == nil {
		cfg.ExcludePatterns = []string{}
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := fileConfig{
		LogFile:         c.LogFile,
		LogLevel:        c.LogLevel,
		Interval:        c.Interval.String(),
		Goal:            c.Goal.Target,
		GoalType:        string(c.Goal.Type),
		Extensions:      c.Extensions,
		ExcludePatterns: c.ExcludePatterns,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}
	if err := c.Goal.Valid(); err != nil {
		return err
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid extension '%s': must start with '.'", ext)
		}
	}
	for _, pattern := range c.ExcludePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern '%s': %w", pattern, err)
		}
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	var err error

	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// HasExtension reports whether path has one of the configured extensions
func (c *Config) HasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range c.Extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
