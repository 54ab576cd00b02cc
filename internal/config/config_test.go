package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gerunddev/wordcraft/internal/goals"
)

// useConfigPath points ConfigPath at path for the duration of the test
func useConfigPath(t *testing.T, path string) {
	t.Helper()
	originalConfigPath := ConfigPath
	ConfigPath = func() string {
		return path
	}
	t.Cleanup(func() {
		ConfigPath = originalConfigPath
	})
}

func validConfig() *Config {
	return &Config{
		LogFile:  "/tmp/test.log",
		LogLevel: "info",
		Interval: 2 * time.Second,
		Goal:     goals.Goal{Type: goals.Minimum, Target: 1000},
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogFile == "" {
		t.Error("Expected LogFile to be set")
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("Expected Interval to be 2s, got %v", cfg.Interval)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("Expected 2 default extensions, got %v", cfg.Extensions)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid config", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty log_file", mutate: func(c *Config) { c.LogFile = "" }, wantErr: true},
		{name: "zero interval", mutate: func(c *Config) { c.Interval = 0 }, wantErr: true},
		{name: "negative interval", mutate: func(c *Config) { c.Interval = -5 * time.Second }, wantErr: true},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "chatty" }, wantErr: true},
		{name: "negative goal", mutate: func(c *Config) { c.Goal.Target = -1 }, wantErr: true},
		{name: "unknown goal type", mutate: func(c *Config) { c.Goal.Type = "exact" }, wantErr: true},
		{name: "extension without dot", mutate: func(c *Config) { c.Extensions = []string{"md"} }, wantErr: true},
		{name: "bad exclude pattern", mutate: func(c *Config) { c.ExcludePatterns = []string{"[unclosed"} }, wantErr: true},
		{name: "good exclude pattern", mutate: func(c *Config) { c.ExcludePatterns = []string{"*.draft.md"} }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	testConfigPath := filepath.Join(t.TempDir(), "config.json")
	useConfigPath(t, testConfigPath)

	testCfg := validConfig()
	testCfg.Interval = 45 * time.Second
	testCfg.Goal = goals.Goal{Type: goals.Approximate, Target: 80000}
	testCfg.ExcludePatterns = []string{"notes/*"}

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(testConfigPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loadedCfg.Interval != testCfg.Interval {
		t.Errorf("Interval mismatch: got %v, want %v", loadedCfg.Interval, testCfg.Interval)
	}
	if loadedCfg.Goal != testCfg.Goal {
		t.Errorf("Goal mismatch: got %+v, want %+v", loadedCfg.Goal, testCfg.Goal)
	}
	if len(loadedCfg.ExcludePatterns) != 1 || loadedCfg.ExcludePatterns[0] != "notes/*" {
		t.Errorf("ExcludePatterns mismatch: got %v", loadedCfg.ExcludePatterns)
	}
	if len(loadedCfg.Extensions) != 2 {
		t.Errorf("Expected default extensions after load, got %v", loadedCfg.Extensions)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	useConfigPath(t, filepath.Join(t.TempDir(), "nonexistent.json"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() should not error on missing file: %v", err)
	}
	if cfg.Interval != 2*time.Second {
		t.Errorf("Expected default interval 2s, got %v", cfg.Interval)
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "not json", content: "{"},
		{name: "bad interval", content: `{"log_file": "/tmp/x.log", "interval": "soon"}`},
		{name: "bad goal type", content: `{"log_file": "/tmp/x.log", "interval": "1s", "goal_type": "exact"}`},
		{name: "missing log file", content: `{"interval": "1s"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			useConfigPath(t, path)

			if _, err := Load(); err == nil {
				t.Error("Expected Load() to fail")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	homeDir, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "tilde expansion", input: "~/test", expected: filepath.Join(homeDir, "test")},
		{name: "tilde only", input: "~", expected: homeDir},
		{name: "absolute path", input: "/tmp/test", expected: "/tmp/test"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if err != nil {
				t.Fatalf("expandPath() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestConfigPathsExpanded(t *testing.T) {
	useConfigPath(t, filepath.Join(t.TempDir(), "config.json"))

	testCfg := validConfig()
	testCfg.LogFile = "~/wordcraft.log"

	if err := testCfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if loadedCfg.LogFile[0] == '~' {
		t.Error("LogFile was not expanded")
	}
}

func TestHasExtension(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.HasExtension("book/ch1.md") {
		t.Error("Expected .md to match")
	}
	if !cfg.HasExtension("book/CH2.MARKDOWN") {
		t.Error("Expected extension match to ignore case")
	}
	if cfg.HasExtension("book/cover.png") {
		t.Error("Did not expect .png to match")
	}
}
