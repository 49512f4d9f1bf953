package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = ".config/ptaas"
	DefaultConfigFile = "config.yaml"
)

// Config is the root CLI configuration structure.
type Config struct {
	Output  OutputSettings  `yaml:"output" json:"output"`
	Decode  DecodeSettings  `yaml:"decode" json:"decode"`
	Logging LoggingSettings `yaml:"logging" json:"logging"`
}

// OutputSettings controls how decoded values are rendered.
type OutputSettings struct {
	Format string `yaml:"format" json:"format"` // "table" or "json"
	Color  bool   `yaml:"color" json:"color"`
}

// DecodeSettings controls decoder behavior.
type DecodeSettings struct {
	// Family is the envelope family assumed when the decode command is
	// given none: "api" (flat-generic), "response" (nested) or "ws".
	Family string `yaml:"family" json:"family"`
	// TolerateUnknownReasons downgrades unknown failure-reason labels
	// from hard decode failures to warnings, for forward compatibility
	// with server-added reasons.
	TolerateUnknownReasons bool `yaml:"tolerateUnknownReasons" json:"tolerateUnknownReasons"`
}

// LoggingSettings controls the file logger.
type LoggingSettings struct {
	Level string `yaml:"level" json:"level"` // zerolog level name
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Output:  OutputSettings{Format: "table", Color: true},
		Decode:  DecodeSettings{Family: "api"},
		Logging: LoggingSettings{Level: "info"},
	}
}

// Load reads configuration from the specified path or the default
// location. An empty path with no default config file present is not an
// error: the defaults apply. Supports both .yaml and .json extensions.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		yamlPath := filepath.Join(home, DefaultConfigDir, "config.yaml")
		jsonPath := filepath.Join(home, DefaultConfigDir, "config.json")

		if _, err := os.Stat(yamlPath); err == nil {
			path = yamlPath
		} else if _, err := os.Stat(jsonPath); err == nil {
			path = jsonPath
		} else {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return LoadFromBytes(data, ext)
}

// LoadFromBytes parses configuration from raw bytes. format should be
// "yaml" or "json". Unset fields fall back to defaults before
// validation.
func LoadFromBytes(data []byte, format string) (*Config, error) {
	cfg := Default()

	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetConfigPath returns the default config file path.
func GetConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultConfigDir, DefaultConfigFile)
}
