// Package config provides YAML configuration for the list demo
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Layout kinds
const (
	LayoutLinear    = "linear"
	LayoutGrid      = "grid"
	LayoutStaggered = "staggered"
)

// SupportedVersions is the range of config schema versions this build reads
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// ErrUnsupportedVersion is returned for config files outside SupportedVersions
var ErrUnsupportedVersion = errors.New("unsupported config version")

// Config represents the demo configuration
type Config struct {
	Version     string            `yaml:"version"`
	Layout      LayoutConfig      `yaml:"layout"`
	Decorations DecorationsConfig `yaml:"decorations"`
	Data        DataConfig        `yaml:"data"`
	Log         LogConfig         `yaml:"log"`
}

// LayoutConfig selects the list layout
type LayoutConfig struct {
	Kind      string `yaml:"kind"`      // "linear", "grid" or "staggered"
	SpanCount int    `yaml:"spanCount"` // columns for grid and staggered
	Height    int    `yaml:"height"`    // viewport lines, 0 = fill the terminal
}

// DecorationsConfig holds the decoration texts. An empty string means the
// decoration is not set.
type DecorationsConfig struct {
	Header string `yaml:"header"`
	Footer string `yaml:"footer"`
	Empty  string `yaml:"empty"`
}

// DataConfig controls where rows come from
type DataConfig struct {
	File   string `yaml:"file"`   // newline-delimited items, watched for changes
	Sample int    `yaml:"sample"` // generated rows when File is empty
}

// LogConfig controls the log file
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from file with priority:
// 1. Project-level: .slotlist/config.yaml
// 2. Global: ~/.slotlist/config.yaml
// 3. Default: built-in defaults
func Load(projectDir string) (*Config, error) {
	return LoadWithPlatform(projectDir, DefaultPlatform)
}

// LoadWithPlatform allows injecting a custom platform provider for testing
func LoadWithPlatform(projectDir string, platform PlatformProvider) (*Config, error) {
	if projectConfig := ProjectConfigPath(projectDir); platform.IsFile(projectConfig) {
		return LoadFile(projectConfig)
	}

	if globalConfig := GlobalConfigPathWithPlatform(platform); globalConfig != "" && platform.IsFile(globalConfig) {
		return LoadFile(globalConfig)
	}

	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := checkVersion(cfg.Version); err != nil {
		return nil, err
	}

	cfg.normalize()
	return cfg, nil
}

// checkVersion rejects schema versions outside SupportedVersions
func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrUnsupportedVersion, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (want %s)", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

// normalize replaces invalid values with defaults
func (c *Config) normalize() {
	switch c.Layout.Kind {
	case LayoutLinear, LayoutGrid, LayoutStaggered:
	default:
		c.Layout.Kind = LayoutLinear
	}
	if c.Layout.SpanCount < 1 {
		c.Layout.SpanCount = 2
	}
	if c.Layout.Height < 0 {
		c.Layout.Height = 0
	}
	if c.Data.Sample < 0 {
		c.Data.Sample = 0
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0.0",
		Layout: LayoutConfig{
			Kind:      LayoutLinear,
			SpanCount: 2,
			Height:    0,
		},
		Decorations: DecorationsConfig{
			Header: "Header",
			Footer: "",
			Empty:  "No items",
		},
		Data: DataConfig{
			File:   "",
			Sample: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// HasFile reports whether rows come from an items file
func (c *Config) HasFile() bool {
	return c.Data.File != ""
}
