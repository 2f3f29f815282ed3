// Package config loads fastparse settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BLAZED-sh/fastparse/pkg/csv"
	"github.com/BLAZED-sh/fastparse/pkg/json"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file format.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	CSV    CSVConfig    `toml:"csv" yaml:"csv"`
	JSON   JSONConfig   `toml:"json" yaml:"json"`
	Stream StreamConfig `toml:"stream" yaml:"stream"`
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Pretty bool   `toml:"pretty" yaml:"pretty"`
}

type CSVConfig struct {
	MaxFields int  `toml:"max_fields" yaml:"max_fields"`
	Strict    bool `toml:"strict" yaml:"strict"`
	Header    bool `toml:"header" yaml:"header"`
}

type JSONConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth"`
}

type StreamConfig struct {
	BufferSize int `toml:"buffer_size" yaml:"buffer_size"`
	MaxRead    int `toml:"max_read" yaml:"max_read"`
	MaxFrame   int `toml:"max_frame" yaml:"max_frame"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path, picking the format from its extension (.toml, .yaml,
// .yml), and fills unset values with defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}
	return Parse(content, format)
}

// Parse decodes content in the given format and applies defaults.
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func detectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported config file extension %q", ext)
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.CSV.MaxFields == 0 {
		c.CSV.MaxFields = csv.MaxFields
	}
	if c.JSON.MaxDepth == 0 {
		c.JSON.MaxDepth = json.DefaultMaxDepth
	}
	if c.Stream.BufferSize == 0 {
		c.Stream.BufferSize = 16384
	}
	if c.Stream.MaxRead == 0 {
		c.Stream.MaxRead = 4096
	}
	if c.Stream.MaxFrame == 0 {
		c.Stream.MaxFrame = 64 << 20
	}
}

// Validate rejects values the scanners cannot honour.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.CSV.MaxFields < 1 || c.CSV.MaxFields > csv.MaxFields {
		return fmt.Errorf("csv.max_fields must be between 1 and %d, got %d", csv.MaxFields, c.CSV.MaxFields)
	}
	if c.JSON.MaxDepth < 0 {
		return fmt.Errorf("json.max_depth must be positive, got %d", c.JSON.MaxDepth)
	}
	if c.Stream.MaxRead < 0 || c.Stream.BufferSize < 0 {
		return fmt.Errorf("stream sizes must be positive")
	}
	return nil
}
