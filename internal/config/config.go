package config

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/hostsim/internal/config/loader"
	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by LoadWithEnv.
const EnvPrefix = "HOSTSIM_"

// DefaultFile is the config file name looked up by the CLI.
const DefaultFile = "hostsim.toml"

// Config holds all simulator settings.
type Config struct {
	Layout   LayoutConfig   `toml:"layout"`
	Encoding EncodingConfig `toml:"encoding"`
	Paths    PathsConfig    `toml:"paths"`
	Logging  LoggingConfig  `toml:"logging"`
}

// LayoutConfig controls the fixed text metrics of the mock views.
type LayoutConfig struct {
	TextWidth    int `toml:"textWidth"`
	TextHeight   int `toml:"textHeight"`
	EditorWidth  int `toml:"editorWidth"`
	EditorHeight int `toml:"editorHeight"`
}

// EncodingConfig controls how documents store text.
type EncodingConfig struct {
	// ANSICharset names the single-byte page used for ANSI documents.
	ANSICharset string `toml:"ansiCharset"`
	// DefaultCodepage is the codepage new documents open with.
	DefaultCodepage string `toml:"defaultCodepage"`
}

// PathsConfig holds directories reported by the host.
type PathsConfig struct {
	PluginConfigDir string `toml:"pluginConfigDir"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			TextWidth:    10,
			TextHeight:   10,
			EditorWidth:  10000,
			EditorHeight: 10000,
		},
		Encoding: EncodingConfig{
			ANSICharset:     codepage.DefaultANSICharset,
			DefaultCodepage: codepage.UTF8.String(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults.
func Load(path string) (*Config, error) {
	return load(loader.NewTOMLLoader(path))
}

// LoadWithEnv reads the TOML file at path, then applies HOSTSIM_*
// environment variables on top.
func LoadWithEnv(path string) (*Config, error) {
	return load(loader.NewTOMLLoader(path), loader.NewEnvLoader(EnvPrefix))
}

// LoadFrom merges the given sources over the defaults in order.
func LoadFrom(sources ...loader.Loader) (*Config, error) {
	return load(sources...)
}

func load(sources ...loader.Loader) (*Config, error) {
	merged, err := Default().toMap()
	if err != nil {
		return nil, err
	}

	for _, src := range sources {
		layer, err := src.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, layer)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) toMap() (map[string]any, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return m, nil
}

func fromMap(m map[string]any) (*Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	positive := []struct {
		path  string
		value int
	}{
		{"layout.textWidth", c.Layout.TextWidth},
		{"layout.textHeight", c.Layout.TextHeight},
		{"layout.editorWidth", c.Layout.EditorWidth},
		{"layout.editorHeight", c.Layout.EditorHeight},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ValidationError{Path: p.path, Value: p.value, Message: "must be positive"}
		}
	}

	if _, err := codepage.Parse(c.Encoding.DefaultCodepage); err != nil {
		return &ValidationError{Path: "encoding.defaultCodepage", Value: c.Encoding.DefaultCodepage, Message: err.Error()}
	}
	if _, err := codepage.NewConverter(c.Encoding.ANSICharset); err != nil {
		return &ValidationError{Path: "encoding.ansiCharset", Value: c.Encoding.ANSICharset, Message: err.Error()}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "logging.level", Value: c.Logging.Level, Message: "unknown level"}
	}
	return nil
}

// Codepage returns the parsed default codepage.
// Call on a validated Config; an unparsable value falls back to UTF-8.
func (c *Config) Codepage() codepage.Codepage {
	cp, err := codepage.Parse(c.Encoding.DefaultCodepage)
	if err != nil {
		return codepage.UTF8
	}
	return cp
}

// Converter returns a converter for the configured ANSI charset.
func (c *Config) Converter() (*codepage.Converter, error) {
	return codepage.NewConverter(c.Encoding.ANSICharset)
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}
