package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/hostsim/internal/config/loader"
	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/logging"
)

type mapLoader map[string]any

func (m mapLoader) Load() (map[string]any, error) { return m, nil }

type errLoader struct{ err error }

func (e errLoader) Load() (map[string]any, error) { return nil, e.err }

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Codepage() != codepage.UTF8 {
		t.Errorf("Codepage() = %v, want utf8", cfg.Codepage())
	}
	if cfg.LogLevel() != logging.LevelInfo {
		t.Errorf("LogLevel() = %v, want INFO", cfg.LogLevel())
	}
	conv, err := cfg.Converter()
	if err != nil {
		t.Fatal(err)
	}
	if conv.Charset() != codepage.DefaultANSICharset {
		t.Errorf("Charset() = %q", conv.Charset())
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	content := `
[layout]
textWidth = 7

[encoding]
ansiCharset = "windows-1251"
defaultCodepage = "ansi"

[paths]
pluginConfigDir = "/plugins"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := Default()
	want.Layout.TextWidth = 7
	want.Encoding.ANSICharset = "windows-1251"
	want.Encoding.DefaultCodepage = "ansi"
	want.Paths.PluginConfigDir = "/plugins"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("expected defaults (-want +got):\n%s", diff)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("HOSTSIM_LAYOUT_TEXT_HEIGHT", "20")
	t.Setenv("HOSTSIM_LOG_LEVEL", "debug")

	cfg, err := LoadWithEnv("")
	if err != nil {
		t.Fatalf("LoadWithEnv failed: %v", err)
	}
	if cfg.Layout.TextHeight != 20 {
		t.Errorf("TextHeight = %d, want 20", cfg.Layout.TextHeight)
	}
	if cfg.LogLevel() != logging.LevelDebug {
		t.Errorf("LogLevel() = %v, want DEBUG", cfg.LogLevel())
	}
}

func TestLoadFrom_Layering(t *testing.T) {
	cfg, err := LoadFrom(
		mapLoader{"layout": map[string]any{"textWidth": int64(3), "textHeight": int64(4)}},
		mapLoader{"layout": map[string]any{"textWidth": int64(5)}},
	)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Layout.TextWidth != 5 || cfg.Layout.TextHeight != 4 {
		t.Errorf("layout = %+v", cfg.Layout)
	}
	if cfg.Layout.EditorWidth != 10000 {
		t.Errorf("EditorWidth = %d, want default", cfg.Layout.EditorWidth)
	}
}

func TestLoadFrom_SourceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadFrom(errLoader{boom})
	if !errors.Is(err, boom) {
		t.Errorf("expected source error, got %v", err)
	}
}

func TestLoadFrom_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[layout"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var pe *loader.ParseError
	if !errors.As(err, &pe) {
		t.Errorf("expected ParseError, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
	}{
		{"zero width", func(c *Config) { c.Layout.TextWidth = 0 }, "layout.textWidth"},
		{"negative editor height", func(c *Config) { c.Layout.EditorHeight = -1 }, "layout.editorHeight"},
		{"bad codepage", func(c *Config) { c.Encoding.DefaultCodepage = "ebcdic" }, "encoding.defaultCodepage"},
		{"bad charset", func(c *Config) { c.Encoding.ANSICharset = "no-such-charset" }, "encoding.ansiCharset"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Path != tt.path {
				t.Errorf("error path = %v, want %s", err, tt.path)
			}
		})
	}
}

func TestLoadFrom_InvalidValue(t *testing.T) {
	_, err := LoadFrom(mapLoader{"logging": map[string]any{"level": "shout"}})
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected validation failure, got %v", err)
	}
}

func TestLoadFrom_TypeMismatch(t *testing.T) {
	_, err := LoadFrom(mapLoader{"layout": map[string]any{"textWidth": "wide"}})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}
