package host

import (
	"github.com/dshills/hostsim/internal/config"
	"github.com/dshills/hostsim/internal/engine/buffer"
)

// NewFromConfig creates a simulator from loaded settings.
// Options are applied after the config, so they take precedence.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Simulator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	conv, err := cfg.Converter()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithConverter(conv),
		WithDefaultCodepage(cfg.Codepage()),
		WithTextMetrics(cfg.Layout.TextWidth, cfg.Layout.TextHeight),
		WithEditorRect(buffer.Rect{Right: cfg.Layout.EditorWidth, Bottom: cfg.Layout.EditorHeight}),
		WithPluginConfigDir(cfg.Paths.PluginConfigDir),
	}
	return New(append(base, opts...)...), nil
}
