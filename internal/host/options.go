package host

import (
	"github.com/dshills/hostsim/internal/engine/buffer"
	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/logging"
)

// Default layout values.
const (
	DefaultTextWidth    = 10
	DefaultTextHeight   = 10
	DefaultEditorWidth  = 10000
	DefaultEditorHeight = 10000
)

// Option configures a Simulator during creation.
type Option func(*Simulator)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConverter sets the codepage converter given to new documents.
func WithConverter(c *codepage.Converter) Option {
	return func(s *Simulator) {
		if c != nil {
			s.converter = c
		}
	}
}

// WithDefaultCodepage sets the codepage of newly opened documents.
func WithDefaultCodepage(cp codepage.Codepage) Option {
	return func(s *Simulator) {
		s.defaultCodepage = cp
	}
}

// WithTextMetrics sets the fixed per-character width and height in pixels.
func WithTextMetrics(width, height int) Option {
	return func(s *Simulator) {
		if width > 0 {
			s.textWidth = width
		}
		if height > 0 {
			s.textHeight = height
		}
	}
}

// WithEditorRect sets the rectangle reported for every view.
func WithEditorRect(r buffer.Rect) Option {
	return func(s *Simulator) {
		s.editorRect = r
	}
}

// WithPluginConfigDir sets the directory reported as the plugin config dir.
func WithPluginConfigDir(dir string) Option {
	return func(s *Simulator) {
		s.pluginConfigDir = dir
	}
}
