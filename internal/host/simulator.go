package host

import (
	"fmt"

	"github.com/dshills/hostsim/internal/engine/buffer"
	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/engine/document"
	"github.com/dshills/hostsim/internal/logging"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Simulator is an in-memory editor host with two views of documents.
//
// The active view is the one the user last focused; the target view is the
// one editing commands go to. They are independent: a command may be sent
// to a view that is not focused. Commands without an explicit view act on
// the active document of the target view.
//
// A Simulator is not safe for concurrent use. Callers drive it serially, the
// way a spell-check pass drives a single-threaded editor.
type Simulator struct {
	views      [ViewCount]*View
	activeView ViewType
	targetView ViewType
	saveUndo   [ViewCount]bool

	converter       *codepage.Converter
	defaultCodepage codepage.Codepage

	textWidth       int
	textHeight      int
	editorRect      buffer.Rect
	pluginConfigDir string

	logger *logging.Logger
}

// New creates a simulator with two empty views.
func New(opts ...Option) *Simulator {
	s := &Simulator{
		converter:       codepage.DefaultConverter(),
		defaultCodepage: codepage.UTF8,
		textWidth:       DefaultTextWidth,
		textHeight:      DefaultTextHeight,
		editorRect:      buffer.Rect{Right: DefaultEditorWidth, Bottom: DefaultEditorHeight},
		logger:          logging.Null(),
	}
	for i := range s.views {
		s.views[i] = newView()
		s.saveUndo[i] = true
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("host")
	return s
}

// View returns view v. It panics if v is not a valid view.
func (s *Simulator) View(v ViewType) *View {
	if !v.Valid() {
		panic(fmt.Sprintf("host: invalid view %d", int(v)))
	}
	return s.views[v]
}

// ActiveDocument returns the active document of view v, or nil.
func (s *Simulator) ActiveDocument(v ViewType) *document.Document {
	return s.View(v).Active()
}

// targetDocument returns the active document of the target view, or nil.
func (s *Simulator) targetDocument() *document.Document {
	return s.ActiveDocument(s.targetView)
}

// ActiveView returns the view that last received an activation.
func (s *Simulator) ActiveView() ViewType {
	return s.activeView
}

// TargetView returns the view editing commands are directed at.
func (s *Simulator) TargetView() ViewType {
	return s.targetView
}

// SetTargetView directs subsequent editing commands at view v.
func (s *Simulator) SetTargetView(v ViewType) {
	s.View(v)
	s.targetView = v
}

// ViewCount returns the number of views.
func (s *Simulator) ViewCount() int {
	return ViewCount
}

// OpenVirtualDocument adds a document holding text to view v, makes it the
// view's active document and makes v the active view.
func (s *Simulator) OpenVirtualDocument(v ViewType, path, text string) *document.Document {
	doc := document.New(path,
		document.WithConverter(s.converter),
		document.WithCodepage(s.defaultCodepage),
		document.WithText(text),
	)
	s.View(v).Append(doc)
	s.activeView = v
	s.logger.WithFields(map[string]any{"view": v, "path": path}).Debug("opened virtual document (%d bytes)", doc.Len())
	return doc
}

// OpenDocument would open a file from disk. The simulator never touches the
// file system, so calling it is a harness bug and panics.
func (s *Simulator) OpenDocument(path string) bool {
	panic(fmt.Sprintf("host: OpenDocument(%q) is unsupported by the simulator; use OpenVirtualDocument", path))
}

// AddBookmark would place a margin bookmark. It is unsupported and panics.
func (s *Simulator) AddBookmark(line int) {
	panic(fmt.Sprintf("host: AddBookmark(%d) is unsupported by the simulator", line))
}

// PluginConfigDir returns the configured plugin configuration directory.
func (s *Simulator) PluginConfigDir() string {
	return s.pluginConfigDir
}
