// Package document implements one simulated editor buffer.
//
// A Document holds the stored bytes of a file together with a parallel
// style array, the selection and caret, indicator overlays and an undo
// history. The invariant len(style) == len(data) holds after every
// mutation, and the selection always lies within [0, len(data)].
//
// Document methods panic when a caller violates a precondition (for example
// erasing past the end of the buffer). A simulator exists to drive tests,
// and such a call is a bug in the test rather than a runtime condition.
package document

import (
	"github.com/google/uuid"

	"github.com/dshills/hostsim/internal/engine/buffer"
	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/engine/cursor"
	"github.com/dshills/hostsim/internal/engine/history"
	"github.com/dshills/hostsim/internal/engine/indicator"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Document is one editable text buffer and its editor state.
type Document struct {
	id   uuid.UUID
	path string

	data      []byte
	style     []int
	selection cursor.Selection

	indicators indicator.Set

	codepage     codepage.Codepage
	converter    *codepage.Converter
	lexer        int
	hotspotStyle int
	visibleFirst int
	visibleLast  int

	history *history.History
}

// New creates an empty document identified by path.
func New(path string, opts ...Option) *Document {
	d := &Document{
		id:        uuid.New(),
		path:      path,
		codepage:  codepage.UTF8,
		converter: codepage.DefaultConverter(),
		history:   history.NewHistory(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ID returns the identifier assigned when the document was created.
func (d *Document) ID() uuid.UUID {
	return d.id
}

// Path returns the document's file name or virtual path.
func (d *Document) Path() string {
	return d.path
}

// Len returns the length of the buffer in bytes.
func (d *Document) Len() int {
	return len(d.data)
}

// Bytes returns the stored buffer. The slice must not be modified.
func (d *Document) Bytes() []byte {
	return d.data
}

// Text returns the stored bytes as a string, without decoding.
func (d *Document) Text() string {
	return string(d.data)
}

// DecodedText returns the buffer decoded according to the codepage.
func (d *Document) DecodedText() string {
	return d.converter.Decode(d.codepage, d.data)
}

// Styles returns a copy of the style array.
func (d *Document) Styles() []int {
	return append([]int(nil), d.style...)
}

// StyleAt returns the style of the byte at pos, or 0 outside the buffer.
func (d *Document) StyleAt(pos Position) int {
	if pos < 0 || pos >= len(d.style) {
		return 0
	}
	return d.style[pos]
}

// Selection returns the current selection.
func (d *Document) Selection() cursor.Selection {
	return d.selection
}

// CursorPos returns the caret position.
func (d *Document) CursorPos() Position {
	return d.selection.Caret
}

// Codepage returns how the document stores text.
func (d *Document) Codepage() codepage.Codepage {
	return d.codepage
}

// SetCodepage changes how subsequent SetData calls store text.
// The existing bytes are left untouched.
func (d *Document) SetCodepage(cp codepage.Codepage) {
	d.codepage = cp
}

// Lexer returns the syntax-highlighting lexer id.
func (d *Document) Lexer() int {
	return d.lexer
}

// SetLexer sets the syntax-highlighting lexer id.
func (d *Document) SetLexer(lexer int) {
	d.lexer = lexer
}

// HotspotStyle returns the style id rendered as a hotspot.
func (d *Document) HotspotStyle() int {
	return d.hotspotStyle
}

// SetHotspotStyle sets the style id rendered as a hotspot.
func (d *Document) SetHotspotStyle(style int) {
	d.hotspotStyle = style
}

// VisibleLines returns the inclusive range of lines on screen.
func (d *Document) VisibleLines() (first, last int) {
	return d.visibleFirst, d.visibleLast
}

// SetVisibleLines sets the inclusive range of lines on screen.
func (d *Document) SetVisibleLines(first, last int) {
	if last < first {
		first, last = last, first
	}
	d.visibleFirst, d.visibleLast = first, last
}

// Indicators returns the document's indicator set.
func (d *Document) Indicators() *indicator.Set {
	return &d.indicators
}

// History returns the document's undo history.
func (d *Document) History() *history.History {
	return d.history
}
