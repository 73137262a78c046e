package host

import (
	"fmt"

	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/engine/document"
)

// Editing commands act on the target view's active document and are
// silently ignored when that view is empty.

// SetSelection selects from..to and places the caret at to.
func (s *Simulator) SetSelection(from, to Position) {
	doc := s.targetDocument()
	if doc == nil {
		return
	}
	doc.SetSelection(from, to)
}

// ReplaceSelection replaces the selection with text, which is given in the
// document's stored encoding.
func (s *Simulator) ReplaceSelection(text string) {
	doc := s.targetDocument()
	if doc == nil {
		return
	}
	s.saveState()
	doc.ReplaceSelection([]byte(text))
}

// ReplaceText replaces [from, to) with text in the document's stored
// encoding. The selection is kept, shifted to follow the surrounding text.
// It panics if the range is not inside the document.
func (s *Simulator) ReplaceText(from, to Position, text string) {
	doc := s.targetDocument()
	if doc == nil {
		return
	}
	mustBeInside(doc, from, to)
	s.saveState()
	doc.Replace(from, to, []byte(text))
}

// DeleteRange removes length bytes starting at start. It panics if the range
// is not inside the document.
func (s *Simulator) DeleteRange(start Position, length int) {
	doc := s.targetDocument()
	if doc == nil {
		return
	}
	mustBeInside(doc, start, start+length)
	s.saveState()
	doc.Erase(start, length)
}

// mustBeInside panics unless [from, to) lies within doc. Edits check this
// before snapshotting so a rejected edit leaves the history untouched.
func mustBeInside(doc *document.Document, from, to Position) {
	if !doc.ValidRange(from, to) {
		panic(fmt.Sprintf("host: range [%d,%d) outside %s (len %d)", from, to, doc.Path(), doc.Len()))
	}
}

// saveState snapshots the target document unless an undo action is open on
// the target view.
func (s *Simulator) saveState() {
	if !s.saveUndo[s.targetView] {
		return
	}
	s.targetDocument().SaveState()
}

// BeginUndoAction snapshots every document of view v and suppresses per-edit
// snapshots until EndUndoAction, so the batch undoes as one step.
func (s *Simulator) BeginUndoAction(v ViewType) {
	for _, doc := range s.View(v).docs {
		doc.SaveState()
	}
	s.saveUndo[v] = false
	s.logger.WithField("view", v).Debug("begin undo action")
}

// EndUndoAction re-enables per-edit snapshots on view v.
func (s *Simulator) EndUndoAction(v ViewType) {
	s.View(v)
	s.saveUndo[v] = true
	s.logger.WithField("view", v).Debug("end undo action")
}

// Undo restores the most recent snapshot of the target view's document.
// With no snapshot it does nothing. Redo is not supported.
func (s *Simulator) Undo() {
	doc := s.targetDocument()
	if doc == nil {
		return
	}
	if doc.Undo() {
		s.logger.WithField("path", doc.Path()).Debug("undo")
	}
}

// SetActiveDocumentText stores text in the active document of v, converted
// per the document's codepage.
func (s *Simulator) SetActiveDocumentText(v ViewType, text string) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetData(text)
	}
}

// SetActiveDocumentTextRaw stores data in the active document of v as is.
func (s *Simulator) SetActiveDocumentTextRaw(v ViewType, data []byte) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetDataRaw(data)
	}
}

// SetCodepage sets the codepage of the active document of v.
func (s *Simulator) SetCodepage(v ViewType, cp codepage.Codepage) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetCodepage(cp)
	}
}

// SetLexer sets the lexer id of the active document of v.
func (s *Simulator) SetLexer(v ViewType, lexer int) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetLexer(lexer)
	}
}
