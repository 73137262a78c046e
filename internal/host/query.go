package host

import (
	"github.com/dshills/hostsim/internal/engine/buffer"
	"github.com/dshills/hostsim/internal/engine/codepage"
)

// Queries take an explicit view and answer for that view's active document.
// A view without documents yields a sentinel: InvalidPosition for positions
// and lengths, "" for text, false for predicates.

// ActiveDocumentText returns the stored bytes of the active document.
func (s *Simulator) ActiveDocumentText(v ViewType) string {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return ""
	}
	return doc.Text()
}

// ActiveDocumentDecodedText returns the active document's text decoded
// according to its codepage.
func (s *Simulator) ActiveDocumentDecodedText(v ViewType) string {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return ""
	}
	return doc.DecodedText()
}

// ActiveDocumentLength returns the length in bytes of the active document.
func (s *Simulator) ActiveDocumentLength(v ViewType) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return doc.Len()
}

// TextRange returns the bytes of [from, to) in the active document.
func (s *Simulator) TextRange(v ViewType, from, to Position) string {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return ""
	}
	return doc.TextRange(from, to)
}

// Encoding returns the codepage of the active document, UTF-8 if none.
func (s *Simulator) Encoding(v ViewType) codepage.Codepage {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return codepage.UTF8
	}
	return doc.Codepage()
}

// CurrentPos returns the caret position.
func (s *Simulator) CurrentPos(v ViewType) Position {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return doc.CursorPos()
}

// SelectionStart returns the start of the selection.
func (s *Simulator) SelectionStart(v ViewType) Position {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return doc.Selection().Start
}

// SelectionEnd returns the end of the selection.
func (s *Simulator) SelectionEnd(v ViewType) Position {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return doc.Selection().End
}

// SelectedText returns the selected bytes.
func (s *Simulator) SelectedText(v ViewType) string {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return ""
	}
	return doc.SelectedText()
}

// LineFromPosition returns the line containing pos.
func (s *Simulator) LineFromPosition(v ViewType, pos Position) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return buffer.LineFromPosition(doc.Bytes(), pos)
}

// LineStartPosition returns the first position of line.
func (s *Simulator) LineStartPosition(v ViewType, line int) Position {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return buffer.LineStart(doc.Bytes(), line)
}

// LineEndPosition returns the position of the newline ending line, or the
// end of the buffer for the last line.
func (s *Simulator) LineEndPosition(v ViewType, line int) Position {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return buffer.LineEnd(doc.Bytes(), line)
}

// LineLength returns the length of line without its newline, or
// InvalidPosition if the line does not exist.
func (s *Simulator) LineLength(v ViewType, line int) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return buffer.LineLength(doc.Bytes(), line)
}

// DocumentLineCount returns the number of newlines in the active document.
func (s *Simulator) DocumentLineCount(v ViewType) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return buffer.LineCount(doc.Bytes())
}

// CurrentLineNumber returns the line containing the caret.
func (s *Simulator) CurrentLineNumber(v ViewType) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return buffer.LineFromPosition(doc.Bytes(), doc.CursorPos())
}

// Line returns the text of line including its terminating newline.
func (s *Simulator) Line(v ViewType, line int) string {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return ""
	}
	r := buffer.LineRange(doc.Bytes(), line)
	return doc.TextRange(r.Start, r.End)
}

// CurrentLine returns the text of the line containing the caret.
func (s *Simulator) CurrentLine(v ViewType) string {
	return s.Line(v, s.CurrentLineNumber(v))
}

// Lexer returns the lexer id of the active document, 0 if none.
func (s *Simulator) Lexer(v ViewType) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return 0
	}
	return doc.Lexer()
}

// StyleAt returns the style of the byte at pos.
func (s *Simulator) StyleAt(v ViewType, pos Position) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	return doc.StyleAt(pos)
}

// IsStyleHotspot reports whether style is the document's hotspot style.
func (s *Simulator) IsStyleHotspot(v ViewType, style int) bool {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return false
	}
	return doc.HotspotStyle() == style
}

// UnderlinedWords returns the text under each flagged run of indicator id.
func (s *Simulator) UnderlinedWords(v ViewType, id int) []string {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return nil
	}
	return doc.UnderlinedWords(id)
}

// FindNext returns the position of the first case-insensitive match of
// needle at or after from in the target view's document.
func (s *Simulator) FindNext(from Position, needle string) Position {
	doc := s.targetDocument()
	if doc == nil {
		return buffer.InvalidPosition
	}
	return buffer.IndexFold(doc.Bytes(), from, needle)
}
