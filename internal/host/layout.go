package host

import "github.com/dshills/hostsim/internal/engine/buffer"

// Layout is simulated with a fixed cell size: every byte is textWidth pixels
// wide and every line textHeight pixels tall, starting at the origin.

// TextHeight returns the pixel height of line.
func (s *Simulator) TextHeight(v ViewType, line int) int {
	return s.textHeight
}

// PointXFromPosition returns the x pixel coordinate of pos.
func (s *Simulator) PointXFromPosition(v ViewType, pos Position) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	line := buffer.LineFromPosition(doc.Bytes(), pos)
	return (pos - buffer.LineStart(doc.Bytes(), line)) * s.textWidth
}

// PointYFromPosition returns the y pixel coordinate of pos.
func (s *Simulator) PointYFromPosition(v ViewType, pos Position) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	line := buffer.LineFromPosition(doc.Bytes(), pos)
	return line * s.TextHeight(v, line)
}

// CharPositionFromPoint returns the position under the point p, relative to
// the first visible line.
func (s *Simulator) CharPositionFromPoint(v ViewType, p buffer.Point) Position {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	line := s.DocumentLineFromVisible(v, p.Y/s.textHeight)
	return buffer.LineStart(doc.Bytes(), line) + p.X/s.textWidth
}

// CharPositionFromGlobalPoint maps a screen point to a position. The
// simulator has no screen, so no point ever maps to a position.
func (s *Simulator) CharPositionFromGlobalPoint(v ViewType, x, y int) (Position, bool) {
	return buffer.InvalidPosition, false
}

// EditorRect returns the rectangle of view v.
func (s *Simulator) EditorRect(v ViewType) buffer.Rect {
	return s.editorRect
}

// FirstVisibleLine returns the first line on screen.
func (s *Simulator) FirstVisibleLine(v ViewType) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	first, _ := doc.VisibleLines()
	return first
}

// LinesOnScreen returns how many lines are on screen.
func (s *Simulator) LinesOnScreen(v ViewType) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	first, last := doc.VisibleLines()
	return last - first + 1
}

// DocumentLineFromVisible converts a screen line to a document line.
func (s *Simulator) DocumentLineFromVisible(v ViewType, visible int) int {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return buffer.InvalidPosition
	}
	first, _ := doc.VisibleLines()
	return first + visible
}

// SetVisibleLines sets the inclusive range of lines on screen.
func (s *Simulator) SetVisibleLines(v ViewType, first, last int) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetVisibleLines(first, last)
	}
}

// MakeAllVisible puts the whole document on screen.
func (s *Simulator) MakeAllVisible(v ViewType) {
	doc := s.ActiveDocument(v)
	if doc == nil {
		return
	}
	doc.SetVisibleLines(0, buffer.LineCount(doc.Bytes()))
}

// IsLineVisible reports whether line is on screen. Folding is not
// simulated, so every line is.
func (s *Simulator) IsLineVisible(v ViewType, line int) bool {
	return true
}
