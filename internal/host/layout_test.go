package host

import (
	"testing"

	"github.com/dshills/hostsim/internal/engine/buffer"
)

func TestLayout_DefaultMetrics(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "l.txt", "ab\ncdef")

	if got := s.PointXFromPosition(Primary, 5); got != 20 {
		t.Errorf("PointXFromPosition(5) = %d, want 20", got)
	}
	if got := s.PointYFromPosition(Primary, 5); got != 10 {
		t.Errorf("PointYFromPosition(5) = %d, want 10", got)
	}
	if got := s.CharPositionFromPoint(Primary, buffer.Point{X: 20, Y: 10}); got != 5 {
		t.Errorf("CharPositionFromPoint(20,10) = %d, want 5", got)
	}
	if got := s.TextHeight(Primary, 0); got != DefaultTextHeight {
		t.Errorf("TextHeight() = %d", got)
	}
	if pos, ok := s.CharPositionFromGlobalPoint(Primary, 1, 1); ok || pos != -1 {
		t.Errorf("CharPositionFromGlobalPoint = %d, %v", pos, ok)
	}
	if !s.IsLineVisible(Primary, 42) {
		t.Error("every line should be visible")
	}
}

func TestLayout_CustomMetrics(t *testing.T) {
	s := New(WithTextMetrics(8, 16), WithEditorRect(buffer.Rect{Right: 640, Bottom: 480}))
	s.OpenVirtualDocument(Primary, "l.txt", "ab\ncdef")

	if got := s.PointXFromPosition(Primary, 5); got != 16 {
		t.Errorf("PointXFromPosition(5) = %d, want 16", got)
	}
	if got := s.PointYFromPosition(Primary, 5); got != 16 {
		t.Errorf("PointYFromPosition(5) = %d, want 16", got)
	}
	r := s.EditorRect(Secondary)
	if r.Width() != 640 || r.Height() != 480 {
		t.Errorf("EditorRect() = %+v", r)
	}
}

func TestLayout_VisibleLines(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "l.txt", "ab\ncdef")

	s.SetVisibleLines(Primary, 1, 1)
	if s.FirstVisibleLine(Primary) != 1 || s.LinesOnScreen(Primary) != 1 {
		t.Errorf("visible = %d +%d", s.FirstVisibleLine(Primary), s.LinesOnScreen(Primary))
	}
	if got := s.DocumentLineFromVisible(Primary, 0); got != 1 {
		t.Errorf("DocumentLineFromVisible(0) = %d, want 1", got)
	}
	if got := s.CharPositionFromPoint(Primary, buffer.Point{}); got != 3 {
		t.Errorf("CharPositionFromPoint(0,0) = %d, want 3", got)
	}

	s.MakeAllVisible(Primary)
	if s.FirstVisibleLine(Primary) != 0 || s.LinesOnScreen(Primary) != 2 {
		t.Errorf("after MakeAllVisible = %d +%d", s.FirstVisibleLine(Primary), s.LinesOnScreen(Primary))
	}
}
