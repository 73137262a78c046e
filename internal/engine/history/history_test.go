package history

import (
	"testing"

	"github.com/dshills/hostsim/internal/engine/cursor"
	"github.com/dshills/hostsim/internal/engine/indicator"
)

func TestNewSnapshotCopies(t *testing.T) {
	data := []byte("hello")
	style := []int{1, 2, 3, 4, 5}
	var set indicator.Set
	set.Fill(1, 3)
	s := NewSnapshot(data, style, cursor.NewSelection(1, 3), set.SaveMarks())
	set.Clear(0, 5)

	data[0] = 'j'
	style[0] = 9

	if string(s.Data) != "hello" {
		t.Errorf("snapshot data aliased: %q", s.Data)
	}
	if s.Style[0] != 1 {
		t.Errorf("snapshot style aliased: %v", s.Style)
	}
	if len(s.Marks) != 1 || !s.Marks[0].IsSet(2) {
		t.Errorf("snapshot marks aliased: %v", s.Marks)
	}
}

func TestHistoryPushPop(t *testing.T) {
	h := NewHistory()
	if h.Len() != 0 {
		t.Error("new history should be empty")
	}

	h.Push(NewSnapshot([]byte("a"), []int{0}, cursor.Selection{}, nil))
	h.Push(NewSnapshot([]byte("ab"), []int{0, 0}, cursor.Selection{}, nil))

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	s, ok := h.Pop()
	if !ok || string(s.Data) != "ab" {
		t.Errorf("first Pop() = %q, %v", s.Data, ok)
	}
	s, ok = h.Pop()
	if !ok || string(s.Data) != "a" {
		t.Errorf("second Pop() = %q, %v", s.Data, ok)
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop on empty history should fail")
	}
}
