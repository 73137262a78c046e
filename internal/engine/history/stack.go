package history

import (
	"github.com/dshills/hostsim/internal/engine/cursor"
	"github.com/dshills/hostsim/internal/engine/indicator"
)

// Snapshot is an immutable copy of a document's buffer state.
type Snapshot struct {
	Data      []byte
	Style     []int
	Selection cursor.Selection
	Marks     []indicator.Marks
}

// NewSnapshot deep-copies data and style into a new snapshot. marks must
// already be a private copy, as returned by indicator.Set.SaveMarks.
func NewSnapshot(data []byte, style []int, sel cursor.Selection, marks []indicator.Marks) Snapshot {
	return Snapshot{
		Data:      append([]byte(nil), data...),
		Style:     append([]int(nil), style...),
		Selection: sel,
		Marks:     marks,
	}
}

// History is a single-direction stack of snapshots.
// Undo pops the most recent snapshot; there is no redo.
type History struct {
	undoStack []Snapshot
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push adds a snapshot to the top of the stack.
func (h *History) Push(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
}

// Pop removes and returns the most recent snapshot.
// Returns false if the history is empty.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	s := h.undoStack[len(h.undoStack)-1]
	h.undoStack[len(h.undoStack)-1] = Snapshot{}
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	return s, true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.undoStack)
}
