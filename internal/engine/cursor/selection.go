package cursor

import (
	"fmt"

	"github.com/dshills/hostsim/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection is the selected range of a document plus its caret.
// The range is always normalized (Start <= End); Caret is the position the
// caller asked the caret to be at, which may be either end.
// Selection is an immutable value type.
type Selection struct {
	Start Position
	End   Position
	Caret Position
}

// NewSelection creates a selection spanning from..to with the caret at to.
// The pair is normalized so Start <= End regardless of argument order.
func NewSelection(from, to Position) Selection {
	r := buffer.NewRange(from, to)
	return Selection{Start: r.Start, End: r.End, Caret: to}
}

// NewCursorSelection creates an empty selection with the caret at offset.
func NewCursorSelection(offset Position) Selection {
	return Selection{Start: offset, End: offset, Caret: offset}
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("[%d:%d)@%d", s.Start, s.End, s.Caret)
}

// Range returns the selected range.
func (s Selection) Range() Range {
	return Range{Start: s.Start, End: s.End}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the length of the selection in bytes.
func (s Selection) Len() int {
	return s.End - s.Start
}

// Clamp returns the selection limited to a buffer of the given length.
func (s Selection) Clamp(length int) Selection {
	r := s.Range().Clamp(length)
	return Selection{
		Start: r.Start,
		End:   r.End,
		Caret: buffer.ClampPosition(s.Caret, length),
	}
}

// Collapse returns an empty selection at offset.
func (s Selection) Collapse(offset Position) Selection {
	return NewCursorSelection(offset)
}

// Adjust returns the selection moved to follow the replacement of
// [from, to) by n bytes. Offsets at or after to shift by the length change;
// offsets inside the replaced range are pulled back to its new end.
func (s Selection) Adjust(from, to Position, n int) Selection {
	return Selection{
		Start: adjustOffset(s.Start, from, to, n),
		End:   adjustOffset(s.End, from, to, n),
		Caret: adjustOffset(s.Caret, from, to, n),
	}
}

func adjustOffset(p, from, to Position, n int) Position {
	switch {
	case p >= to:
		return p + n - (to - from)
	case p > from:
		return min(p, from+n)
	}
	return p
}
