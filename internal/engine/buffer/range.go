package buffer

import "fmt"

// Range represents a byte range in the buffer.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position // Inclusive start position
	End   Position // Exclusive end position
}

// NewRange creates a normalized Range from two offsets given in any order.
func NewRange(a, b Position) Range {
	if a > b {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// IsValid returns true if the range is valid (0 <= Start <= End).
func (r Range) IsValid() bool {
	return r.Start >= 0 && r.Start <= r.End
}

// Clamp returns the range limited to [0, length].
func (r Range) Clamp(length int) Range {
	return Range{Start: clamp(r.Start, length), End: clamp(r.End, length)}
}

// clamp limits p to [0, length].
func clamp(p Position, length int) Position {
	if p < 0 {
		return 0
	}
	if p > length {
		return length
	}
	return p
}

// ClampPosition limits p to [0, length].
func ClampPosition(p Position, length int) Position {
	return clamp(p, length)
}
