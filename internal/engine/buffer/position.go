package buffer

import "fmt"

// Position is a byte offset into a document buffer.
// This is the fundamental position type, directly indexing into the stored bytes.
type Position = int

// InvalidPosition is the sentinel returned by queries that cannot resolve a
// position, such as queries against a view with no active document.
const InvalidPosition Position = -1

// Point is a screen coordinate in pixels.
type Point struct {
	X int
	Y int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is a screen rectangle in pixels.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}
