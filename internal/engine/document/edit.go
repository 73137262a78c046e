package document

import (
	"fmt"

	"github.com/dshills/hostsim/internal/engine/buffer"
	"github.com/dshills/hostsim/internal/engine/cursor"
	"github.com/dshills/hostsim/internal/engine/history"
)

// SetData stores text converted per the document's codepage and resets
// the buffer state as SetDataRaw does.
func (d *Document) SetData(text string) {
	d.SetDataRaw(d.converter.Encode(d.codepage, text))
}

// SetDataRaw replaces the buffer with data. Styles are resized to match
// (new slots are 0), the selection and caret move to 0 and every indicator
// is cleared without shrinking.
func (d *Document) SetDataRaw(data []byte) {
	d.data = append(d.data[:0:0], data...)
	d.style = resizeStyle(d.style, len(d.data))
	d.selection = cursor.NewCursorSelection(0)
	d.indicators.ResetAll()
}

// Erase removes length bytes starting at start from the buffer, the styles
// and the indicator marks in lock-step.
// It panics if the range does not lie within the buffer.
func (d *Document) Erase(start Position, length int) {
	if !d.ValidRange(start, start+length) {
		panic(fmt.Sprintf("document: erase [%d,%d) out of range (len %d)", start, start+length, len(d.data)))
	}
	end := start + length
	d.data = append(d.data[:start], d.data[end:]...)
	d.style = append(d.style[:start], d.style[end:]...)
	d.indicators.Splice(start, end, 0)
	d.selection = d.selection.Clamp(len(d.data))
}

// ValidRange reports whether [from, to) lies within the buffer.
func (d *Document) ValidRange(from, to Position) bool {
	return buffer.Range{Start: from, End: to}.IsValid() && to <= len(d.data)
}

// Replace substitutes text for [from, to). Styles grow or shrink to match
// with new slots set to 0 and inserted bytes carry no indicator marks. The
// selection follows the surrounding text.
// It panics if the range does not lie within the buffer.
func (d *Document) Replace(from, to Position, text []byte) {
	if !d.ValidRange(from, to) {
		panic(fmt.Sprintf("document: replace [%d,%d) out of range (len %d)", from, to, len(d.data)))
	}
	data := make([]byte, 0, len(d.data)-(to-from)+len(text))
	data = append(data, d.data[:from]...)
	data = append(data, text...)
	data = append(data, d.data[to:]...)

	style := make([]int, 0, len(data))
	style = append(style, d.style[:from]...)
	style = append(style, make([]int, len(text))...)
	style = append(style, d.style[to:]...)

	d.data = data
	d.style = style
	d.indicators.Splice(from, to, len(text))
	d.selection = d.selection.Adjust(from, to, len(text)).Clamp(len(d.data))
}

// ReplaceSelection substitutes text for the selected range and collapses
// the selection to the end of the inserted text.
func (d *Document) ReplaceSelection(text []byte) {
	from := d.selection.Start
	d.Replace(from, d.selection.End, text)
	d.selection = d.selection.Collapse(from + len(text))
}

// SetSelection selects from..to. The stored range is normalized and clamped;
// the caret is placed at to.
func (d *Document) SetSelection(from, to Position) {
	d.selection = cursor.NewSelection(from, to).Clamp(len(d.data))
}

// SelectedText returns the bytes of the current selection.
func (d *Document) SelectedText() string {
	return string(d.data[d.selection.Start:d.selection.End])
}

// TextRange returns the bytes of [from, to), clamped to the buffer.
func (d *Document) TextRange(from, to Position) string {
	r := buffer.NewRange(from, to).Clamp(len(d.data))
	return string(d.data[r.Start:r.End])
}

// SetWholeStyle sets every byte's style.
func (d *Document) SetWholeStyle(style int) {
	for i := range d.style {
		d.style[i] = style
	}
}

// SetStyleRange sets the style of [from, to), clamped to the buffer.
func (d *Document) SetStyleRange(from, to Position, style int) {
	r := buffer.NewRange(from, to).Clamp(len(d.style))
	for i := r.Start; i < r.End; i++ {
		d.style[i] = style
	}
}

// SaveState pushes a copy of the buffer, styles, selection and indicator
// marks onto the history.
func (d *Document) SaveState() {
	d.history.Push(history.NewSnapshot(d.data, d.style, d.selection, d.indicators.SaveMarks()))
}

// Undo restores the most recently saved state. It returns false and leaves
// the document unchanged when the history is empty.
func (d *Document) Undo() bool {
	s, ok := d.history.Pop()
	if !ok {
		return false
	}
	d.data = s.Data
	d.style = s.Style
	d.selection = s.Selection
	d.indicators.RestoreMarks(s.Marks)
	return true
}

// resizeStyle returns style with exactly n entries, zero-filling growth.
func resizeStyle(style []int, n int) []int {
	if n <= len(style) {
		return style[:n]
	}
	return append(style, make([]int, n-len(style))...)
}
