// Package history provides the undo stack of a simulated document.
//
// Before an undoable mutation the document pushes a Snapshot, a value copy
// of its bytes, styles, selection and indicator marks. Undo pops the newest snapshot and the
// document restores it verbatim:
//
//	h := history.NewHistory()
//	h.Push(history.NewSnapshot(data, style, sel, marks))
//	// ... mutate ...
//	if s, ok := h.Pop(); ok {
//	    // restore s.Data, s.Style, s.Selection, s.Marks
//	}
//
// Redo is not supported. The stack only ever shrinks through Pop.
package history
