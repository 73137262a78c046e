// Package cursor provides the selection value type used by documents.
//
// A host tracks one selection per document. The stored range is normalized
// so that Start <= End, while the caret keeps whichever end the caller last
// requested:
//
//	sel := cursor.NewSelection(10, 4)
//	sel.Start // 4
//	sel.End   // 10
//	sel.Caret // 4
//
// Selections are values; every operation returns a new Selection.
package cursor
