// Package buffer provides the position and line arithmetic shared by the
// document model and the host simulator.
//
// Everything here is a pure function over a byte slice. Positions are byte
// offsets; a line is the text between two '\n' characters. The helpers agree
// with each other, so for any line n that exists:
//
//	LineFromPosition(data, LineStart(data, n)) == n
//
// Queries that cannot be answered return InvalidPosition (-1) rather than an
// error, matching the forgiving query contract of an editor host.
package buffer
