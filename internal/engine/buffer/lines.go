package buffer

import (
	"bytes"
	"strings"
)

// Lines are delimited by a single '\n'. Line n (0-based) starts after the
// n-th newline and ends at the (n+1)-th newline or the end of the buffer.

// LineFromPosition returns the number of newlines strictly before pos.
// Positions past the end are treated as the end of the buffer.
func LineFromPosition(data []byte, pos Position) int {
	pos = clamp(pos, len(data))
	return bytes.Count(data[:pos], newline)
}

// LineStart returns the offset of the first byte of line n.
// Lines past the last one start at len(data).
func LineStart(data []byte, line int) Position {
	index := 0
	for i := 0; i < line; i++ {
		nl := bytes.IndexByte(data[index:], '\n')
		if nl < 0 {
			return len(data)
		}
		index += nl + 1
	}
	return index
}

// LineEnd returns the offset of the newline terminating line n, or len(data)
// if line n is the last line (or does not exist).
func LineEnd(data []byte, line int) Position {
	start := LineStart(data, line)
	nl := bytes.IndexByte(data[start:], '\n')
	if nl < 0 {
		return len(data)
	}
	return start + nl
}

// LineExists reports whether line n is present in data.
func LineExists(data []byte, line int) bool {
	return line >= 0 && line <= LineCount(data)
}

// LineLength returns the number of bytes in line n excluding its newline,
// or InvalidPosition if the line does not exist.
func LineLength(data []byte, line int) int {
	if !LineExists(data, line) {
		return InvalidPosition
	}
	return LineEnd(data, line) - LineStart(data, line)
}

// LineCount returns the number of newline characters in data.
func LineCount(data []byte) int {
	return bytes.Count(data, newline)
}

// LineRange returns line n including its terminating newline, if any.
func LineRange(data []byte, line int) Range {
	start := LineStart(data, line)
	end := LineEnd(data, line)
	if end < len(data) {
		end++
	}
	return Range{Start: start, End: end}
}

// IndexFold returns the offset of the first case-insensitive match of needle
// in data at or after from, or InvalidPosition. Matching compares byte windows
// of len(needle) so returned offsets are always byte offsets into data.
func IndexFold(data []byte, from Position, needle string) Position {
	if from < 0 {
		from = 0
	}
	n := len(needle)
	for i := from; i+n <= len(data); i++ {
		if strings.EqualFold(string(data[i:i+n]), needle) {
			return i
		}
	}
	return InvalidPosition
}

var newline = []byte{'\n'}
