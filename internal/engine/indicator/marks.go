package indicator

import "github.com/dshills/hostsim/internal/engine/buffer"

// Marks is a growable set of flagged byte offsets.
// Offsets past the current length read as unflagged; writes past it grow
// the set with unflagged slots first.
type Marks struct {
	bits []bool
}

// Len returns the number of tracked offsets.
func (m *Marks) Len() int {
	return len(m.bits)
}

// IsSet reports whether offset is flagged.
func (m *Marks) IsSet(offset int) bool {
	return offset >= 0 && offset < len(m.bits) && m.bits[offset]
}

// Fill flags [from, to).
func (m *Marks) Fill(from, to int) {
	m.set(from, to, true)
}

// Clear unflags [from, to).
func (m *Marks) Clear(from, to int) {
	m.set(from, to, false)
}

func (m *Marks) set(from, to int, v bool) {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return
	}
	m.grow(to)
	for i := from; i < to; i++ {
		m.bits[i] = v
	}
}

// grow extends the set so that it covers n offsets.
func (m *Marks) grow(n int) {
	if n <= len(m.bits) {
		return
	}
	m.bits = append(m.bits, make([]bool, n-len(m.bits))...)
}

// Reset unflags every offset without shrinking the set.
func (m *Marks) Reset() {
	for i := range m.bits {
		m.bits[i] = false
	}
}

// Splice removes the marks of [from, to) and inserts n unflagged slots in
// their place, keeping the marks aligned with text that was replaced.
// Ranges beyond the current length only affect the covered part.
func (m *Marks) Splice(from, to, n int) {
	if from >= len(m.bits) {
		return
	}
	if to > len(m.bits) {
		to = len(m.bits)
	}
	tail := append(make([]bool, n), m.bits[to:]...)
	m.bits = append(m.bits[:from], tail...)
}

// Runs returns the maximal runs of flagged offsets in left-to-right order.
func (m *Marks) Runs() []buffer.Range {
	var runs []buffer.Range
	i := 0
	for i < len(m.bits) {
		if !m.bits[i] {
			i++
			continue
		}
		j := i
		for j < len(m.bits) && m.bits[j] {
			j++
		}
		runs = append(runs, buffer.Range{Start: i, End: j})
		i = j
	}
	return runs
}

// Clone returns an independent copy.
func (m *Marks) Clone() Marks {
	return Marks{bits: append([]bool(nil), m.bits...)}
}
