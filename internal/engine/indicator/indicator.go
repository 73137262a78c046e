// Package indicator simulates an editor's range overlays.
//
// An indicator flags arbitrary byte ranges independently of syntax styling;
// a spell-checker uses one to underline misspelled words. Each document owns
// a Set of indicators that grows on demand when a caller references an
// index it has not seen yet.
package indicator

// Indicator is one overlay: its drawing style, foreground colour and the
// offsets it currently flags.
type Indicator struct {
	Style      int
	Foreground int
	Marks      Marks
}

// Set is a growable list of indicators plus the one selected for fill and
// clear operations.
type Set struct {
	items   []Indicator
	current int
}

// Len returns the number of indicators.
func (s *Set) Len() int {
	return len(s.items)
}

// Current returns the index selected for fill and clear.
func (s *Set) Current() int {
	return s.current
}

// Get returns indicator i, or nil if it has never been referenced.
func (s *Set) Get(i int) *Indicator {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return &s.items[i]
}

// At returns indicator i, growing the set if needed.
func (s *Set) At(i int) *Indicator {
	if i < 0 {
		panic("indicator: negative indicator index")
	}
	if i >= len(s.items) {
		s.items = append(s.items, make([]Indicator, i+1-len(s.items))...)
	}
	return &s.items[i]
}

// Select makes indicator i current, growing the set if needed.
func (s *Set) Select(i int) {
	s.At(i)
	s.current = i
}

// Fill flags [from, to) on the current indicator.
func (s *Set) Fill(from, to int) {
	s.At(s.current).Marks.Fill(from, to)
}

// Clear unflags [from, to) on the current indicator.
func (s *Set) Clear(from, to int) {
	s.At(s.current).Marks.Clear(from, to)
}

// ResetAll unflags every offset of every indicator.
func (s *Set) ResetAll() {
	for i := range s.items {
		s.items[i].Marks.Reset()
	}
}

// Splice applies Marks.Splice to every indicator.
func (s *Set) Splice(from, to, n int) {
	for i := range s.items {
		s.items[i].Marks.Splice(from, to, n)
	}
}

// SaveMarks returns an independent copy of every indicator's marks.
func (s *Set) SaveMarks() []Marks {
	marks := make([]Marks, len(s.items))
	for i := range s.items {
		marks[i] = s.items[i].Marks.Clone()
	}
	return marks
}

// RestoreMarks replaces each indicator's marks with those saved by
// SaveMarks. Indicators created since are left with no marks. Styles and
// colours are not touched.
func (s *Set) RestoreMarks(marks []Marks) {
	for i := range s.items {
		if i < len(marks) {
			s.items[i].Marks = marks[i].Clone()
		} else {
			s.items[i].Marks = Marks{}
		}
	}
}
