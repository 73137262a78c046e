package document

import "github.com/dshills/hostsim/internal/engine/indicator"

// SetCurrentIndicator selects the indicator that FillRange and ClearRange
// affect, creating it if needed.
func (d *Document) SetCurrentIndicator(i int) {
	d.indicators.Select(i)
}

// CurrentIndicator returns the selected indicator index.
func (d *Document) CurrentIndicator() int {
	return d.indicators.Current()
}

// SetIndicatorStyle sets the drawing style of indicator i.
func (d *Document) SetIndicatorStyle(i, style int) {
	d.indicators.At(i).Style = style
}

// SetIndicatorForeground sets the colour of indicator i.
func (d *Document) SetIndicatorForeground(i, color int) {
	d.indicators.At(i).Foreground = color
}

// Indicator returns indicator i, or nil if it was never referenced.
func (d *Document) Indicator(i int) *indicator.Indicator {
	return d.indicators.Get(i)
}

// FillRange flags [from, to) on the current indicator.
func (d *Document) FillRange(from, to Position) {
	d.indicators.Fill(from, to)
}

// ClearRange unflags [from, to) on the current indicator.
func (d *Document) ClearRange(from, to Position) {
	d.indicators.Clear(from, to)
}

// UnderlinedWords returns the text under each maximal flagged run of
// indicator id, left to right. Runs past the end of the buffer are cut off.
func (d *Document) UnderlinedWords(id int) []string {
	ind := d.indicators.Get(id)
	if ind == nil {
		return nil
	}
	var words []string
	for _, r := range ind.Marks.Runs() {
		if r.Start >= len(d.data) {
			break
		}
		words = append(words, d.TextRange(r.Start, r.End))
	}
	return words
}
