package host

import "github.com/dshills/hostsim/internal/engine/indicator"

// SetIndicatorStyle sets the drawing style of indicator i.
func (s *Simulator) SetIndicatorStyle(i, style int) {
	if doc := s.targetDocument(); doc != nil {
		doc.SetIndicatorStyle(i, style)
	}
}

// SetIndicatorForeground sets the colour of indicator i (0x00BBGGRR).
func (s *Simulator) SetIndicatorForeground(i, color int) {
	if doc := s.targetDocument(); doc != nil {
		doc.SetIndicatorForeground(i, color)
	}
}

// SetIndicatorForegroundHex sets the colour of indicator i from "#rrggbb".
func (s *Simulator) SetIndicatorForegroundHex(i int, hex string) error {
	color, err := indicator.ParseColor(hex)
	if err != nil {
		return err
	}
	s.SetIndicatorForeground(i, color)
	return nil
}

// SetCurrentIndicator selects the indicator used by the fill and clear
// commands.
func (s *Simulator) SetCurrentIndicator(i int) {
	if doc := s.targetDocument(); doc != nil {
		doc.SetCurrentIndicator(i)
	}
}

// IndicatorFillRange flags [from, to) on the current indicator.
func (s *Simulator) IndicatorFillRange(from, to Position) {
	if doc := s.targetDocument(); doc != nil {
		doc.FillRange(from, to)
	}
}

// IndicatorClearRange unflags [from, to) on the current indicator.
func (s *Simulator) IndicatorClearRange(from, to Position) {
	if doc := s.targetDocument(); doc != nil {
		doc.ClearRange(from, to)
	}
}
