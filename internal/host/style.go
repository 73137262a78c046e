package host

// SetWholeTextStyle sets the style of every byte of the active document.
func (s *Simulator) SetWholeTextStyle(v ViewType, style int) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetWholeStyle(style)
	}
}

// SetStyleRange sets the style of [from, to) in the active document.
func (s *Simulator) SetStyleRange(v ViewType, from, to Position, style int) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetStyleRange(from, to, style)
	}
}

// SetHotspotStyle sets the style id treated as a hotspot.
func (s *Simulator) SetHotspotStyle(v ViewType, style int) {
	if doc := s.ActiveDocument(v); doc != nil {
		doc.SetHotspotStyle(style)
	}
}

// ForceStyleUpdate asks the host to restyle [from, to). Styling is driven
// by the caller here, so there is nothing to do.
func (s *Simulator) ForceStyleUpdate(from, to Position) {}
