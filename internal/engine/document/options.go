package document

import "github.com/dshills/hostsim/internal/engine/codepage"

// Option configures a Document during creation.
type Option func(*Document)

// WithCodepage sets the initial codepage.
func WithCodepage(cp codepage.Codepage) Option {
	return func(d *Document) {
		d.codepage = cp
	}
}

// WithConverter sets the converter used to store Unicode text.
func WithConverter(c *codepage.Converter) Option {
	return func(d *Document) {
		if c != nil {
			d.converter = c
		}
	}
}

// WithText sets the initial text, stored per the document's codepage.
// Options are applied in order, so WithCodepage must come first.
func WithText(text string) Option {
	return func(d *Document) {
		d.SetData(text)
	}
}
