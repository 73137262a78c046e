package indicator

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a "#rrggbb" string into the host's colour integer,
// which packs components as 0x00BBGGRR.
func ParseColor(hex string) (int, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("parsing colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return int(r) | int(g)<<8 | int(b)<<16, nil
}

// FormatColor converts a host colour integer back to "#rrggbb".
func FormatColor(c int) string {
	r := uint8(c & 0xFF)
	g := uint8(c >> 8 & 0xFF)
	b := uint8(c >> 16 & 0xFF)
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}
