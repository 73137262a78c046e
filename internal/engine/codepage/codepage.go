// Package codepage implements the byte encodings a document may be stored in.
//
// A host stores text either in the platform's ANSI code page or in UTF-8.
// Byte offsets everywhere else in the simulator index the stored bytes, so
// conversion here must mirror what the real host would store for the same
// text: characters the ANSI page cannot represent become '?'.
package codepage

import (
	"errors"
	"fmt"
	"strings"
)

// Codepage identifies how a document's text is stored.
type Codepage uint8

const (
	// ANSI stores text in a single-byte code page.
	ANSI Codepage = iota
	// UTF8 stores text as UTF-8.
	UTF8
)

// ErrUnknownCodepage indicates a codepage name could not be parsed.
var ErrUnknownCodepage = errors.New("unknown codepage")

// String returns the canonical name of the codepage.
func (c Codepage) String() string {
	switch c {
	case ANSI:
		return "ansi"
	case UTF8:
		return "utf8"
	default:
		return fmt.Sprintf("codepage(%d)", uint8(c))
	}
}

// Parse converts a name such as "ansi" or "utf-8" into a Codepage.
func Parse(s string) (Codepage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ansi", "acp":
		return ANSI, nil
	case "utf8", "utf-8":
		return UTF8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCodepage, s)
	}
}
