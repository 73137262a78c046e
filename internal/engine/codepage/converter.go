package codepage

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	gdenc "github.com/gdamore/encoding"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultANSICharset is the ANSI code page used when none is configured.
const DefaultANSICharset = "windows-1252"

// ErrUnsupportedCharset indicates a charset name has no usable encoding.
var ErrUnsupportedCharset = errors.New("unsupported charset")

// unsupportedByte replaces characters outside the ANSI repertoire.
const unsupportedByte = '?'

// Converter turns Unicode text into stored bytes and back.
type Converter struct {
	charset string
	ansi    encoding.Encoding
}

// NewConverter creates a converter whose ANSI page is the named charset.
// An empty name selects DefaultANSICharset.
func NewConverter(charset string) (*Converter, error) {
	if charset == "" {
		charset = DefaultANSICharset
	}
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	return &Converter{charset: charset, ansi: enc}, nil
}

// DefaultConverter returns a converter using DefaultANSICharset.
func DefaultConverter() *Converter {
	return &Converter{charset: DefaultANSICharset, ansi: charmap.Windows1252}
}

// Charset returns the name of the ANSI charset.
func (c *Converter) Charset() string {
	return c.charset
}

// lookupCharset resolves an IANA charset name.
// x/text has no US-ASCII charmap, so that one comes from gdamore/encoding.
func lookupCharset(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "us-ascii", "ascii":
		return gdenc.ASCII, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnsupportedCharset, name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCharset, name)
	}
	return enc, nil
}

// Encode converts text to the bytes a document with codepage cp stores.
func (c *Converter) Encode(cp Codepage, text string) []byte {
	switch cp {
	case UTF8:
		out, err := unicode.UTF8.NewEncoder().String(text)
		if err != nil {
			return []byte(text)
		}
		return []byte(out)
	case ANSI:
		return c.encodeANSI(text)
	default:
		return nil
	}
}

// Decode converts stored bytes back to Unicode text.
func (c *Converter) Decode(cp Codepage, data []byte) string {
	switch cp {
	case UTF8:
		out, err := unicode.UTF8.NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(out)
	case ANSI:
		out, err := c.ansi.NewDecoder().Bytes(data)
		if err != nil {
			return string(data)
		}
		return string(out)
	default:
		return ""
	}
}

// encodeANSI narrows text rune by rune, so multi-byte pages work too.
// A rune is stored only if it decodes back to itself; anything else is
// lossy and becomes '?'.
func (c *Converter) encodeANSI(text string) []byte {
	enc := c.ansi.NewEncoder()
	dec := c.ansi.NewDecoder()
	out := make([]byte, 0, len(text))

	for _, r := range text {
		if r == utf8.RuneError {
			out = append(out, unsupportedByte)
			continue
		}
		b, err := enc.String(string(r))
		if err != nil || b == "" {
			out = append(out, unsupportedByte)
			continue
		}
		back, err := dec.String(b)
		if err != nil || back != string(r) {
			out = append(out, unsupportedByte)
			continue
		}
		out = append(out, b...)
	}
	return out
}
