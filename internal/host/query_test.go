package host

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/hostsim/internal/engine/codepage"
)

func TestLineQueries(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "l.txt", "one\ntwo\nthree")

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"LineFromPosition(0)", s.LineFromPosition(Primary, 0), 0},
		{"LineFromPosition(3)", s.LineFromPosition(Primary, 3), 0},
		{"LineFromPosition(4)", s.LineFromPosition(Primary, 4), 1},
		{"LineFromPosition(13)", s.LineFromPosition(Primary, 13), 2},
		{"LineStartPosition(1)", s.LineStartPosition(Primary, 1), 4},
		{"LineStartPosition(2)", s.LineStartPosition(Primary, 2), 8},
		{"LineEndPosition(0)", s.LineEndPosition(Primary, 0), 3},
		{"LineEndPosition(2)", s.LineEndPosition(Primary, 2), 13},
		{"LineLength(1)", s.LineLength(Primary, 1), 3},
		{"LineLength(2)", s.LineLength(Primary, 2), 5},
		{"LineLength(3)", s.LineLength(Primary, 3), -1},
		{"DocumentLineCount", s.DocumentLineCount(Primary), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	if got := s.Line(Primary, 1); got != "two\n" {
		t.Errorf("Line(1) = %q, want %q", got, "two\n")
	}
	if got := s.Line(Primary, 2); got != "three" {
		t.Errorf("Line(2) = %q, want three", got)
	}
}

func TestLineStartRoundTrip(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "l.txt", "\nab\n\ncd\n")

	for n := 0; n <= s.DocumentLineCount(Primary); n++ {
		start := s.LineStartPosition(Primary, n)
		if got := s.LineFromPosition(Primary, start); got != n {
			t.Errorf("LineFromPosition(LineStartPosition(%d)=%d) = %d", n, start, got)
		}
	}
}

func TestCurrentLine(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "l.txt", "one\ntwo\nthree")
	s.SetSelection(5, 5)

	if s.CurrentLineNumber(Primary) != 1 {
		t.Errorf("CurrentLineNumber() = %d, want 1", s.CurrentLineNumber(Primary))
	}
	if got := s.CurrentLine(Primary); got != "two\n" {
		t.Errorf("CurrentLine() = %q", got)
	}
}

func TestFindNext(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "f.txt", "Hello hello")

	tests := []struct {
		from   int
		needle string
		want   int
	}{
		{0, "HELLO", 0},
		{1, "hello", 6},
		{7, "hello", -1},
		{-3, "lo h", 3},
		{0, "absent", -1},
	}
	for _, tt := range tests {
		if got := s.FindNext(tt.from, tt.needle); got != tt.want {
			t.Errorf("FindNext(%d, %q) = %d, want %d", tt.from, tt.needle, got, tt.want)
		}
	}
}

func TestUnderlinedWords(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "c.txt", "cat dog")
	s.SetCurrentIndicator(0)
	s.IndicatorFillRange(0, 3)
	s.IndicatorFillRange(4, 7)

	if diff := cmp.Diff([]string{"cat", "dog"}, s.UnderlinedWords(Primary, 0)); diff != "" {
		t.Errorf("UnderlinedWords (-want +got):\n%s", diff)
	}

	s.IndicatorFillRange(4, 7)
	if diff := cmp.Diff([]string{"cat", "dog"}, s.UnderlinedWords(Primary, 0)); diff != "" {
		t.Errorf("repeated fill changed result (-want +got):\n%s", diff)
	}

	s.IndicatorClearRange(0, 3)
	if diff := cmp.Diff([]string{"dog"}, s.UnderlinedWords(Primary, 0)); diff != "" {
		t.Errorf("after clear (-want +got):\n%s", diff)
	}

	s.IndicatorFillRange(3, 4)
	if diff := cmp.Diff([]string{" dog"}, s.UnderlinedWords(Primary, 0)); diff != "" {
		t.Errorf("adjacent runs should merge (-want +got):\n%s", diff)
	}

	if words := s.UnderlinedWords(Primary, 7); words != nil {
		t.Errorf("unknown indicator = %v, want nil", words)
	}
}

func TestUnderlinedWords_FollowEdits(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "c.txt", "cat dog")
	s.SetCurrentIndicator(0)
	s.IndicatorFillRange(4, 7)

	s.ReplaceText(0, 3, "horse")

	if diff := cmp.Diff([]string{"dog"}, s.UnderlinedWords(Primary, 0)); diff != "" {
		t.Errorf("marks should move with the text (-want +got):\n%s", diff)
	}
}

func TestIndicatorAppearance(t *testing.T) {
	s := New()
	doc := s.OpenVirtualDocument(Primary, "c.txt", "cat")
	s.SetIndicatorStyle(2, 1)
	if err := s.SetIndicatorForegroundHex(2, "#ff0000"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetIndicatorForegroundHex(2, "red"); err == nil {
		t.Error("expected error for malformed colour")
	}

	ind := doc.Indicator(2)
	if ind == nil {
		t.Fatal("indicator 2 should exist")
	}
	if ind.Style != 1 || ind.Foreground != 0x0000FF {
		t.Errorf("indicator = style %d fg %#x", ind.Style, ind.Foreground)
	}
}

func TestCodepageRoundTrip(t *testing.T) {
	t.Run("utf8 lossless", func(t *testing.T) {
		s := New()
		text := "héllo wörld 日本"
		s.OpenVirtualDocument(Primary, "u.txt", text)
		if got := s.ActiveDocumentDecodedText(Primary); got != text {
			t.Errorf("decoded = %q, want %q", got, text)
		}
		if s.ActiveDocumentLength(Primary) != len(text) {
			t.Errorf("length = %d, want %d bytes", s.ActiveDocumentLength(Primary), len(text))
		}
		if s.Encoding(Primary) != codepage.UTF8 {
			t.Errorf("Encoding() = %v", s.Encoding(Primary))
		}
	})

	t.Run("ansi lossy", func(t *testing.T) {
		s := New(WithDefaultCodepage(codepage.ANSI))
		s.OpenVirtualDocument(Primary, "a.txt", "héllo 日本")
		if s.ActiveDocumentLength(Primary) != 8 {
			t.Errorf("length = %d, want one byte per character", s.ActiveDocumentLength(Primary))
		}
		if got := s.ActiveDocumentDecodedText(Primary); got != "héllo ??" {
			t.Errorf("decoded = %q", got)
		}
		if s.Encoding(Primary) != codepage.ANSI {
			t.Errorf("Encoding() = %v", s.Encoding(Primary))
		}
	})
}

func TestStyleQueries(t *testing.T) {
	s := New()
	s.OpenVirtualDocument(Primary, "s.txt", "abcdef")
	s.SetStyleRange(Primary, 0, 3, 7)
	s.SetHotspotStyle(Primary, 7)
	s.SetLexer(Primary, 4)

	if s.StyleAt(Primary, 1) != 7 || s.StyleAt(Primary, 4) != 0 {
		t.Errorf("StyleAt = %d, %d", s.StyleAt(Primary, 1), s.StyleAt(Primary, 4))
	}
	if s.StyleAt(Primary, 100) != 0 {
		t.Errorf("StyleAt past end = %d, want 0", s.StyleAt(Primary, 100))
	}
	if !s.IsStyleHotspot(Primary, 7) || s.IsStyleHotspot(Primary, 0) {
		t.Error("hotspot mismatch")
	}
	if s.Lexer(Primary) != 4 {
		t.Errorf("Lexer() = %d", s.Lexer(Primary))
	}

	s.SetWholeTextStyle(Primary, 2)
	for i := 0; i < 6; i++ {
		if s.StyleAt(Primary, i) != 2 {
			t.Errorf("StyleAt(%d) = %d after SetWholeTextStyle", i, s.StyleAt(Primary, i))
		}
	}
	s.ForceStyleUpdate(0, 6)
}
