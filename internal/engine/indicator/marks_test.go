package indicator

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/hostsim/internal/engine/buffer"
)

func TestMarksFillGrows(t *testing.T) {
	var m Marks
	m.Fill(2, 5)

	if m.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", m.Len())
	}
	for i := 0; i < 7; i++ {
		want := i >= 2 && i < 5
		if m.IsSet(i) != want {
			t.Errorf("IsSet(%d) = %v, want %v", i, m.IsSet(i), want)
		}
	}
}

func TestMarksFillIdempotent(t *testing.T) {
	var once, twice Marks
	once.Fill(1, 4)
	twice.Fill(1, 4)
	twice.Fill(1, 4)

	if diff := cmp.Diff(once.Runs(), twice.Runs()); diff != "" {
		t.Errorf("runs differ (-once +twice):\n%s", diff)
	}
	if once.Len() != twice.Len() {
		t.Errorf("Len differs: %d vs %d", once.Len(), twice.Len())
	}
}

func TestMarksClearAfterFill(t *testing.T) {
	var m Marks
	m.Fill(0, 10)
	m.Clear(3, 6)

	want := []buffer.Range{{Start: 0, End: 3}, {Start: 6, End: 10}}
	if diff := cmp.Diff(want, m.Runs()); diff != "" {
		t.Errorf("Runs() mismatch (-want +got):\n%s", diff)
	}

	m.Clear(0, 10)
	if runs := m.Runs(); len(runs) != 0 {
		t.Errorf("expected no runs, got %v", runs)
	}
}

func TestMarksClearGrows(t *testing.T) {
	var m Marks
	m.Clear(0, 8)
	if m.Len() != 8 {
		t.Errorf("Len() = %d, want 8", m.Len())
	}
}

func TestMarksEmptyRange(t *testing.T) {
	var m Marks
	m.Fill(5, 5)
	m.Fill(6, 2)
	if m.Len() != 0 {
		t.Errorf("empty ranges should not grow, Len() = %d", m.Len())
	}
}

func TestMarksReset(t *testing.T) {
	var m Marks
	m.Fill(0, 4)
	m.Reset()
	if m.Len() != 4 {
		t.Errorf("Reset should not shrink, Len() = %d", m.Len())
	}
	if len(m.Runs()) != 0 {
		t.Error("Reset should clear all marks")
	}
}

func TestMarksSplice(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		n        int
		want     []buffer.Range
	}{
		{"erase before run", 0, 2, 0, []buffer.Range{{Start: 2, End: 5}}},
		{"erase inside run", 5, 6, 0, []buffer.Range{{Start: 4, End: 6}}},
		{"insert before run", 1, 1, 3, []buffer.Range{{Start: 7, End: 10}}},
		{"replace run", 4, 7, 2, nil},
		{"beyond end", 20, 25, 4, []buffer.Range{{Start: 4, End: 7}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Marks
			m.Fill(4, 7)
			m.Splice(tt.from, tt.to, tt.n)
			if diff := cmp.Diff(tt.want, m.Runs()); diff != "" {
				t.Errorf("Runs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetGrowsOnSelect(t *testing.T) {
	var s Set
	s.Select(3)
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if s.Current() != 3 {
		t.Errorf("Current() = %d, want 3", s.Current())
	}
	if s.Get(7) != nil {
		t.Error("Get should not grow the set")
	}

	s.Fill(0, 2)
	if !s.Get(3).Marks.IsSet(1) {
		t.Error("fill should apply to the current indicator")
	}
	if s.Get(0).Marks.IsSet(1) {
		t.Error("fill leaked into indicator 0")
	}
}

func TestSetSaveRestoreMarks(t *testing.T) {
	var s Set
	s.Fill(6, 10)
	saved := s.SaveMarks()

	s.Splice(0, 6, 0)
	s.Select(2)
	s.Fill(0, 3)
	s.RestoreMarks(saved)

	want := []buffer.Range{{Start: 6, End: 10}}
	if diff := cmp.Diff(want, s.Get(0).Marks.Runs()); diff != "" {
		t.Errorf("restored runs (-want +got):\n%s", diff)
	}
	if runs := s.Get(2).Marks.Runs(); runs != nil {
		t.Errorf("indicator created after save = %v, want no marks", runs)
	}

	// The saved copy stays usable after a restore.
	s.Select(0)
	s.Clear(0, 10)
	s.RestoreMarks(saved)
	if !s.Get(0).Marks.IsSet(7) {
		t.Error("second restore lost marks")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#ff0000")
	if err != nil {
		t.Fatal(err)
	}
	if c != 0x0000FF {
		t.Errorf("red = %#06x, want 0x0000ff", c)
	}

	c, err = ParseColor("#0000ff")
	if err != nil {
		t.Fatal(err)
	}
	if c != 0xFF0000 {
		t.Errorf("blue = %#06x, want 0xff0000", c)
	}

	if FormatColor(0x00FF00) != "#00ff00" {
		t.Errorf("FormatColor(green) = %q", FormatColor(0x00FF00))
	}

	if _, err := ParseColor("nope"); err == nil {
		t.Error("expected error for invalid colour")
	}
}
