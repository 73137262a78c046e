// Package fixture loads YAML descriptions of a host's open documents and
// applies them to a Simulator.
//
//	targetView: secondary
//	views:
//	  primary:
//	    - path: notes.txt
//	      text: "helo wrld"
//	      selection: [0, 4]
//	      indicators:
//	        - id: 0
//	          color: "#ff0000"
//	          ranges: [[0, 4], [5, 9]]
//	  secondary:
//	    - path: legacy.txt
//	      codepage: ansi
//	      text: "café"
package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/engine/document"
	"github.com/dshills/hostsim/internal/engine/indicator"
	"github.com/dshills/hostsim/internal/host"
)

// ErrInvalidFixture indicates a fixture that parses but cannot be applied.
var ErrInvalidFixture = errors.New("invalid fixture")

// Fixture describes the documents open in each view.
type Fixture struct {
	TargetView string                    `yaml:"targetView"`
	Views      map[string][]DocumentSpec `yaml:"views"`
}

// DocumentSpec describes one virtual document.
type DocumentSpec struct {
	Path       string          `yaml:"path"`
	Text       string          `yaml:"text"`
	Codepage   string          `yaml:"codepage"`
	Lexer      int             `yaml:"lexer"`
	Selection  []int           `yaml:"selection"`
	Styles     []StyleSpec     `yaml:"styles"`
	Indicators []IndicatorSpec `yaml:"indicators"`
}

// StyleSpec assigns a style to [From, To).
type StyleSpec struct {
	From  int `yaml:"from"`
	To    int `yaml:"to"`
	Style int `yaml:"style"`
}

// IndicatorSpec configures an indicator and the ranges it flags.
type IndicatorSpec struct {
	ID     int      `yaml:"id"`
	Style  int      `yaml:"style"`
	Color  string   `yaml:"color"`
	Ranges [][2]int `yaml:"ranges"`
}

// Load reads and parses the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a fixture. Unknown keys are rejected so typos surface
// instead of silently producing an empty document.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks everything Apply relies on, so a fixture that validates
// applies without partial failure.
func (f *Fixture) Validate() error {
	if f.TargetView != "" {
		if _, err := host.ParseViewType(f.TargetView); err != nil {
			return fmt.Errorf("%w: targetView: %v", ErrInvalidFixture, err)
		}
	}
	seen := make(map[host.ViewType]string)
	for name, docs := range f.Views {
		v, err := host.ParseViewType(name)
		if err != nil {
			return fmt.Errorf("%w: views: %v", ErrInvalidFixture, err)
		}
		if prev, dup := seen[v]; dup {
			return fmt.Errorf("%w: views %q and %q name the same view", ErrInvalidFixture, prev, name)
		}
		seen[v] = name
		for i, d := range docs {
			if err := d.validate(); err != nil {
				return fmt.Errorf("%w: views.%s[%d]: %v", ErrInvalidFixture, name, i, err)
			}
		}
	}
	return nil
}

func (d DocumentSpec) validate() error {
	if d.Path == "" {
		return errors.New("path is required")
	}
	if d.Codepage != "" {
		if _, err := codepage.Parse(d.Codepage); err != nil {
			return err
		}
	}
	if d.Selection != nil && len(d.Selection) != 2 {
		return fmt.Errorf("selection needs 2 positions, got %d", len(d.Selection))
	}
	for _, s := range d.Styles {
		if s.From < 0 || s.To < s.From {
			return fmt.Errorf("bad style range [%d,%d)", s.From, s.To)
		}
	}
	for _, ind := range d.Indicators {
		if ind.ID < 0 {
			return fmt.Errorf("negative indicator id %d", ind.ID)
		}
		if ind.Color != "" {
			if _, err := indicator.ParseColor(ind.Color); err != nil {
				return err
			}
		}
		for _, r := range ind.Ranges {
			if r[0] < 0 || r[1] < r[0] {
				return fmt.Errorf("bad indicator range [%d,%d)", r[0], r[1])
			}
		}
	}
	return nil
}

// Apply opens every document of the fixture in sim, primary view first,
// then selects the target view.
func (f *Fixture) Apply(sim *host.Simulator) error {
	if err := f.Validate(); err != nil {
		return err
	}
	for _, v := range host.AllViews() {
		for _, d := range f.docs(v) {
			d.apply(sim.OpenVirtualDocument(v, d.Path, ""))
		}
	}
	if f.TargetView != "" {
		v, _ := host.ParseViewType(f.TargetView)
		sim.SetTargetView(v)
	}
	return nil
}

// docs returns the documents listed for v under whichever name it was given.
func (f *Fixture) docs(v host.ViewType) []DocumentSpec {
	for name, docs := range f.Views {
		if pv, _ := host.ParseViewType(name); pv == v {
			return docs
		}
	}
	return nil
}

func (d DocumentSpec) apply(doc *document.Document) {
	if d.Codepage != "" {
		cp, _ := codepage.Parse(d.Codepage)
		doc.SetCodepage(cp)
	}
	doc.SetData(d.Text)
	doc.SetLexer(d.Lexer)
	for _, s := range d.Styles {
		doc.SetStyleRange(s.From, s.To, s.Style)
	}
	for _, ind := range d.Indicators {
		doc.SetIndicatorStyle(ind.ID, ind.Style)
		if ind.Color != "" {
			color, _ := indicator.ParseColor(ind.Color)
			doc.SetIndicatorForeground(ind.ID, color)
		}
		doc.SetCurrentIndicator(ind.ID)
		for _, r := range ind.Ranges {
			doc.FillRange(r[0], r[1])
		}
	}
	if len(d.Selection) == 2 {
		doc.SetSelection(d.Selection[0], d.Selection[1])
	}
}
