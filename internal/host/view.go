package host

import (
	"fmt"
	"strings"

	"github.com/dshills/hostsim/internal/engine/document"
)

// ViewType selects one of the two panes of the host.
type ViewType int

const (
	// Primary is the main view.
	Primary ViewType = iota
	// Secondary is the split view.
	Secondary
)

// ViewCount is the number of views a host has.
const ViewCount = 2

// AllViews returns every view in order.
func AllViews() []ViewType {
	return []ViewType{Primary, Secondary}
}

// String returns the view's name.
func (v ViewType) String() string {
	switch v {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// Valid reports whether v names an existing view.
func (v ViewType) Valid() bool {
	return v == Primary || v == Secondary
}

// Other returns the opposite view.
func (v ViewType) Other() ViewType {
	if v == Primary {
		return Secondary
	}
	return Primary
}

// ParseViewType parses "primary"/"main"/"0" or "secondary"/"sub"/"1".
func ParseViewType(s string) (ViewType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "main", "0":
		return Primary, nil
	case "secondary", "sub", "1":
		return Secondary, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
}

// View is an ordered list of documents with one of them active.
type View struct {
	docs   []*document.Document
	active int
}

func newView() *View {
	return &View{active: -1}
}

// Len returns the number of documents in the view.
func (v *View) Len() int {
	return len(v.docs)
}

// Documents returns the documents in order.
func (v *View) Documents() []*document.Document {
	return append([]*document.Document(nil), v.docs...)
}

// ActiveIndex returns the index of the active document, or -1.
func (v *View) ActiveIndex() int {
	return v.active
}

// Active returns the active document, or nil if the view is empty.
func (v *View) Active() *document.Document {
	if v.active < 0 || v.active >= len(v.docs) {
		return nil
	}
	return v.docs[v.active]
}

// SetActive makes document i active. It panics if i is out of range.
func (v *View) SetActive(i int) {
	if i < 0 || i >= len(v.docs) {
		panic(fmt.Sprintf("host: document index %d out of range (view has %d)", i, len(v.docs)))
	}
	v.active = i
}

// IndexOf returns the index of the first document with path, or -1.
func (v *View) IndexOf(path string) int {
	for i, d := range v.docs {
		if d.Path() == path {
			return i
		}
	}
	return -1
}

// Append adds doc at the end and makes it active.
func (v *View) Append(doc *document.Document) {
	v.docs = append(v.docs, doc)
	v.active = len(v.docs) - 1
}

// Remove takes document i out of the view. The active index stays where it
// was unless that no longer names a document, in which case it moves to the
// last document (or -1 when the view is empty).
func (v *View) Remove(i int) *document.Document {
	doc := v.docs[i]
	copy(v.docs[i:], v.docs[i+1:])
	v.docs[len(v.docs)-1] = nil
	v.docs = v.docs[:len(v.docs)-1]
	if v.active >= len(v.docs) {
		v.active = len(v.docs) - 1
	}
	return doc
}

// Paths returns the path of every document in order.
func (v *View) Paths() []string {
	paths := make([]string, len(v.docs))
	for i, d := range v.docs {
		paths[i] = d.Path()
	}
	return paths
}
