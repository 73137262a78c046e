package host

import "path/filepath"

// ActivateDocument makes document index of the target view active and makes
// the target view the active view. It panics if index is out of range.
func (s *Simulator) ActivateDocument(index int) {
	s.activeView = s.targetView
	s.View(s.targetView).SetActive(index)
}

// ActivateDocumentByPath activates the first document of the target view
// whose path matches. Nothing changes if there is no match.
func (s *Simulator) ActivateDocumentByPath(path string) bool {
	view := s.View(s.targetView)
	i := view.IndexOf(path)
	if i < 0 {
		return false
	}
	s.activeView = s.targetView
	view.SetActive(i)
	return true
}

// SwitchToFile activates path in every view that has it open. Views without
// the path keep their active document. The target view is left unchanged.
func (s *Simulator) SwitchToFile(path string) {
	target := s.targetView
	for _, v := range AllViews() {
		s.targetView = v
		s.ActivateDocumentByPath(path)
	}
	s.targetView = target
}

// MoveActiveDocumentToOtherView moves the active document of the active view
// to the end of the other view and activates it there. The document itself
// is moved, not copied, so its full state travels with it.
func (s *Simulator) MoveActiveDocumentToOtherView() {
	src := s.View(s.activeView)
	if src.Active() == nil {
		return
	}
	doc := src.Remove(src.ActiveIndex())
	dst := s.activeView.Other()
	s.View(dst).Append(doc)
	s.logger.WithFields(map[string]any{"path": doc.Path(), "from": s.activeView, "to": dst}).Debug("moved document")
}

// IsOpened reports whether any view has a document with path.
func (s *Simulator) IsOpened(path string) bool {
	for _, v := range AllViews() {
		if s.View(v).IndexOf(path) >= 0 {
			return true
		}
	}
	return false
}

// OpenFilenames returns the paths of the target view's documents.
func (s *Simulator) OpenFilenames() []string {
	return s.View(s.targetView).Paths()
}

// OpenFilenamesAllViews returns the paths of every document, primary view
// first.
func (s *Simulator) OpenFilenamesAllViews() []string {
	var out []string
	for _, v := range AllViews() {
		out = append(out, s.View(v).Paths()...)
	}
	return out
}

// ActiveDocumentPath returns the path of the active view's document.
func (s *Simulator) ActiveDocumentPath() string {
	doc := s.ActiveDocument(s.activeView)
	if doc == nil {
		return ""
	}
	return doc.Path()
}

// FullCurrentPath returns the path of the active view's document.
func (s *Simulator) FullCurrentPath() string {
	return s.ActiveDocumentPath()
}

// ActiveFileDirectory returns the directory part of the active path, or ""
// when the path has none.
func (s *Simulator) ActiveFileDirectory() string {
	path := s.ActiveDocumentPath()
	if path == "" {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}
