package host

import (
	"github.com/dshills/hostsim/internal/engine/buffer"
	"github.com/dshills/hostsim/internal/engine/codepage"
)

// Editor is the host contract a spell-checker consumes.
type Editor interface {
	// Views and documents
	ViewCount() int
	ActiveView() ViewType
	TargetView() ViewType
	SetTargetView(v ViewType)
	ActivateDocument(index int)
	ActivateDocumentByPath(path string) bool
	SwitchToFile(path string)
	MoveActiveDocumentToOtherView()
	OpenDocument(path string) bool
	IsOpened(path string) bool
	OpenFilenames() []string
	OpenFilenamesAllViews() []string
	ActiveDocumentPath() string
	FullCurrentPath() string
	ActiveFileDirectory() string
	PluginConfigDir() string

	// Text and lines
	ActiveDocumentText(v ViewType) string
	ActiveDocumentLength(v ViewType) int
	TextRange(v ViewType, from, to Position) string
	Encoding(v ViewType) codepage.Codepage
	Lexer(v ViewType) int
	LineFromPosition(v ViewType, pos Position) int
	LineStartPosition(v ViewType, line int) Position
	LineEndPosition(v ViewType, line int) Position
	LineLength(v ViewType, line int) int
	DocumentLineCount(v ViewType) int
	CurrentLineNumber(v ViewType) int
	Line(v ViewType, line int) string
	CurrentLine(v ViewType) string
	FindNext(from Position, needle string) Position

	// Selection
	CurrentPos(v ViewType) Position
	SelectionStart(v ViewType) Position
	SelectionEnd(v ViewType) Position
	SelectedText(v ViewType) string
	SetSelection(from, to Position)

	// Editing
	ReplaceSelection(text string)
	ReplaceText(from, to Position, text string)
	DeleteRange(start Position, length int)
	BeginUndoAction(v ViewType)
	EndUndoAction(v ViewType)
	Undo()
	AddBookmark(line int)

	// Styling and indicators
	StyleAt(v ViewType, pos Position) int
	IsStyleHotspot(v ViewType, style int) bool
	ForceStyleUpdate(from, to Position)
	SetIndicatorStyle(i, style int)
	SetIndicatorForeground(i, color int)
	SetCurrentIndicator(i int)
	IndicatorFillRange(from, to Position)
	IndicatorClearRange(from, to Position)

	// Layout
	TextHeight(v ViewType, line int) int
	PointXFromPosition(v ViewType, pos Position) int
	PointYFromPosition(v ViewType, pos Position) int
	CharPositionFromPoint(v ViewType, p buffer.Point) Position
	CharPositionFromGlobalPoint(v ViewType, x, y int) (Position, bool)
	EditorRect(v ViewType) buffer.Rect
	FirstVisibleLine(v ViewType) int
	LinesOnScreen(v ViewType) int
	DocumentLineFromVisible(v ViewType, visible int) int
	IsLineVisible(v ViewType, line int) bool
}

var _ Editor = (*Simulator)(nil)
