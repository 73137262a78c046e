package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hostsim/internal/engine/codepage"
	"github.com/dshills/hostsim/internal/host"
)

// hostModule implements the "host" Lua table.
type hostModule struct {
	sim *host.Simulator
}

func newHostModule(sim *host.Simulator) *hostModule {
	return &hostModule{sim: sim}
}

func (m *hostModule) register(L *lua.LState) {
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		// views and documents
		"open":               m.open,
		"target_view":        m.targetView,
		"set_target_view":    m.setTargetView,
		"active_view":        m.activeView,
		"activate":           m.activate,
		"switch_to_file":     m.switchToFile,
		"move_to_other_view": m.moveToOtherView,
		"is_opened":          m.isOpened,
		"filenames":          m.filenames,
		"all_filenames":      m.allFilenames,
		"path":               m.path,

		// text
		"text":          m.text,
		"decoded_text":  m.decodedText,
		"length":        m.length,
		"text_range":    m.textRange,
		"set_text":      m.setText,
		"encoding":      m.encoding,
		"set_codepage":  m.setCodepage,
		"find_next":     m.findNext,
		"selection":     m.selection,
		"selected_text": m.selectedText,
		"set_selection": m.setSelection,

		// lines
		"line_from_position": m.lineFromPosition,
		"line_start":         m.lineStart,
		"line_end":           m.lineEnd,
		"line_length":        m.lineLength,
		"line_count":         m.lineCount,
		"line":               m.line,
		"current_line":       m.currentLine,

		// editing
		"replace_selection": m.replaceSelection,
		"replace_text":      m.replaceText,
		"delete_range":      m.deleteRange,
		"undo":              m.undo,
		"begin_undo":        m.beginUndo,
		"end_undo":          m.endUndo,

		// styles and indicators
		"style_at":        m.styleAt,
		"set_style_range": m.setStyleRange,
		"set_indicator":   m.setIndicator,
		"indicator_style": m.indicatorStyle,
		"indicator_color": m.indicatorColor,
		"fill":            m.fill,
		"clear":           m.clear,
		"underlined":      m.underlined,

		"dump": m.dump,
	})
	L.SetField(mod, "PRIMARY", lua.LString(host.Primary.String()))
	L.SetField(mod, "SECONDARY", lua.LString(host.Secondary.String()))
	L.SetGlobal("host", mod)
}

// checkView reads a view name or number at argument n.
func checkView(L *lua.LState, n int) host.ViewType {
	v, err := host.ParseViewType(L.ToStringMeta(L.CheckAny(n)).String())
	if err != nil {
		L.ArgError(n, err.Error())
	}
	return v
}

// optView reads an optional view at argument n, defaulting to the target view.
func (m *hostModule) optView(L *lua.LState, n int) host.ViewType {
	if L.Get(n) == lua.LNil {
		return m.sim.TargetView()
	}
	return checkView(L, n)
}

func pushStrings(L *lua.LState, items []string) int {
	t := L.CreateTable(len(items), 0)
	for _, s := range items {
		t.Append(lua.LString(s))
	}
	L.Push(t)
	return 1
}

func pushInt(L *lua.LState, n int) int {
	L.Push(lua.LNumber(n))
	return 1
}

func pushString(L *lua.LState, s string) int {
	L.Push(lua.LString(s))
	return 1
}

// open(view, path, text)
func (m *hostModule) open(L *lua.LState) int {
	v := checkView(L, 1)
	path := L.CheckString(2)
	text := L.OptString(3, "")
	m.sim.OpenVirtualDocument(v, path, text)
	return 0
}

func (m *hostModule) targetView(L *lua.LState) int {
	return pushString(L, m.sim.TargetView().String())
}

func (m *hostModule) setTargetView(L *lua.LState) int {
	m.sim.SetTargetView(checkView(L, 1))
	return 0
}

func (m *hostModule) activeView(L *lua.LState) int {
	return pushString(L, m.sim.ActiveView().String())
}

// activate(index) activates by 0-based index and raises on a bad index;
// activate(path) returns whether the path was found.
func (m *hostModule) activate(L *lua.LState) int {
	switch arg := L.CheckAny(1).(type) {
	case lua.LNumber:
		i := int(arg)
		if i < 0 || i >= m.sim.View(m.sim.TargetView()).Len() {
			L.ArgError(1, "document index out of range")
		}
		m.sim.ActivateDocument(i)
		return 0
	case lua.LString:
		L.Push(lua.LBool(m.sim.ActivateDocumentByPath(string(arg))))
		return 1
	default:
		L.ArgError(1, "index or path expected")
		return 0
	}
}

func (m *hostModule) switchToFile(L *lua.LState) int {
	m.sim.SwitchToFile(L.CheckString(1))
	return 0
}

func (m *hostModule) moveToOtherView(L *lua.LState) int {
	m.sim.MoveActiveDocumentToOtherView()
	return 0
}

func (m *hostModule) isOpened(L *lua.LState) int {
	L.Push(lua.LBool(m.sim.IsOpened(L.CheckString(1))))
	return 1
}

func (m *hostModule) filenames(L *lua.LState) int {
	return pushStrings(L, m.sim.OpenFilenames())
}

func (m *hostModule) allFilenames(L *lua.LState) int {
	return pushStrings(L, m.sim.OpenFilenamesAllViews())
}

func (m *hostModule) path(L *lua.LState) int {
	return pushString(L, m.sim.ActiveDocumentPath())
}

func (m *hostModule) text(L *lua.LState) int {
	return pushString(L, m.sim.ActiveDocumentText(m.optView(L, 1)))
}

func (m *hostModule) decodedText(L *lua.LState) int {
	return pushString(L, m.sim.ActiveDocumentDecodedText(m.optView(L, 1)))
}

func (m *hostModule) length(L *lua.LState) int {
	return pushInt(L, m.sim.ActiveDocumentLength(m.optView(L, 1)))
}

// text_range(from, to, [view])
func (m *hostModule) textRange(L *lua.LState) int {
	return pushString(L, m.sim.TextRange(m.optView(L, 3), L.CheckInt(1), L.CheckInt(2)))
}

// set_text(text, [view]) stores text converted per the codepage.
func (m *hostModule) setText(L *lua.LState) int {
	m.sim.SetActiveDocumentText(m.optView(L, 2), L.CheckString(1))
	return 0
}

func (m *hostModule) encoding(L *lua.LState) int {
	return pushString(L, m.sim.Encoding(m.optView(L, 1)).String())
}

// set_codepage(name, [view])
func (m *hostModule) setCodepage(L *lua.LState) int {
	cp, err := codepage.Parse(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())
	}
	m.sim.SetCodepage(m.optView(L, 2), cp)
	return 0
}

// find_next(from, needle) -> position or -1
func (m *hostModule) findNext(L *lua.LState) int {
	return pushInt(L, m.sim.FindNext(L.CheckInt(1), L.CheckString(2)))
}

// selection([view]) -> start, end, caret
func (m *hostModule) selection(L *lua.LState) int {
	v := m.optView(L, 1)
	L.Push(lua.LNumber(m.sim.SelectionStart(v)))
	L.Push(lua.LNumber(m.sim.SelectionEnd(v)))
	L.Push(lua.LNumber(m.sim.CurrentPos(v)))
	return 3
}

func (m *hostModule) selectedText(L *lua.LState) int {
	return pushString(L, m.sim.SelectedText(m.optView(L, 1)))
}

func (m *hostModule) setSelection(L *lua.LState) int {
	m.sim.SetSelection(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (m *hostModule) lineFromPosition(L *lua.LState) int {
	return pushInt(L, m.sim.LineFromPosition(m.optView(L, 2), L.CheckInt(1)))
}

func (m *hostModule) lineStart(L *lua.LState) int {
	return pushInt(L, m.sim.LineStartPosition(m.optView(L, 2), L.CheckInt(1)))
}

func (m *hostModule) lineEnd(L *lua.LState) int {
	return pushInt(L, m.sim.LineEndPosition(m.optView(L, 2), L.CheckInt(1)))
}

func (m *hostModule) lineLength(L *lua.LState) int {
	return pushInt(L, m.sim.LineLength(m.optView(L, 2), L.CheckInt(1)))
}

func (m *hostModule) lineCount(L *lua.LState) int {
	return pushInt(L, m.sim.DocumentLineCount(m.optView(L, 1)))
}

func (m *hostModule) line(L *lua.LState) int {
	return pushString(L, m.sim.Line(m.optView(L, 2), L.CheckInt(1)))
}

func (m *hostModule) currentLine(L *lua.LState) int {
	return pushString(L, m.sim.CurrentLine(m.optView(L, 1)))
}

func (m *hostModule) replaceSelection(L *lua.LState) int {
	m.sim.ReplaceSelection(L.CheckString(1))
	return 0
}

// replace_text(from, to, text) raises if the range is outside the document.
func (m *hostModule) replaceText(L *lua.LState) int {
	from, to := L.CheckInt(1), L.CheckInt(2)
	if n := m.sim.ActiveDocumentLength(m.sim.TargetView()); n >= 0 && (from < 0 || to < from || to > n) {
		L.RaiseError("replace_text: [%d,%d) outside document of length %d", from, to, n)
	}
	m.sim.ReplaceText(from, to, L.CheckString(3))
	return 0
}

// delete_range(start, length) raises if the range is outside the document.
func (m *hostModule) deleteRange(L *lua.LState) int {
	start, length := L.CheckInt(1), L.CheckInt(2)
	if n := m.sim.ActiveDocumentLength(m.sim.TargetView()); n >= 0 && (start < 0 || length < 0 || start+length > n) {
		L.RaiseError("delete_range: [%d,%d) outside document of length %d", start, start+length, n)
	}
	m.sim.DeleteRange(start, length)
	return 0
}

func (m *hostModule) undo(L *lua.LState) int {
	m.sim.Undo()
	return 0
}

func (m *hostModule) beginUndo(L *lua.LState) int {
	m.sim.BeginUndoAction(m.optView(L, 1))
	return 0
}

func (m *hostModule) endUndo(L *lua.LState) int {
	m.sim.EndUndoAction(m.optView(L, 1))
	return 0
}

func (m *hostModule) styleAt(L *lua.LState) int {
	return pushInt(L, m.sim.StyleAt(m.optView(L, 2), L.CheckInt(1)))
}

// set_style_range(from, to, style, [view])
func (m *hostModule) setStyleRange(L *lua.LState) int {
	m.sim.SetStyleRange(m.optView(L, 4), L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))
	return 0
}

func (m *hostModule) setIndicator(L *lua.LState) int {
	m.sim.SetCurrentIndicator(checkIndicator(L, 1))
	return 0
}

func (m *hostModule) indicatorStyle(L *lua.LState) int {
	m.sim.SetIndicatorStyle(checkIndicator(L, 1), L.CheckInt(2))
	return 0
}

// indicator_color(id, "#rrggbb")
func (m *hostModule) indicatorColor(L *lua.LState) int {
	if err := m.sim.SetIndicatorForegroundHex(checkIndicator(L, 1), L.CheckString(2)); err != nil {
		L.ArgError(2, err.Error())
	}
	return 0
}

func (m *hostModule) fill(L *lua.LState) int {
	m.sim.IndicatorFillRange(L.CheckInt(1), L.CheckInt(2))
	return 0
}

func (m *hostModule) clear(L *lua.LState) int {
	m.sim.IndicatorClearRange(L.CheckInt(1), L.CheckInt(2))
	return 0
}

// underlined(id, [view]) -> {word, ...}
func (m *hostModule) underlined(L *lua.LState) int {
	return pushStrings(L, m.sim.UnderlinedWords(m.optView(L, 2), L.CheckInt(1)))
}

func (m *hostModule) dump(L *lua.LState) int {
	js, err := m.sim.DumpJSON()
	if err != nil {
		L.RaiseError("dump: %v", err)
	}
	return pushString(L, js)
}

func checkIndicator(L *lua.LState, n int) int {
	i := L.CheckInt(n)
	if i < 0 {
		L.ArgError(n, "indicator id must be non-negative")
	}
	return i
}
