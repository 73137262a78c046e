package host

import (
	"fmt"

	"github.com/tidwall/sjson"

	"github.com/dshills/hostsim/internal/engine/indicator"
)

// DumpJSON renders the simulator state as a JSON document:
//
//	{"activeView":"primary","targetView":"primary",
//	 "editor":{"width":10000,"height":10000},"views":[
//	  {"name":"primary","active":0,"undoSuppressed":false,"documents":[
//	    {"id":"…","path":"a.txt","text":"…","codepage":"utf8",
//	     "selection":{"start":0,"end":0,"caret":0,"length":0,"empty":true},
//	     "lexer":0,"undoDepth":0,
//	     "indicators":[{"style":0,"foreground":"#000000","underlined":["…"]}]}]}]}
//
// Arrays are created before their elements so that each numeric path
// component appends to an existing array.
func (s *Simulator) DumpJSON() (string, error) {
	js := "{}"
	var err error
	set := func(path string, value any) {
		if err != nil {
			return
		}
		js, err = sjson.Set(js, path, value)
	}

	set("activeView", s.activeView.String())
	set("targetView", s.targetView.String())
	set("editor.width", s.editorRect.Width())
	set("editor.height", s.editorRect.Height())
	set("views", []any{})

	for vi, v := range AllViews() {
		view := s.View(v)
		base := fmt.Sprintf("views.%d", vi)
		set(base, map[string]any{})
		set(base+".name", v.String())
		set(base+".active", view.ActiveIndex())
		set(base+".undoSuppressed", !s.saveUndo[v])
		set(base+".documents", []any{})

		for di, doc := range view.docs {
			p := fmt.Sprintf("%s.documents.%d", base, di)
			sel := doc.Selection()
			set(p, map[string]any{})
			set(p+".id", doc.ID().String())
			set(p+".path", doc.Path())
			set(p+".text", doc.DecodedText())
			set(p+".length", doc.Len())
			set(p+".codepage", doc.Codepage().String())
			set(p+".selection.start", sel.Start)
			set(p+".selection.end", sel.End)
			set(p+".selection.caret", sel.Caret)
			set(p+".selection.length", sel.Len())
			set(p+".selection.empty", sel.IsEmpty())
			set(p+".lexer", doc.Lexer())
			set(p+".undoDepth", doc.History().Len())

			set(p+".indicators", []any{})
			for i := 0; i < doc.Indicators().Len(); i++ {
				ind := doc.Indicator(i)
				ip := fmt.Sprintf("%s.indicators.%d", p, i)
				set(ip, map[string]any{})
				set(ip+".style", ind.Style)
				set(ip+".foreground", indicator.FormatColor(ind.Foreground))
				words := doc.UnderlinedWords(i)
				if words == nil {
					words = []string{}
				}
				set(ip+".underlined", words)
			}
		}
	}

	if err != nil {
		return "", fmt.Errorf("dumping host state: %w", err)
	}
	return js, nil
}
