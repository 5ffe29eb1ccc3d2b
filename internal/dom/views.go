//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/filter"
	"github.com/amankumarsingh77/streamscale-catalog/internal/querystate"
	"github.com/amankumarsingh77/streamscale-catalog/internal/view"
)

type GridView struct {
	Search js.Value
	Sort   js.Value
	Stats  js.Value
	Grid   js.Value
}

var _ view.GridView = (*GridView)(nil)

func NewGridView() *GridView {
	return &GridView{
		Search: ByID("searchInput"),
		Sort:   ByID("sortSelect"),
		Stats:  ByID("videoStats"),
		Grid:   ByID("videoGrid"),
	}
}

func (g *GridView) SetControls(s querystate.State) {
	if s.Query != "" {
		g.Search.Set("value", s.Query)
	}
	if s.Sort != "" && s.Sort != filter.SortRelevance {
		g.Sort.Set("value", string(s.Sort))
	}
}

func (g *GridView) SetStats(text string) { setText(g.Stats, text) }

func (g *GridView) ShowError(msg string) {
	g.Grid.Set("innerHTML", "")
	div := document().Call("createElement", "div")
	div.Set("className", "error")
	div.Set("textContent", msg)
	g.Grid.Call("appendChild", div)
}

func (g *GridView) ReplaceURL(url string) {
	js.Global().Get("history").Call("replaceState", js.Null(), "", url)
}

type DetailView struct {
	Title    js.Value
	Video    js.Value
	Meta     js.Value
	Download js.Value
	Open     js.Value
}

var _ view.DetailView = (*DetailView)(nil)

func NewDetailView() *DetailView {
	return &DetailView{
		Title:    ByID("videoTitle"),
		Video:    ByID("videoEl"),
		Meta:     ByID("videoMeta"),
		Download: ByID("downloadBtn"),
		Open:     ByID("openSourceBtn"),
	}
}

func (d *DetailView) ShowPlayer(p view.Player) {
	setText(d.Title, p.Title)
	document().Set("title", p.Title)
	if d.Video.Truthy() {
		d.Video.Set("src", p.Source)
		d.Video.Set("poster", p.Poster)
	}
	if d.Download.Truthy() {
		d.Download.Set("href", p.DownloadHref)
	}
	if d.Open.Truthy() {
		d.Open.Set("href", p.OpenHref)
	}
	setText(d.Meta, p.Meta)
}

func (d *DetailView) ShowNotFound(title, hint string) {
	setText(d.Title, title)
	setText(d.Meta, hint)
}

func (d *DetailView) ShowError(title, msg string) {
	setText(d.Title, title)
	setText(d.Meta, msg)
}
