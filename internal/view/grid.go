// Package view holds the page controllers. They own all client state and talk
// to the page only through the view interfaces, so the DOM adapter stays a
// thin binding.
package view

import (
	"fmt"
	"time"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/filter"
	"github.com/amankumarsingh77/streamscale-catalog/internal/debounce"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/internal/querystate"
	"github.com/amankumarsingh77/streamscale-catalog/internal/render"
)

// SearchDelay is the quiet period after the last keystroke before the grid
// recomputes.
const SearchDelay = 200 * time.Millisecond

type GridView interface {
	SetControls(s querystate.State)
	SetStats(text string)
	ShowError(msg string)
	// ReplaceURL swaps the current location without adding a history entry.
	ReplaceURL(url string)
}

// Resetter drops pending lazy-image watches. *lazyload.Loader implements it.
type Resetter interface {
	Reset()
}

// Starter is the infinite-scroll trigger. *scroll.Controller implements it.
type Starter interface {
	Start()
	Stop()
}

type GridOptions struct {
	// Path is the location path the query string is appended to.
	Path        string
	SearchDelay time.Duration
	Scheduler   debounce.Scheduler
	Engine      *filter.Engine
}

type Grid struct {
	view     GridView
	engine   *filter.Engine
	renderer *render.Renderer
	images   Resetter
	scroller Starter
	search   *debounce.Debouncer
	path     string

	state   querystate.State
	catalog []models.Video
	visible []models.Video
	loaded  bool
}

// NewGrid wires a grid controller. images and scroller may be nil.
func NewGrid(v GridView, renderer *render.Renderer, images Resetter, scroller Starter, opts GridOptions) *Grid {
	if opts.Path == "" {
		opts.Path = "/"
	}
	if opts.SearchDelay <= 0 {
		opts.SearchDelay = SearchDelay
	}
	if opts.Engine == nil {
		opts.Engine = filter.NewEngineForLocale("en")
	}
	g := &Grid{
		view:     v,
		engine:   opts.Engine,
		renderer: renderer,
		images:   images,
		scroller: scroller,
		path:     opts.Path,
		state:    querystate.State{Sort: filter.SortRelevance},
	}
	g.search = debounce.New(opts.Scheduler, opts.SearchDelay, g.apply)
	return g
}

func (g *Grid) Init(rawQuery string) {
	g.state = querystate.Parse(rawQuery)
	g.view.SetControls(g.state)
}

// Loaded receives the outcome of the catalog fetch. It is called once.
func (g *Grid) Loaded(videos []models.Video, err error) {
	if err != nil {
		g.view.ShowError("Failed to load data: " + err.Error())
		return
	}
	g.catalog = videos
	g.loaded = true
	g.recompute()
	if g.scroller != nil {
		g.scroller.Start()
	}
}

// OnSearchInput records the raw search text and schedules a recompute.
func (g *Grid) OnSearchInput(text string) {
	g.state.Query = text
	g.search.Trigger()
}

func (g *Grid) OnSortChange(key string) {
	g.state.Sort = filter.ParseSortKey(key)
	g.apply()
}

func (g *Grid) apply() {
	g.recompute()
	g.view.ReplaceURL(g.state.Encode(g.path))
}

// recompute is a no-op until the catalog has loaded.
func (g *Grid) recompute() {
	if !g.loaded {
		return
	}
	g.visible = g.engine.Apply(g.catalog, g.state.Query, g.state.Sort)
	g.view.SetStats(fmt.Sprintf("%d videos", len(g.visible)))
	if g.images != nil {
		g.images.Reset()
	}
	g.renderer.Reset(g.visible)
}

func (g *Grid) State() querystate.State { return g.state }

// Visible returns the current visible list. Callers must not modify it.
func (g *Grid) Visible() []models.Video { return g.visible }

func (g *Grid) Close() {
	g.search.Stop()
	if g.scroller != nil {
		g.scroller.Stop()
	}
}
