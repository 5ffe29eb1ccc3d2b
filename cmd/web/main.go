//go:build js && wasm

package main

import (
	"context"
	"math/rand"
	"syscall/js"
	"time"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/filter"
	"github.com/amankumarsingh77/streamscale-catalog/internal/dom"
	"github.com/amankumarsingh77/streamscale-catalog/internal/lazyload"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/internal/render"
	"github.com/amankumarsingh77/streamscale-catalog/internal/scroll"
	"github.com/amankumarsingh77/streamscale-catalog/internal/view"
)

const loadTimeout = 30 * time.Second

type page interface {
	Loaded(videos []models.Video, err error)
}

func main() {
	settings := dom.ReadSettings()
	path, rawQuery := dom.Location()
	host := dom.Host{}
	images := lazyload.New(host, settings.ImageMarginPx)

	var p page
	switch settings.Page {
	case "player":
		p = player(settings, rawQuery, images)
	default:
		p = grid(settings, path, rawQuery, host, images)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		videos, err := dom.LoadCatalog(ctx, settings.DocumentPath)
		dom.Defer(func() { p.Loaded(videos, err) })
	}()

	select {}
}

func grid(s dom.Settings, path, rawQuery string, host dom.Host, images *lazyload.Loader) *view.Grid {
	gv := dom.NewGridView()
	renderer := render.New(dom.NewCardSink(gv.Grid), images, s.BatchSize, s.DetailPath)
	sentinel := dom.NewElement(dom.ByID("sentinel"))
	scroller := scroll.New(host, sentinel, renderer, s.ScrollMarginPx, s.PollThresholdPx)

	g := view.NewGrid(gv, renderer, images, scroller, view.GridOptions{
		Path:        path,
		SearchDelay: time.Duration(s.SearchDebounceMs) * time.Millisecond,
		Scheduler:   dom.TimeoutScheduler{},
		Engine:      filter.NewEngineForLocale(s.Locale),
	})
	g.Init(rawQuery)

	dom.Listen(gv.Search, "input", func(this js.Value) {
		g.OnSearchInput(this.Get("value").String())
	})
	dom.Listen(gv.Sort, "change", func(this js.Value) {
		g.OnSortChange(this.Get("value").String())
	})
	return g
}

func player(s dom.Settings, rawQuery string, images *lazyload.Loader) *view.Detail {
	renderer := render.New(dom.NewCardSink(dom.ByID("recGrid")), images, s.BatchSize, s.DetailPath)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	d := view.NewDetail(dom.NewDetailView(), renderer, rng, 0)
	d.Init(rawQuery)
	return d
}
