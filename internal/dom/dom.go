//go:build js && wasm

// Package dom binds the rendering pipeline to the browser through syscall/js.
// It holds no state of its own beyond what the browser APIs require.
package dom

import (
	"strconv"
	"syscall/js"
	"time"

	"github.com/amankumarsingh77/streamscale-catalog/internal/debounce"
)

// Node is anything backed by a DOM element.
type Node interface {
	JSValue() js.Value
}

// Element wraps a DOM element so it can be used as an observer target.
type Element struct {
	el js.Value
}

func NewElement(el js.Value) *Element { return &Element{el: el} }

func (e *Element) JSValue() js.Value { return e.el }

func document() js.Value { return js.Global().Get("document") }

// ByID returns the element with the given id, or js.Null().
func ByID(id string) js.Value {
	return document().Call("getElementById", id)
}

func setText(el js.Value, text string) {
	if el.Truthy() {
		el.Set("textContent", text)
	}
}

// Settings are the client options rendered onto <body> as data-* attributes.
type Settings struct {
	Page             string
	DocumentPath     string
	DetailPath       string
	Locale           string
	BatchSize        int
	ImageMarginPx    int
	ScrollMarginPx   int
	PollThresholdPx  int
	SearchDebounceMs int
}

func ReadSettings() Settings {
	ds := document().Get("body").Get("dataset")
	str := func(key, def string) string {
		v := ds.Get(key)
		if v.IsUndefined() || v.String() == "" {
			return def
		}
		return v.String()
	}
	num := func(key string, def int) int {
		n, err := strconv.Atoi(str(key, ""))
		if err != nil || n <= 0 {
			return def
		}
		return n
	}
	return Settings{
		Page:             str("page", "grid"),
		DocumentPath:     str("documentPath", "/video_info.json"),
		DetailPath:       str("detailPath", "/player"),
		Locale:           str("locale", "en"),
		BatchSize:        num("batchSize", 30),
		ImageMarginPx:    num("imageMargin", 500),
		ScrollMarginPx:   num("scrollMargin", 1000),
		PollThresholdPx:  num("pollThreshold", 200),
		SearchDebounceMs: num("debounceMs", 200),
	}
}

// Location returns the current path and raw query string.
func Location() (path, rawQuery string) {
	loc := js.Global().Get("location")
	return loc.Get("pathname").String(), loc.Get("search").String()
}

// TimeoutScheduler runs callbacks on the JS event loop via setTimeout.
type TimeoutScheduler struct{}

var _ debounce.Scheduler = TimeoutScheduler{}

func (TimeoutScheduler) AfterFunc(d time.Duration, f func()) func() {
	done := false
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		if done {
			return nil
		}
		done = true
		cb.Release()
		f()
		return nil
	})
	id := js.Global().Call("setTimeout", cb, d.Milliseconds())
	return func() {
		if done {
			return
		}
		done = true
		js.Global().Call("clearTimeout", id)
		cb.Release()
	}
}

// Defer queues f on the event loop.
func Defer(f func()) {
	TimeoutScheduler{}.AfterFunc(0, f)
}

// Listen attaches fn to a DOM event. The listener lives as long as the page.
func Listen(el js.Value, event string, fn func(this js.Value)) {
	el.Call("addEventListener", event, js.FuncOf(func(this js.Value, _ []js.Value) any {
		fn(this)
		return nil
	}))
}
