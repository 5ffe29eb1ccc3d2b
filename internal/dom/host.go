//go:build js && wasm

package dom

import (
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/amankumarsingh77/streamscale-catalog/internal/viewport"
)

const observeKeyAttr = "observeKey"

// js.Value is not comparable, so observed elements are matched back to their
// Go targets through a data attribute.
var nextObserveKey int

// Host is the browser window as a viewport.Host.
type Host struct{}

var _ viewport.Host = Host{}

func (Host) NewObserver(marginPx int, callback func([]viewport.Entry)) (viewport.Observer, bool) {
	ctor := js.Global().Get("IntersectionObserver")
	if ctor.IsUndefined() {
		return nil, false
	}
	o := &observer{targets: map[string]any{}, callback: callback}
	o.fn = js.FuncOf(o.onEntries)
	opts := js.ValueOf(map[string]any{"rootMargin": fmt.Sprintf("%dpx 0px", marginPx)})
	o.obs = ctor.New(o.fn, opts)
	return o, true
}

func (Host) OnScroll(fn func()) func() {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	opts := js.ValueOf(map[string]any{"passive": true})
	win := js.Global()
	win.Call("addEventListener", "scroll", cb, opts)
	return func() {
		win.Call("removeEventListener", "scroll", cb, opts)
		cb.Release()
	}
}

func (Host) Metrics() viewport.Metrics {
	win := js.Global()
	return viewport.Metrics{
		ViewportHeight: win.Get("innerHeight").Float(),
		ScrollY:        win.Get("scrollY").Float(),
		DocumentHeight: document().Get("body").Get("offsetHeight").Float(),
	}
}

type observer struct {
	obs      js.Value
	fn       js.Func
	targets  map[string]any
	callback func([]viewport.Entry)
}

func (o *observer) Observe(target any) {
	n, ok := target.(Node)
	if !ok {
		return
	}
	el := n.JSValue()
	ds := el.Get("dataset")
	key := ds.Get(observeKeyAttr)
	if key.IsUndefined() {
		nextObserveKey++
		key = js.ValueOf(strconv.Itoa(nextObserveKey))
		ds.Set(observeKeyAttr, key)
	}
	o.targets[key.String()] = target
	o.obs.Call("observe", el)
}

func (o *observer) Unobserve(target any) {
	n, ok := target.(Node)
	if !ok {
		return
	}
	el := n.JSValue()
	if key := el.Get("dataset").Get(observeKeyAttr); !key.IsUndefined() {
		delete(o.targets, key.String())
	}
	o.obs.Call("unobserve", el)
}

func (o *observer) Disconnect() {
	o.obs.Call("disconnect")
	o.targets = map[string]any{}
	o.fn.Release()
}

func (o *observer) onEntries(_ js.Value, args []js.Value) any {
	list := args[0]
	entries := make([]viewport.Entry, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		e := list.Index(i)
		key := e.Get("target").Get("dataset").Get(observeKeyAttr)
		if key.IsUndefined() {
			continue
		}
		target, ok := o.targets[key.String()]
		if !ok {
			continue
		}
		entries = append(entries, viewport.Entry{Target: target, Intersecting: e.Get("isIntersecting").Bool()})
	}
	if len(entries) > 0 {
		o.callback(entries)
	}
	return nil
}
