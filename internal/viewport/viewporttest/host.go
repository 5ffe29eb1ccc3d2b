// Package viewporttest provides an in-memory viewport.Host for tests.
package viewporttest

import "github.com/amankumarsingh77/streamscale-catalog/internal/viewport"

// Host is a scriptable viewport.Host. With Intersection false it behaves like a
// browser without IntersectionObserver.
type Host struct {
	Intersection bool
	Geometry     viewport.Metrics

	Observers []*Observer
	scroll    map[int]func()
	nextID    int
}

func NewHost(intersection bool) *Host {
	return &Host{Intersection: intersection, scroll: map[int]func(){}}
}

func (h *Host) NewObserver(marginPx int, callback func([]viewport.Entry)) (viewport.Observer, bool) {
	if !h.Intersection {
		return nil, false
	}
	o := &Observer{MarginPx: marginPx, callback: callback}
	h.Observers = append(h.Observers, o)
	return o, true
}

func (h *Host) OnScroll(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.scroll[id] = fn
	return func() { delete(h.scroll, id) }
}

func (h *Host) Metrics() viewport.Metrics { return h.Geometry }

// Scroll moves the page and dispatches one scroll event.
func (h *Host) Scroll(scrollY float64) {
	h.Geometry.ScrollY = scrollY
	for _, fn := range h.scroll {
		fn()
	}
}

// ScrollListeners reports how many scroll handlers are attached.
func (h *Host) ScrollListeners() int { return len(h.scroll) }

// Observer records observed targets and lets tests fire intersections.
type Observer struct {
	MarginPx     int
	Disconnected bool

	targets  []any
	callback func([]viewport.Entry)
}

func (o *Observer) Observe(target any) {
	for _, t := range o.targets {
		if t == target {
			return
		}
	}
	o.targets = append(o.targets, target)
}

func (o *Observer) Unobserve(target any) {
	for i, t := range o.targets {
		if t == target {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			return
		}
	}
}

func (o *Observer) Disconnect() {
	o.targets = nil
	o.Disconnected = true
}

// Targets returns a copy of the currently observed targets.
func (o *Observer) Targets() []any {
	return append([]any(nil), o.targets...)
}

// Watching reports whether target is observed.
func (o *Observer) Watching(target any) bool {
	for _, t := range o.targets {
		if t == target {
			return true
		}
	}
	return false
}

// Fire delivers one callback with the given targets marked intersecting.
// Targets that are not observed are skipped, as a browser would.
func (o *Observer) Fire(targets ...any) {
	entries := make([]viewport.Entry, 0, len(targets))
	for _, t := range targets {
		if o.Watching(t) {
			entries = append(entries, viewport.Entry{Target: t, Intersecting: true})
		}
	}
	if len(entries) > 0 {
		o.callback(entries)
	}
}

// FireLeaving delivers a non-intersecting entry for target.
func (o *Observer) FireLeaving(target any) {
	if o.Watching(target) {
		o.callback([]viewport.Entry{{Target: target, Intersecting: false}})
	}
}
