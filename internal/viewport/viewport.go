// Package viewport describes what the rendering pipeline needs from the host
// page: intersection observation when available, scroll events otherwise.
package viewport

// Entry is one intersection notification for an observed target.
type Entry struct {
	Target       any
	Intersecting bool
}

// Observer watches targets for proximity to the viewport.
type Observer interface {
	Observe(target any)
	Unobserve(target any)
	Disconnect()
}

// Metrics is the scroll geometry of the page in CSS pixels.
type Metrics struct {
	ViewportHeight float64
	ScrollY        float64
	DocumentHeight float64
}

// Host is the page environment.
type Host interface {
	// NewObserver returns ok=false when the environment has no intersection
	// capability. marginPx extends the viewport vertically on both sides.
	NewObserver(marginPx int, callback func([]Entry)) (Observer, bool)
	// OnScroll registers fn for scroll events and returns a function removing it.
	OnScroll(fn func()) (remove func())
	Metrics() Metrics
}
