// Package lazyload defers image fetches until a placeholder nears the viewport.
package lazyload

import "github.com/amankumarsingh77/streamscale-catalog/internal/viewport"

// ImageMarginPx is the proximity margin around the viewport for thumbnails.
const ImageMarginPx = 500

type Image interface {
	LazySource() string
	SetSource(src string)
	MarkFallback()
}

type Mode int

const (
	ModeObserver Mode = iota
	// ModeEager is used without intersection support.
	ModeEager
)

func (m Mode) String() string {
	if m == ModeObserver {
		return "observer"
	}
	return "eager"
}

type Loader struct {
	mode     Mode
	observer viewport.Observer
	pending  map[any]Image
}

func New(host viewport.Host, marginPx int) *Loader {
	l := &Loader{mode: ModeEager, pending: map[any]Image{}}
	if host == nil {
		return l
	}
	if obs, ok := host.NewObserver(marginPx, l.onIntersect); ok {
		l.mode = ModeObserver
		l.observer = obs
	}
	return l
}

func (l *Loader) Mode() Mode { return l.mode }

func (l *Loader) Pending() int { return len(l.pending) }

// Register starts watching imgs. Images must be comparable (pointers) since
// they double as observer targets.
func (l *Loader) Register(imgs ...Image) {
	for _, img := range imgs {
		if img == nil {
			continue
		}
		if l.mode == ModeEager {
			load(img)
			continue
		}
		if _, ok := l.pending[img]; ok {
			continue
		}
		l.pending[img] = img
		l.observer.Observe(img)
	}
}

func (l *Loader) onIntersect(entries []viewport.Entry) {
	for _, e := range entries {
		if !e.Intersecting {
			continue
		}
		img, ok := l.pending[e.Target]
		if !ok {
			continue
		}
		delete(l.pending, e.Target)
		l.observer.Unobserve(e.Target)
		load(img)
	}
}

func (l *Loader) Reset() {
	for target := range l.pending {
		l.observer.Unobserve(target)
		delete(l.pending, target)
	}
}

func (l *Loader) Close() {
	l.pending = map[any]Image{}
	if l.observer != nil {
		l.observer.Disconnect()
	}
}

func load(img Image) {
	src := img.LazySource()
	if src == "" {
		img.MarkFallback()
		return
	}
	img.SetSource(src)
}

// HandleError is the per-image load failure hook. It only touches img.
func HandleError(img Image) {
	if img != nil {
		img.MarkFallback()
	}
}
