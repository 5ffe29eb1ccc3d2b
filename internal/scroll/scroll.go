// Package scroll requests more batches as the reader approaches the end of
// the materialized grid.
package scroll

import "github.com/amankumarsingh77/streamscale-catalog/internal/viewport"

const (
	SentinelMarginPx = 1000
	// PollThresholdPx applies only when intersection observation is unavailable.
	PollThresholdPx  = 200
)

// Target is the paginated thing being scrolled. *render.Renderer implements it.
type Target interface {
	HasMore() bool
	RenderMore() int
}

type Mode int

const (
	ModeObserver Mode = iota
	ModePolling
)

func (m Mode) String() string {
	if m == ModeObserver {
		return "observer"
	}
	return "polling"
}

// NearBottom reports whether the bottom of the viewport is within threshold
// pixels of the bottom of the document.
func NearBottom(m viewport.Metrics, threshold float64) bool {
	return m.ViewportHeight+m.ScrollY >= m.DocumentHeight-threshold
}

type Controller struct {
	host      viewport.Host
	sentinel  any
	target    Target
	mode      Mode
	threshold float64

	observer     viewport.Observer
	removeScroll func()
	running      bool
}

// New picks the strategy once: an intersection observer on sentinel when the
// host has one, scroll polling otherwise. Margins <= 0 use the package defaults.
func New(host viewport.Host, sentinel any, target Target, marginPx, thresholdPx int) *Controller {
	if marginPx <= 0 {
		marginPx = SentinelMarginPx
	}
	if thresholdPx <= 0 {
		thresholdPx = PollThresholdPx
	}
	c := &Controller{
		host:      host,
		sentinel:  sentinel,
		target:    target,
		mode:      ModePolling,
		threshold: float64(thresholdPx),
	}
	if obs, ok := host.NewObserver(marginPx, c.onIntersect); ok {
		c.mode = ModeObserver
		c.observer = obs
	}
	return c
}

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Start() {
	if c.running {
		return
	}
	c.running = true
	if c.mode == ModeObserver {
		c.observer.Observe(c.sentinel)
		return
	}
	c.removeScroll = c.host.OnScroll(c.onScroll)
}

// Stop detaches the controller from the page. Start resumes it.
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.running = false
	if c.mode == ModeObserver {
		c.observer.Unobserve(c.sentinel)
		return
	}
	if c.removeScroll != nil {
		c.removeScroll()
		c.removeScroll = nil
	}
}

func (c *Controller) onIntersect(entries []viewport.Entry) {
	for _, e := range entries {
		if e.Target == c.sentinel && e.Intersecting {
			c.more()
			return
		}
	}
}

func (c *Controller) onScroll() {
	if NearBottom(c.host.Metrics(), c.threshold) {
		c.more()
	}
}

func (c *Controller) more() {
	if !c.running || !c.target.HasMore() {
		return
	}
	c.target.RenderMore()
}
