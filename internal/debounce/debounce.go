// Package debounce collapses bursts of calls into one trailing call.
package debounce

import (
	"sync"
	"time"
)

// Scheduler runs f once after d unless the returned cancel is called first.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

type RealScheduler struct{}

func (RealScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := time.AfterFunc(d, f)
	return func() { t.Stop() }
}

type Debouncer struct {
	mu      sync.Mutex
	sched   Scheduler
	delay   time.Duration
	fn      func()
	cancel  func()
	pending bool
	gen     int
}

func New(s Scheduler, d time.Duration, fn func()) *Debouncer {
	if s == nil {
		s = RealScheduler{}
	}
	return &Debouncer{sched: s, delay: d, fn: fn}
}

// Trigger restarts the quiet period; fn runs once it elapses with no further triggers.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
	d.gen++
	gen := d.gen
	d.pending = true
	d.cancel = d.sched.AfterFunc(d.delay, func() { d.fire(gen) })
}

func (d *Debouncer) Flush() {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return
	}
	d.stopLocked()
	d.mu.Unlock()
	d.fn()
}

func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Debouncer) fire(gen int) {
	d.mu.Lock()
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.cancel = nil
	d.mu.Unlock()
	d.fn()
}

func (d *Debouncer) stopLocked() {
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.pending = false
	d.gen++
}
