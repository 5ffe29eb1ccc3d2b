package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

type manualTimer struct {
	f         func()
	delay     time.Duration
	cancelled bool
}

// manualScheduler fires timers only when the test says so.
type manualScheduler struct {
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) func() {
	t := &manualTimer{f: f, delay: d}
	s.timers = append(s.timers, t)
	return func() { t.cancelled = true }
}

func (s *manualScheduler) fireAll() {
	for _, t := range s.timers {
		if !t.cancelled {
			t.cancelled = true
			t.f()
		}
	}
}

func TestDebouncer_CollapsesBurst(t *testing.T) {
	s := &manualScheduler{}
	calls := 0
	d := New(s, 200*time.Millisecond, func() { calls++ })

	d.Trigger()
	d.Trigger()
	d.Trigger()
	if len(s.timers) != 3 {
		t.Fatalf("timers = %d, want 3", len(s.timers))
	}
	for _, tm := range s.timers[:2] {
		if !tm.cancelled {
			t.Fatalf("earlier timer still armed")
		}
	}
	if s.timers[2].delay != 200*time.Millisecond {
		t.Fatalf("delay = %v", s.timers[2].delay)
	}
	s.fireAll()
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if d.Pending() {
		t.Fatalf("still pending after fire")
	}
}

func TestDebouncer_StaleTimerIgnored(t *testing.T) {
	s := &manualScheduler{}
	calls := 0
	d := New(s, time.Millisecond, func() { calls++ })
	d.Trigger()
	stale := s.timers[0].f
	d.Trigger()
	stale()
	if calls != 0 {
		t.Fatalf("stale timer ran fn")
	}
}

func TestDebouncer_FlushAndStop(t *testing.T) {
	s := &manualScheduler{}
	calls := 0
	d := New(s, time.Second, func() { calls++ })

	d.Flush()
	if calls != 0 {
		t.Fatalf("Flush without pending call ran fn")
	}

	d.Trigger()
	d.Flush()
	if calls != 1 {
		t.Fatalf("calls = %d after Flush, want 1", calls)
	}
	s.fireAll()
	if calls != 1 {
		t.Fatalf("timer ran after Flush")
	}

	d.Trigger()
	d.Stop()
	s.fireAll()
	if calls != 1 {
		t.Fatalf("timer ran after Stop")
	}
}

func TestDebouncer_RealScheduler(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{}, 1)
	d := New(nil, 10*time.Millisecond, func() {
		calls.Add(1)
		done <- struct{}{}
	})
	for i := 0; i < 5; i++ {
		d.Trigger()
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("debounced call never ran")
	}
	time.Sleep(30 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("calls = %d, want 1", got)
	}
}
