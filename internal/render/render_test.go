package render

import (
	"fmt"
	"testing"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/filter"
	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/normalize"
	"github.com/amankumarsingh77/streamscale-catalog/internal/lazyload"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

type stubImage struct{ src string }

func (s *stubImage) LazySource() string   { return s.src }
func (s *stubImage) SetSource(src string) {}
func (s *stubImage) MarkFallback()        {}

type recordSink struct {
	cards  []Card
	clears int
}

func (s *recordSink) Clear() {
	s.cards = nil
	s.clears++
}

func (s *recordSink) Append(cards []Card) []lazyload.Image {
	s.cards = append(s.cards, cards...)
	imgs := make([]lazyload.Image, len(cards))
	for i, c := range cards {
		imgs[i] = &stubImage{src: c.LazySrc}
	}
	return imgs
}

type recordRegistrar struct{ registered []lazyload.Image }

func (r *recordRegistrar) Register(imgs ...lazyload.Image) {
	r.registered = append(r.registered, imgs...)
}

func catalog(n int) []models.Video {
	out := make([]models.Video, n)
	for i := range out {
		out[i] = models.Video{ID: fmt.Sprintf("id-%02d", i), Title: fmt.Sprintf("Video %02d", i)}
	}
	return out
}

func assertNoDuplicates(t *testing.T, cards []Card) {
	t.Helper()
	seen := map[string]bool{}
	for _, c := range cards {
		if seen[c.ID] {
			t.Fatalf("card %s materialized twice", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestRenderer_ScrollSequenceOver75(t *testing.T) {
	sink := &recordSink{}
	reg := &recordRegistrar{}
	r := New(sink, reg, BatchSize, "/player")

	visible := filter.Apply(catalog(75), "", filter.SortRelevance)
	r.Reset(visible)
	if len(sink.cards) != 30 || r.Index() != 30 {
		t.Fatalf("initial render = %d cards, index %d; want 30", len(sink.cards), r.Index())
	}

	for _, want := range []int{60, 75, 75} {
		r.RenderMore()
		if len(sink.cards) != want || r.Index() != want {
			t.Fatalf("after trigger: %d cards, index %d; want %d", len(sink.cards), r.Index(), want)
		}
	}
	if r.HasMore() {
		t.Fatalf("HasMore after exhausting the list")
	}
	assertNoDuplicates(t, sink.cards)
	if len(reg.registered) != 75 {
		t.Fatalf("registered %d placeholders, want 75", len(reg.registered))
	}
}

func TestRenderer_BatchInvariant(t *testing.T) {
	for _, size := range []int{0, 1, 29, 30, 31, 59, 61, 100} {
		sink := &recordSink{}
		r := New(sink, nil, 0, "/player")
		r.Reset(catalog(size))
		for i := 0; i < 6; i++ {
			if got, want := len(sink.cards), min(r.Index(), r.Len()); got != want {
				t.Fatalf("size %d: materialized %d, want %d", size, got, want)
			}
			if r.Index() > r.Len() {
				t.Fatalf("size %d: index %d beyond list %d", size, r.Index(), r.Len())
			}
			r.RenderMore()
		}
		assertNoDuplicates(t, sink.cards)
	}
}

func TestRenderer_ResetRewinds(t *testing.T) {
	sink := &recordSink{}
	r := New(sink, nil, BatchSize, "/player")
	all := catalog(75)
	r.Reset(all)
	r.RenderMore()
	if r.Index() != 60 {
		t.Fatalf("index = %d, want 60", r.Index())
	}

	r.Reset(all[:10])
	if sink.clears != 2 {
		t.Fatalf("clears = %d, want 2", sink.clears)
	}
	if r.Index() != 10 || len(sink.cards) != 10 {
		t.Fatalf("after reset: index %d, cards %d; want 10", r.Index(), len(sink.cards))
	}
	if n := r.RenderMore(); n != 0 {
		t.Fatalf("RenderMore on exhausted list added %d", n)
	}
}

func TestRenderer_EmptyVisibleList(t *testing.T) {
	sink := &recordSink{}
	r := New(sink, nil, BatchSize, "/player")
	if n := r.Reset(nil); n != 0 {
		t.Fatalf("rendered %d from empty list", n)
	}
	if sink.clears != 1 {
		t.Fatalf("reset must still clear the sink")
	}
}

func TestNewCard(t *testing.T) {
	docs := `{"videos":[
		{"id":"a b&c","title":"Clip","thumbnail":"t/a.jpg","video_info":{"duration":65,"width":1280,"height":720}},
		{"id":"bare","title":"Bare","video_info":{}}
	]}`
	vs, err := normalize.Decode([]byte(docs))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	full := NewCard(vs[0], "/player")
	if full.Href != "/player?id=a+b%26c" {
		t.Fatalf("href = %q", full.Href)
	}
	if full.DurationBadge != "01:05" || full.Length != "01:05" {
		t.Fatalf("duration badge/length = %q/%q", full.DurationBadge, full.Length)
	}
	if full.ResolutionBadge != "720p" {
		t.Fatalf("resolution badge = %q", full.ResolutionBadge)
	}
	if full.LazySrc != "t/a.jpg" || full.ImageAlt != "Clip" {
		t.Fatalf("image = %q alt %q", full.LazySrc, full.ImageAlt)
	}
	if full.Size != Placeholder {
		t.Fatalf("size = %q, want placeholder", full.Size)
	}

	bare := NewCard(vs[1], "/player")
	if bare.DurationBadge != "" || bare.ResolutionBadge != "" {
		t.Fatalf("bare card has badges: %+v", bare)
	}
	if bare.Length != "-" || bare.Size != "-" {
		t.Fatalf("bare length/size = %q/%q, want -/-", bare.Length, bare.Size)
	}
}
