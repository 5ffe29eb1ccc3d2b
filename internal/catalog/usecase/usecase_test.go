package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/normalize"
	"github.com/amankumarsingh77/streamscale-catalog/internal/config"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/logger"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/utils"
)

type stubSource struct {
	mu      sync.Mutex
	body    string
	err     error
	fetches int
}

func (s *stubSource) Fetch(context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.body), nil
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) set(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.body = body
}

func document(n int) string {
	doc := models.RawDocument{Videos: make([]models.RawVideoRecord, n)}
	for i := range doc.Videos {
		d := float64(i * 10)
		doc.Videos[i] = models.RawVideoRecord{
			ID:        strconv.Itoa(i),
			Title:     fmt.Sprintf("Video %02d", i),
			VideoInfo: &models.RawVideoInfo{Duration: &d},
		}
	}
	body, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(body)
}

func newUC(src *stubSource) *catalogUC {
	cfg := &config.Config{Catalog: config.CatalogConfig{Locale: "en", RecommendationCount: 12}}
	return newCatalogUC(cfg, src, logger.NewNopLogger(), rand.New(rand.NewSource(1)))
}

func page(t *testing.T, offset, limit int) *utils.Pagination {
	t.Helper()
	p, err := utils.NewPagination(context.Background(), offset, limit)
	if err != nil {
		t.Fatalf("pagination: %v", err)
	}
	return p
}

func TestLoad_ReusesUnchangedDocument(t *testing.T) {
	src := &stubSource{body: document(3)}
	uc := newUC(src)
	ctx := context.Background()

	first, err := uc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	second, _ := uc.Load(ctx)
	if &first[0] != &second[0] {
		t.Fatalf("unchanged document normalized twice")
	}
	if src.fetches != 2 {
		t.Fatalf("fetches = %d, want 2", src.fetches)
	}

	src.set(document(5))
	third, _ := uc.Load(ctx)
	if len(third) != 5 {
		t.Fatalf("changed document not picked up, len = %d", len(third))
	}
}

func TestLoad_Errors(t *testing.T) {
	boom := errors.New("origin down")
	uc := newUC(&stubSource{err: boom})
	if _, err := uc.Load(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want origin down", err)
	}

	uc = newUC(&stubSource{body: "{not json"})
	if _, err := uc.Load(context.Background()); !errors.Is(err, normalize.ErrMalformedDocument) {
		t.Fatalf("err = %v, want ErrMalformedDocument", err)
	}

	uc = newUC(&stubSource{body: `{"items":[]}`})
	videos, err := uc.Load(context.Background())
	if err != nil || len(videos) != 0 {
		t.Fatalf("missing videos = %v, %v; want empty catalog", videos, err)
	}
}

func TestList_Pages(t *testing.T) {
	uc := newUC(&stubSource{body: document(75)})
	ctx := context.Background()

	var ids []string
	offset := 0
	for {
		p, err := uc.List(ctx, "", "relevance", page(t, offset, 30))
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if p.TotalCount != 75 {
			t.Fatalf("total = %d", p.TotalCount)
		}
		for _, v := range p.Videos {
			ids = append(ids, v.ID)
		}
		if !p.HasMore {
			if p.NextOffset != 0 {
				t.Fatalf("next offset on the last page = %d", p.NextOffset)
			}
			break
		}
		offset = p.NextOffset
	}
	if len(ids) != 75 || ids[0] != "0" || ids[74] != "74" {
		t.Fatalf("paged ids = %d entries, first %s last %s", len(ids), ids[0], ids[len(ids)-1])
	}
}

func TestList_FiltersAndSorts(t *testing.T) {
	uc := newUC(&stubSource{body: document(30)})
	p, err := uc.List(context.Background(), " video 1", "duration_desc", page(t, 0, 5))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []string
	for _, v := range p.Videos {
		got = append(got, v.Title)
	}
	want := []string{"Video 19", "Video 18", "Video 17", "Video 16", "Video 15"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
	if p.TotalCount != 10 || !p.HasMore || p.NextOffset != 5 {
		t.Fatalf("page meta = %+v", p)
	}

	p, _ = uc.List(context.Background(), "", "", page(t, 100, 30))
	if len(p.Videos) != 0 || p.HasMore || p.Offset != 30 {
		t.Fatalf("offset past the end = %+v", p)
	}
}

func TestGet(t *testing.T) {
	uc := newUC(&stubSource{body: document(3)})
	v, err := uc.Get(context.Background(), "2")
	if err != nil || v.Title != "Video 02" {
		t.Fatalf("Get(2) = %+v, %v", v, err)
	}
	if _, err := uc.Get(context.Background(), "02"); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("err = %v, want ErrVideoNotFound", err)
	}
}

func TestRecommend(t *testing.T) {
	src := &stubSource{body: document(40)}
	uc := newUC(src)
	recs, err := uc.Recommend(context.Background(), "3", 0)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if src.fetches != 1 {
		t.Fatalf("fetches = %d, want 1", src.fetches)
	}
	if len(recs) != 12 {
		t.Fatalf("len = %d, want 12", len(recs))
	}
	for _, v := range recs {
		if v.ID == "3" {
			t.Fatalf("current video recommended")
		}
	}
	if _, err := uc.Recommend(context.Background(), "missing", 5); !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("err = %v, want ErrVideoNotFound", err)
	}
}

func TestStats(t *testing.T) {
	stats, err := newUC(&stubSource{body: document(4)}).Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := &models.CatalogStats{Status: "OK", Videos: 4, Source: "stub", CPUPercent: stats.CPUPercent}
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Fatalf("stats mismatch (-want +got):\n%s", diff)
	}

	stats, err = newUC(&stubSource{err: errors.New("down")}).Stats(context.Background())
	if err == nil || stats.Status != "DEGRADED" {
		t.Fatalf("stats = %+v, %v", stats, err)
	}
}
