package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/amankumarsingh77/streamscale-catalog/internal/config"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/logger"
)

const fixture = `{"videos":[
	{"id":"1","title":"Sunrise","url":" https://cdn.example.com/1.mp4 ","thumbnail":".\\thumbs\\1.jpg","video_info":{"duration":65,"file_size":1536,"width":1280,"height":720}},
	{"id":"2","title":"Sunset"}
]}`

func newFileServer(t *testing.T) *echo.Echo {
	t.Helper()
	path := filepath.Join(t.TempDir(), "video_info.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cfg := &config.Config{
		Server:  config.ServerConfig{Port: ":0"},
		Catalog: config.CatalogConfig{Source: "file", Path: path, BatchSize: 30, RecommendationCount: 12, DetailPath: "/player", Locale: "en"},
	}
	s := NewServer(cfg, nil, nil, nil, logger.NewNopLogger())
	e := echo.New()
	if err := s.MapHandlers(e); err != nil {
		t.Fatalf("map handlers: %v", err)
	}
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServer_Routes(t *testing.T) {
	e := newFileServer(t)

	cases := []struct {
		target string
		status int
		body   string
	}{
		{"/", http.StatusOK, `id="videoGrid"`},
		{"/player?id=1", http.StatusOK, `id="videoEl"`},
		{"/video_info.json", http.StatusOK, `"Sunrise"`},
		{"/api/v1/videos", http.StatusOK, `"total_count":2`},
		{"/api/v1/videos/1", http.StatusOK, `"resolution_label":"720p"`},
		{"/api/v1/videos/9", http.StatusNotFound, `video not found`},
		{"/api/v1/videos/1/recommendations", http.StatusOK, `"Sunset"`},
		{"/fragments/cards", http.StatusOK, `class="card"`},
		{"/api/v1/health", http.StatusOK, `"videos":2`},
		{"/static/app.css", http.StatusOK, `.grid`},
	}
	for _, tc := range cases {
		rec := get(e, tc.target)
		if rec.Code != tc.status {
			t.Fatalf("%s: status = %d, want %d", tc.target, rec.Code, tc.status)
		}
		if !strings.Contains(rec.Body.String(), tc.body) {
			t.Fatalf("%s: body lacks %q:\n%s", tc.target, tc.body, rec.Body)
		}
		if rec.Header().Get(echo.HeaderXRequestID) == "" {
			t.Fatalf("%s: no request id", tc.target)
		}
	}
}

func TestServer_DocumentIsNeverCached(t *testing.T) {
	e := newFileServer(t)
	rec := get(e, "/video_info.json")
	if !strings.HasPrefix(rec.Header().Get(echo.HeaderCacheControl), "no-store") {
		t.Fatalf("Cache-Control = %q", rec.Header().Get(echo.HeaderCacheControl))
	}
}

func TestServer_NewSource(t *testing.T) {
	for _, tc := range []struct {
		source  string
		wantErr bool
	}{
		{"file", false},
		{"http", false},
		{"s3", true},
		{"postgres", true},
		{"ftp", true},
	} {
		cfg := &config.Config{Catalog: config.CatalogConfig{Source: tc.source, URL: "https://cdn.example.com/video_info.json"}}
		s := NewServer(cfg, nil, nil, nil, logger.NewNopLogger())
		_, err := s.newSource()
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: err = %v, wantErr %v", tc.source, err, tc.wantErr)
		}
	}
}
