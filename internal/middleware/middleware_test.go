package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/amankumarsingh77/streamscale-catalog/internal/config"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/logger"
)

func newManager() *MiddlewareManager {
	return NewMiddlewareManager(&config.Config{}, []string{"*"}, logger.NewNopLogger())
}

func TestNoStoreMiddleware(t *testing.T) {
	e := echo.New()
	mw := newManager()
	e.GET("/video_info.json", func(c echo.Context) error {
		return c.String(http.StatusOK, "{}")
	}, mw.NoStoreMiddleware)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/video_info.json", nil))
	if got := rec.Header().Get(echo.HeaderCacheControl); got != "no-store, no-cache, must-revalidate, max-age=0" {
		t.Fatalf("Cache-Control = %q", got)
	}
	if rec.Header().Get("Pragma") != "no-cache" {
		t.Fatalf("Pragma header missing")
	}
}

func TestRequestLoggerMiddleware_KeepsErrorStatus(t *testing.T) {
	e := echo.New()
	mw := newManager()
	e.Use(mw.RequestLoggerMiddleware)
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d, want 418", rec.Code)
	}
}
