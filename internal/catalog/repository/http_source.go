package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/logger"
)

var ErrBadStatus = errors.New("unexpected catalog status")

const maxDocumentBytes = 64 << 20

type httpSource struct {
	client *http.Client
	url    string
	store  catalog.RedisRepository
	ttl    time.Duration
	logger logger.Logger
}

// NewHTTPSource fetches the catalog from url. When store is non-nil the last
// body is kept there and revalidated with If-None-Match / If-Modified-Since.
func NewHTTPSource(client *http.Client, url string, store catalog.RedisRepository, ttl time.Duration, log logger.Logger) catalog.Source {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{client: client, url: url, store: store, ttl: ttl, logger: log}
}

func (h *httpSource) Name() string { return "http" }

func (h *httpSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "httpSource.Fetch.NewRequest")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	cached := h.cached(ctx)
	if cached != nil {
		if cached.ETag != "" {
			req.Header.Set("If-None-Match", cached.ETag)
		}
		if cached.LastModified != "" {
			req.Header.Set("If-Modified-Since", cached.LastModified)
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "httpSource.Fetch.Do")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified && cached != nil {
		return cached.Body, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrBadStatus, "httpSource.Fetch: %s returned %d", h.url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return nil, errors.Wrap(err, "httpSource.Fetch.ReadAll")
	}
	h.remember(ctx, resp, body)
	return body, nil
}

func (h *httpSource) key() string {
	return fmt.Sprintf("catalog:document:%s", h.url)
}

func (h *httpSource) cached(ctx context.Context) *models.CachedDocument {
	if h.store == nil {
		return nil
	}
	doc, err := h.store.GetDocument(ctx, h.key())
	if err != nil {
		h.logger.Warnf("httpSource: read cached document: %v", err)
		return nil
	}
	return doc
}

func (h *httpSource) remember(ctx context.Context, resp *http.Response, body []byte) {
	if h.store == nil {
		return
	}
	etag, lastModified := resp.Header.Get("ETag"), resp.Header.Get("Last-Modified")
	if etag == "" && lastModified == "" {
		return
	}
	doc := &models.CachedDocument{
		ETag:         etag,
		LastModified: lastModified,
		Body:         body,
		FetchedAt:    time.Now().UTC(),
	}
	if err := h.store.SetDocument(ctx, h.key(), h.ttl, doc); err != nil {
		h.logger.Warnf("httpSource: store document: %v", err)
	}
}
