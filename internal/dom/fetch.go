//go:build js && wasm

package dom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"syscall/js"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/normalize"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

// LoadCatalog fetches and normalizes the catalog document, bypassing the
// browser cache. It blocks and must not run inside a JS callback.
func LoadCatalog(ctx context.Context, path string) ([]models.Video, error) {
	base, err := url.Parse(js.Global().Get("location").Get("href").String())
	if err != nil {
		return nil, fmt.Errorf("parse location: %w", err)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("parse document path: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base.ResolveReference(ref).String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to load %s: %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return normalize.Decode(body)
}
