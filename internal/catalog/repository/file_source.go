package repository

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
)

type fileSource struct {
	path string
}

// NewFileSource reads the catalog from a local JSON file on every fetch.
func NewFileSource(path string) catalog.Source {
	return &fileSource{path: path}
}

func (f *fileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrap(err, "fileSource.Fetch.ReadFile")
	}
	return body, nil
}

func (f *fileSource) Name() string { return "file" }
