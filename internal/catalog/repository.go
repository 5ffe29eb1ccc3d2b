package catalog

import (
	"context"
	"time"

	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

// Source fetches the raw catalog document. Every call goes to the origin.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	// Name identifies the source kind in logs and health output.
	Name() string
}

// RedisRepository keeps the last remote document for conditional requests.
type RedisRepository interface {
	GetDocument(ctx context.Context, key string) (*models.CachedDocument, error)
	SetDocument(ctx context.Context, key string, ttl time.Duration, doc *models.CachedDocument) error
}
