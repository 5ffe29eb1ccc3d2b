package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
)

type catalogRedisRepo struct {
	redisClient *redis.Client
}

func NewCatalogRedisRepo(redisClient *redis.Client) catalog.RedisRepository {
	return &catalogRedisRepo{redisClient: redisClient}
}

// GetDocument returns nil, nil when key is not stored.
func (r *catalogRedisRepo) GetDocument(ctx context.Context, key string) (*models.CachedDocument, error) {
	data, err := r.redisClient.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "catalogRedisRepo.GetDocument.Get")
	}
	doc := &models.CachedDocument{}
	if err = json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrap(err, "catalogRedisRepo.GetDocument.Unmarshal")
	}
	return doc, nil
}

func (r *catalogRedisRepo) SetDocument(ctx context.Context, key string, ttl time.Duration, doc *models.CachedDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "catalogRedisRepo.SetDocument.Marshal")
	}
	if err = r.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.Wrap(err, "catalogRedisRepo.SetDocument.Set")
	}
	return nil
}
