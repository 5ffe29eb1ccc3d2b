package catalog

import (
	"context"

	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/utils"
)

type UseCase interface {
	// Document returns the raw catalog body as served by the source.
	Document(ctx context.Context) ([]byte, error)
	Load(ctx context.Context) ([]models.Video, error)
	List(ctx context.Context, query, sort string, pagination *utils.Pagination) (*models.VideoPage, error)
	Get(ctx context.Context, id string) (*models.Video, error)
	Recommend(ctx context.Context, id string, count int) ([]models.Video, error)
	Stats(ctx context.Context) (*models.CatalogStats, error)
}
