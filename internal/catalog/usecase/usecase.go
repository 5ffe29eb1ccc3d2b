package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/filter"
	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/normalize"
	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/recommend"
	"github.com/amankumarsingh77/streamscale-catalog/internal/config"
	"github.com/amankumarsingh77/streamscale-catalog/internal/models"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/logger"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/utils"
)

var ErrVideoNotFound = errors.New("video not found")

type catalogUC struct {
	cfg    *config.Config
	source catalog.Source
	engine *filter.Engine
	logger logger.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	mu     sync.RWMutex
	digest uint64
	videos []models.Video
	loaded bool
}

func NewCatalogUseCase(cfg *config.Config, source catalog.Source, log logger.Logger) catalog.UseCase {
	return newCatalogUC(cfg, source, log, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newCatalogUC(cfg *config.Config, source catalog.Source, log logger.Logger, rng *rand.Rand) *catalogUC {
	return &catalogUC{
		cfg:    cfg,
		source: source,
		engine: filter.NewEngineForLocale(cfg.Catalog.Locale),
		logger: log,
		rng:    rng,
	}
}

func (u *catalogUC) Document(ctx context.Context) ([]byte, error) {
	body, err := u.source.Fetch(ctx)
	if err != nil {
		u.logger.Errorf("Document - Fetch from %s source error: %v", u.source.Name(), err)
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return body, nil
}

// Load fetches the document and returns the canonical list. Normalization is
// skipped when the body is unchanged since the previous load. The returned
// slice is shared and must not be modified.
func (u *catalogUC) Load(ctx context.Context) ([]models.Video, error) {
	body, err := u.Document(ctx)
	if err != nil {
		return nil, err
	}
	sum := xxhash.Sum64(body)

	u.mu.RLock()
	if u.loaded && u.digest == sum {
		videos := u.videos
		u.mu.RUnlock()
		return videos, nil
	}
	u.mu.RUnlock()

	videos, err := normalize.Decode(body)
	if err != nil {
		u.logger.Errorf("Load - Decode error: %v", err)
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	u.mu.Lock()
	u.digest, u.videos, u.loaded = sum, videos, true
	u.mu.Unlock()
	u.logger.Infof("catalog loaded from %s source: %d videos", u.source.Name(), len(videos))
	return videos, nil
}

func (u *catalogUC) List(ctx context.Context, query, sort string, pagination *utils.Pagination) (*models.VideoPage, error) {
	videos, err := u.Load(ctx)
	if err != nil {
		return nil, err
	}
	visible := u.engine.Apply(videos, query, filter.ParseSortKey(sort))
	start, end := pagination.Window(len(visible))

	page := &models.VideoPage{
		Videos:     visible[start:end],
		TotalCount: len(visible),
		Offset:     start,
		Limit:      pagination.GetLimit(),
		HasMore:    utils.GetHasMore(start, len(visible), pagination.GetLimit()),
	}
	if page.HasMore {
		page.NextOffset = end
	}
	return page, nil
}

func (u *catalogUC) Get(ctx context.Context, id string) (*models.Video, error) {
	videos, err := u.Load(ctx)
	if err != nil {
		return nil, err
	}
	return find(videos, id)
}

// Recommend picks up to count other videos at random; count <= 0 uses the
// configured default.
func (u *catalogUC) Recommend(ctx context.Context, id string, count int) ([]models.Video, error) {
	videos, err := u.Load(ctx)
	if err != nil {
		return nil, err
	}
	current, err := find(videos, id)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = u.cfg.Catalog.RecommendationCount
	}

	u.rngMu.Lock()
	defer u.rngMu.Unlock()
	return recommend.Pick(videos, current.ID, count, u.rng), nil
}

func find(videos []models.Video, id string) (*models.Video, error) {
	for i := range videos {
		if videos[i].ID == id {
			v := videos[i]
			return &v, nil
		}
	}
	return nil, ErrVideoNotFound
}

func (u *catalogUC) Stats(ctx context.Context) (*models.CatalogStats, error) {
	stats := &models.CatalogStats{Status: "OK", Source: u.source.Name()}
	if usage, err := utils.CPUPercent(); err == nil {
		stats.CPUPercent = usage
	} else {
		u.logger.Warnf("Stats - CPUPercent error: %v", err)
	}
	videos, err := u.Load(ctx)
	if err != nil {
		stats.Status = "DEGRADED"
		return stats, err
	}
	stats.Videos = len(videos)
	return stats, nil
}
