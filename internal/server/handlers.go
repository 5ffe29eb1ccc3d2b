package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
	catalogHttp "github.com/amankumarsingh77/streamscale-catalog/internal/catalog/delivery/http"
	catalogRepository "github.com/amankumarsingh77/streamscale-catalog/internal/catalog/repository"
	catalogUsecase "github.com/amankumarsingh77/streamscale-catalog/internal/catalog/usecase"
	"github.com/amankumarsingh77/streamscale-catalog/internal/middleware"
	"github.com/amankumarsingh77/streamscale-catalog/web"
)

func (s *Server) MapHandlers(e *echo.Echo) error {
	source, err := s.newSource()
	if err != nil {
		return err
	}
	s.logger.Infof("catalog source: %s", source.Name())

	catalogUC := catalogUsecase.NewCatalogUseCase(s.cfg, source, s.logger)
	catalogHandlers := catalogHttp.NewCatalogHandlers(s.cfg, catalogUC, s.logger)

	origins := s.cfg.Server.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	mw := middleware.NewMiddlewareManager(s.cfg, origins, s.logger)

	e.Renderer = web.NewTemplateRenderer()
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(mw.RequestLoggerMiddleware)
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderCacheControl},
		MaxAge:       300,
	}))
	e.Use(echomw.GzipWithConfig(echomw.GzipConfig{Level: 5}))

	if dir := s.cfg.Server.StaticDir; dir != "" {
		e.Static("/static", dir)
	} else {
		e.StaticFS("/static", web.Static())
	}

	catalogHttp.MapPageRoutes(e, catalogHandlers, mw, s.cfg.Catalog.DetailPath)

	v1 := e.Group("/api/v1")
	health := v1.Group("/health")
	videoGroup := v1.Group("/videos")

	catalogHttp.MapCatalogRoutes(videoGroup, catalogHandlers, mw)
	health.GET("", catalogHandlers.Health())
	return nil
}

// newSource picks the catalog origin configured in Catalog.Source.
func (s *Server) newSource() (catalog.Source, error) {
	c := s.cfg.Catalog
	switch c.Source {
	case "file":
		return catalogRepository.NewFileSource(c.Path), nil
	case "http":
		var store catalog.RedisRepository
		if s.redisClient != nil {
			store = catalogRepository.NewCatalogRedisRepo(s.redisClient)
		}
		client := &http.Client{Timeout: time.Duration(c.FetchTimeout) * time.Second}
		ttl := time.Duration(s.cfg.Redis.DocumentTTL) * time.Second
		return catalogRepository.NewHTTPSource(client, c.URL, store, ttl, s.logger), nil
	case "s3":
		if s.s3Client == nil {
			return nil, fmt.Errorf("catalog source s3: no s3 client")
		}
		return catalogRepository.NewS3Source(s.s3Client, s.cfg.S3.Bucket, c.S3Key), nil
	case "postgres":
		if s.db == nil {
			return nil, fmt.Errorf("catalog source postgres: no database")
		}
		return catalogRepository.NewSQLSource(s.db), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", c.Source)
	}
}
