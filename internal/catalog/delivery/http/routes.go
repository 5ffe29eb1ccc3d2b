package http

import (
	"github.com/labstack/echo/v4"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
	"github.com/amankumarsingh77/streamscale-catalog/internal/middleware"
)

// MapCatalogRoutes registers the JSON API under videoGroup (/api/v1/videos).
func MapCatalogRoutes(videoGroup *echo.Group, h catalog.Handlers, mw *middleware.MiddlewareManager) {
	videoGroup.Use(mw.NoStoreMiddleware)
	videoGroup.GET("", h.ListVideos())
	videoGroup.GET("/:id", h.GetVideoByID())
	videoGroup.GET("/:id/recommendations", h.Recommendations())
}

// MapPageRoutes registers the pages, the raw document and the card fragments.
func MapPageRoutes(e *echo.Echo, h catalog.Handlers, mw *middleware.MiddlewareManager, detailPath string) {
	e.GET("/", h.GridPage())
	e.GET(detailPath, h.PlayerPage())
	e.GET(DocumentPath, h.Document(), mw.NoStoreMiddleware)
	e.GET("/fragments/cards", h.CardsFragment(), mw.NoStoreMiddleware)
}
