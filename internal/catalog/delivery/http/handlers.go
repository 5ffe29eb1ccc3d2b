package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog"
	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/filter"
	"github.com/amankumarsingh77/streamscale-catalog/internal/catalog/usecase"
	"github.com/amankumarsingh77/streamscale-catalog/internal/config"
	"github.com/amankumarsingh77/streamscale-catalog/internal/querystate"
	"github.com/amankumarsingh77/streamscale-catalog/internal/render"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/logger"
	"github.com/amankumarsingh77/streamscale-catalog/pkg/utils"
	"github.com/amankumarsingh77/streamscale-catalog/web"
)

const (
	DocumentPath = "/video_info.json"

	headerNextOffset = "X-Next-Offset"
	headerTotalCount = "X-Total-Count"
)

var sortLabels = map[filter.SortKey]string{
	filter.SortRelevance:    "Relevance",
	filter.SortTitleAsc:     "Title A-Z",
	filter.SortTitleDesc:    "Title Z-A",
	filter.SortDurationDesc: "Longest",
	filter.SortDurationAsc:  "Shortest",
	filter.SortSizeDesc:     "Largest file",
	filter.SortSizeAsc:      "Smallest file",
}

type catalogHandlers struct {
	cfg       *config.Config
	catalogUC catalog.UseCase
	logger    logger.Logger
}

func NewCatalogHandlers(cfg *config.Config, catalogUC catalog.UseCase, logger logger.Logger) catalog.Handlers {
	return &catalogHandlers{cfg: cfg, catalogUC: catalogUC, logger: logger}
}

func (h *catalogHandlers) GridPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		state := querystate.Parse(c.QueryString())
		return c.Render(http.StatusOK, "grid.html", h.pageData("Videos", state))
	}
}

func (h *catalogHandlers) PlayerPage() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "player.html", h.pageData("Player", querystate.State{}))
	}
}

func (h *catalogHandlers) Document() echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := h.catalogUC.Document(c.Request().Context())
		if err != nil {
			h.logger.Errorf("Document RequestID: %s, ERROR: %v", utils.GetRequestID(c), err)
			return c.JSON(http.StatusBadGateway, map[string]string{"error": "catalog unavailable"})
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, body)
	}
}

func (h *catalogHandlers) ListVideos() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		page, err := h.catalogUC.List(c.Request().Context(), c.QueryParam("q"), c.QueryParam("sort"), pagination)
		if err != nil {
			return h.sourceError(c, err)
		}
		return c.JSON(http.StatusOK, page)
	}
}

func (h *catalogHandlers) GetVideoByID() echo.HandlerFunc {
	return func(c echo.Context) error {
		video, err := h.catalogUC.Get(c.Request().Context(), pathID(c))
		if err != nil {
			return h.sourceError(c, err)
		}
		return c.JSON(http.StatusOK, video)
	}
}

func (h *catalogHandlers) Recommendations() echo.HandlerFunc {
	return func(c echo.Context) error {
		count := 0
		if raw := c.QueryParam("count"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 || n > utils.MaxLimit {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid count"})
			}
			count = n
		}
		videos, err := h.catalogUC.Recommend(c.Request().Context(), pathID(c), count)
		if err != nil {
			return h.sourceError(c, err)
		}
		return c.JSON(http.StatusOK, videos)
	}
}

// CardsFragment renders one batch of the visible list as card markup.
func (h *catalogHandlers) CardsFragment() echo.HandlerFunc {
	return func(c echo.Context) error {
		pagination, err := utils.GetPaginationFromCtx(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		if c.QueryParam("limit") == "" {
			pagination.Limit = h.cfg.Catalog.BatchSize
		}
		page, err := h.catalogUC.List(c.Request().Context(), c.QueryParam("q"), c.QueryParam("sort"), pagination)
		if err != nil {
			return h.sourceError(c, err)
		}

		sink := render.NewHTMLSink()
		render.New(sink, nil, pagination.Limit, h.cfg.Catalog.DetailPath).Reset(page.Videos)
		if err = sink.Err(); err != nil {
			h.logger.Errorf("CardsFragment RequestID: %s, ERROR: %v", utils.GetRequestID(c), err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "render failed"})
		}

		c.Response().Header().Set(headerTotalCount, strconv.Itoa(page.TotalCount))
		if page.HasMore {
			c.Response().Header().Set(headerNextOffset, strconv.Itoa(page.NextOffset))
		}
		return c.HTMLBlob(http.StatusOK, []byte(sink.String()))
	}
}

func (h *catalogHandlers) Health() echo.HandlerFunc {
	return func(c echo.Context) error {
		h.logger.Infof("Health check RequestID: %s", utils.GetRequestID(c))
		stats, err := h.catalogUC.Stats(c.Request().Context())
		if err != nil {
			h.logger.Warnf("Health check RequestID: %s, ERROR: %v", utils.GetRequestID(c), err)
			return c.JSON(http.StatusServiceUnavailable, stats)
		}
		return c.JSON(http.StatusOK, stats)
	}
}

func (h *catalogHandlers) sourceError(c echo.Context, err error) error {
	if errors.Is(err, usecase.ErrVideoNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "video not found"})
	}
	h.logger.Errorf("RequestID: %s, URI: %s, ERROR: %v", utils.GetRequestID(c), c.Request().RequestURI, err)
	return c.JSON(http.StatusBadGateway, map[string]string{"error": "catalog unavailable"})
}

func (h *catalogHandlers) pageData(title string, state querystate.State) web.PageData {
	opts := make([]web.SortOption, 0, len(filter.SortKeys))
	for _, k := range filter.SortKeys {
		opts = append(opts, web.SortOption{Value: string(k), Label: sortLabels[k], Selected: k == state.Sort})
	}
	return web.PageData{
		Title:       title,
		AppVersion:  h.cfg.Server.AppVersion,
		Query:       state.Query,
		SortOptions: opts,
		Client: web.ClientSettings{
			DocumentPath:     DocumentPath,
			DetailPath:       h.cfg.Catalog.DetailPath,
			Locale:           h.cfg.Catalog.Locale,
			BatchSize:        h.cfg.Catalog.BatchSize,
			ImageMarginPx:    h.cfg.Client.ImageMarginPx,
			ScrollMarginPx:   h.cfg.Client.ScrollMarginPx,
			PollThresholdPx:  h.cfg.Client.PollThresholdPx,
			SearchDebounceMs: h.cfg.Client.SearchDebounceMs,
		},
	}
}

func pathID(c echo.Context) string {
	id := c.Param("id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		return unescaped
	}
	return id
}
