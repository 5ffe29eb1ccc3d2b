package catalog

import "github.com/labstack/echo/v4"

type Handlers interface {
	GridPage() echo.HandlerFunc
	PlayerPage() echo.HandlerFunc
	Document() echo.HandlerFunc
	ListVideos() echo.HandlerFunc
	GetVideoByID() echo.HandlerFunc
	Recommendations() echo.HandlerFunc
	CardsFragment() echo.HandlerFunc
	Health() echo.HandlerFunc
}
