package middleware

import "github.com/labstack/echo/v4"

// NoStoreMiddleware forbids any cache between the origin and the client.
func (mw *MiddlewareManager) NoStoreMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set(echo.HeaderCacheControl, "no-store, no-cache, must-revalidate, max-age=0")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
		return next(c)
	}
}
