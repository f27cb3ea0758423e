package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/"

// APICORS adds permissive CORS headers to every /api/ response and
// answers OPTIONS requests with an empty 200.  Register it with e.Pre so
// preflights never reach the router.
func APICORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
				return next(c)
			}
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
			h.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
