package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// ListAvailableSeats handles GET /api/seats?movieId=N.  An unknown movie
// yields an empty list, not an error.
func (h *Handler) ListAvailableSeats(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("movieId"))
	if raw == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "movieId parameter required")
	}
	movieID, err := strconv.Atoi(raw)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid movie id")
	}
	return c.JSON(http.StatusOK, h.svc.GetAvailableSeats(c.Request().Context(), movieID))
}
