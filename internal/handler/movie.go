package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListMovies handles GET /api/movies.
func (h *Handler) ListMovies(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListMovies(c.Request().Context()))
}

// GetMovie handles GET /api/movies/:id.
func (h *Handler) GetMovie(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid movie id")
	}
	m, err := h.svc.GetMovie(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}
