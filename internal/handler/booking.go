package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/skip2/go-qrcode"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

const qrSize = 256

// CreateBooking handles POST /api/bookings.  Malformed JSON and
// validation failures are 400, taken seats are 409, success is 201.
func (h *Handler) CreateBooking(c echo.Context) error {
	var req model.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	b, err := h.svc.CreateBooking(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

// ListBookings handles GET /api/bookings.
func (h *Handler) ListBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.ListBookings(c.Request().Context()))
}

// GetBooking handles GET /api/bookings/:id.
func (h *Handler) GetBooking(c echo.Context) error {
	b, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// BookingQR handles GET /api/bookings/:id/qr and returns a PNG ticket
// code carrying the booking id.
func (h *Handler) BookingQR(c echo.Context) error {
	b, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	png, err := qrcode.Encode(b.BookingID, qrcode.Medium, qrSize)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", png)
}
