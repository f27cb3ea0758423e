package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ProcessPayment handles POST /api/payment.  It is a stub: the body is
// ignored and every call succeeds.  It does not touch booking state.
func (h *Handler) ProcessPayment(c echo.Context) error {
	now := h.now()
	return c.JSON(http.StatusOK, model.PaymentResult{
		Success:       true,
		TransactionID: "TXN" + strconv.FormatInt(now.UnixMilli(), 10),
		Message:       "Payment processed successfully",
		Timestamp:     now.UTC().Format(time.RFC3339),
	})
}
