package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

// statusFor maps an error returned by a handler to a status code and
// the message sent to the client.
func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		msg := fmt.Sprint(he.Message)
		if msg == http.StatusText(he.Code) {
			msg = strings.ToLower(msg)
		}
		if he.Code >= http.StatusInternalServerError {
			msg = "internal server error"
		}
		return he.Code, msg
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrSeatConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrBookingNotFound), errors.Is(err, service.ErrMovieNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// ErrorHandler renders every error as {"error": "..."}.
func ErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		status, msg := statusFor(err)
		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Any("err", err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, echo.Map{"error": msg})
		}
		if err != nil {
			log.Error("write error response", slog.Any("err", err))
		}
	}
}

// MethodNotAllowed answers a known API path requested with the wrong
// method.
func MethodNotAllowed(echo.Context) error {
	return echo.ErrMethodNotAllowed
}
