// Package router registers HTTP routes and middleware on an Echo instance.
package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/logger"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
)

// Deps carries what the routes need.  MoviesCache wraps GET /api/movies
// and may be nil.
type Deps struct {
	Handler     *handler.Handler
	Static      *handler.Static
	MoviesCache echo.MiddlewareFunc
	Log         *slog.Logger
}

// Endpoints describes the API surface for the startup banner.
var Endpoints = []logger.Endpoint{
	{Method: http.MethodGet, Path: "/api/movies", Note: "list movies"},
	{Method: http.MethodGet, Path: "/api/movies/:id", Note: "movie details"},
	{Method: http.MethodGet, Path: "/api/seats?movieId=N", Note: "available seats"},
	{Method: http.MethodGet, Path: "/api/bookings", Note: "list bookings"},
	{Method: http.MethodPost, Path: "/api/bookings", Note: "create booking"},
	{Method: http.MethodGet, Path: "/api/bookings/:id", Note: "booking details"},
	{Method: http.MethodGet, Path: "/api/bookings/:id/qr", Note: "ticket QR code"},
	{Method: http.MethodPost, Path: "/api/payment", Note: "simulated payment"},
	{Method: http.MethodGet, Path: "/healthz", Note: "liveness"},
}

// New builds the Echo instance with middleware and every route.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(d.Log)

	e.Pre(middleware.APICORS())
	e.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Recovery(d.Log),
	)

	RegisterRoutes(e, d)
	return e
}

// RegisterRoutes maps the API, health check and static files.
func RegisterRoutes(e *echo.Echo, d Deps) {
	h := d.Handler

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	var movieMW []echo.MiddlewareFunc
	if d.MoviesCache != nil {
		movieMW = append(movieMW, d.MoviesCache)
	}
	api.GET("/movies", h.ListMovies, movieMW...)
	api.GET("/movies/:id", h.GetMovie)
	api.GET("/seats", h.ListAvailableSeats)
	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/:id", h.GetBooking)
	api.GET("/bookings/:id/qr", h.BookingQR)
	api.POST("/payment", h.ProcessPayment)

	guardAPIMethods(e)

	if d.Static != nil {
		e.GET("/*", d.Static.Serve)
	}
}

// guardAPIMethods registers a 405 GET handler on API paths that have no
// GET route.  Without it a GET would fall through to the static
// catch-all and come back as 404.
func guardAPIMethods(e *echo.Echo) {
	var paths []string
	hasGet := map[string]bool{}
	for _, r := range e.Routes() {
		if !strings.HasPrefix(r.Path, "/api/") {
			continue
		}
		if _, seen := hasGet[r.Path]; !seen {
			paths = append(paths, r.Path)
			hasGet[r.Path] = false
		}
		if r.Method == http.MethodGet {
			hasGet[r.Path] = true
		}
	}
	for _, p := range paths {
		if !hasGet[p] {
			e.GET(p, handler.MethodNotAllowed)
		}
	}
}
