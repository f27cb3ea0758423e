// Package handler contains the HTTP handlers of the booking API.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// BookingService is the application surface the handlers depend on.
type BookingService interface {
	CreateBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error)
	ListBookings(ctx context.Context) []model.Booking
	GetBooking(ctx context.Context, id string) (model.Booking, error)
	GetAvailableSeats(ctx context.Context, movieID int) []model.Seat
	ListMovies(ctx context.Context) []model.Movie
	GetMovie(ctx context.Context, id int) (model.Movie, error)
}

// Handler bundles the API endpoints.
type Handler struct {
	svc BookingService
	log *slog.Logger
	now func() time.Time
}

func NewHandler(svc BookingService, log *slog.Logger) *Handler {
	if svc == nil {
		panic("nil service passed to NewHandler")
	}
	return &Handler{svc: svc, log: log, now: time.Now}
}
