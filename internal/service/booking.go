package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

type CatalogRepo interface {
	ListAll() []model.Movie
	GetByID(id int) (model.Movie, error)
}

type SeatRepo interface {
	ListSeats(movieID int) []model.Seat
	ListAvailable(movieID int) []model.Seat
	Reserve(movieID int, seatNumbers []int) error
}

type BookingRepo interface {
	NextID() string
	Insert(b model.Booking) error
	Get(id string) (model.Booking, bool)
	ListAll() []model.Booking
}

// BookingNotifier is told about every stored booking.  It runs on its
// own goroutine and cannot fail the booking.
type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, booking model.Booking, movie model.Movie)
}

type BookingService struct {
	catalog  CatalogRepo
	seats    SeatRepo
	bookings BookingRepo
	notifier BookingNotifier
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time
}

// NewBookingService wires the service.  notifier may be nil.
func NewBookingService(
	catalog CatalogRepo,
	seats SeatRepo,
	bookings BookingRepo,
	notifier BookingNotifier,
	logger *slog.Logger,
) *BookingService {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return &BookingService{
		catalog:  catalog,
		seats:    seats,
		bookings: bookings,
		notifier: notifier,
		logger:   logger,
		validate: v,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateBooking validates req, reserves its seats and records the
// booking.  Nothing is mutated when validation fails, and no ledger
// entry exists unless the seats were reserved first.
func (s *BookingService) CreateBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)

	if err := s.validate.Struct(req); err != nil {
		return model.Booking{}, fmt.Errorf("%w: %s", ErrInvalidRequest, describeValidation(err))
	}
	if n, dup := firstDuplicate(req.SeatNumbers); dup {
		return model.Booking{}, fmt.Errorf("%w: seat %d requested twice", ErrInvalidRequest, n)
	}

	movie, err := s.catalog.GetByID(req.MovieID)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return model.Booking{}, fmt.Errorf("%w: unknown movie %d", ErrInvalidRequest, req.MovieID)
		}
		return model.Booking{}, fmt.Errorf("get movie: %w", err)
	}

	if err = s.seats.Reserve(movie.ID, req.SeatNumbers); err != nil {
		if errors.Is(err, repository.ErrSeatUnavailable) {
			return model.Booking{}, fmt.Errorf("%w: movie %d seats %v", ErrSeatConflict, movie.ID, req.SeatNumbers)
		}
		return model.Booking{}, fmt.Errorf("reserve seats: %w", err)
	}

	booking := model.Booking{
		BookingID:     s.bookings.NextID(),
		MovieID:       movie.ID,
		SeatNumbers:   append([]int(nil), req.SeatNumbers...),
		CustomerName:  req.CustomerName,
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		BookingDate:   s.now(),
		TotalAmount:   movie.Price * float64(len(req.SeatNumbers)),
		Status:        model.BookingStatusConfirmed,
	}
	if err = s.bookings.Insert(booking); err != nil {
		return model.Booking{}, fmt.Errorf("store booking: %w", err)
	}

	s.logger.InfoContext(ctx, "booking created",
		slog.String("booking_id", booking.BookingID),
		slog.Int("movie_id", booking.MovieID),
		slog.Int("seats", len(booking.SeatNumbers)),
		slog.Float64("total_amount", booking.TotalAmount),
	)

	if s.notifier != nil {
		go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), booking, movie)
	}

	return booking, nil
}

func (s *BookingService) ListBookings(_ context.Context) []model.Booking {
	return s.bookings.ListAll()
}

func (s *BookingService) GetBooking(_ context.Context, id string) (model.Booking, error) {
	b, ok := s.bookings.Get(id)
	if !ok {
		return model.Booking{}, fmt.Errorf("%w: %s", ErrBookingNotFound, id)
	}
	return b, nil
}

// GetAvailableSeats lists the free seats of a movie.  Unknown movies
// have no seats; that is not an error.
func (s *BookingService) GetAvailableSeats(_ context.Context, movieID int) []model.Seat {
	return s.seats.ListAvailable(movieID)
}

func (s *BookingService) ListMovies(_ context.Context) []model.Movie {
	return s.catalog.ListAll()
}

func (s *BookingService) GetMovie(_ context.Context, id int) (model.Movie, error) {
	m, err := s.catalog.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return model.Movie{}, fmt.Errorf("%w: %d", ErrMovieNotFound, id)
		}
		return model.Movie{}, fmt.Errorf("get movie: %w", err)
	}
	return m, nil
}

func firstDuplicate(nums []int) (int, bool) {
	seen := make(map[int]struct{}, len(nums))
	for _, n := range nums {
		if _, ok := seen[n]; ok {
			return n, true
		}
		seen[n] = struct{}{}
	}
	return 0, false
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "min":
			msgs = append(msgs, fe.Field()+" must not be empty")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return strings.Join(msgs, ", ")
}
