package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateBooking(ctx context.Context, req model.BookingRequest) (model.Booking, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.Booking), args.Error(1)
}

func (m *mockService) ListBookings(ctx context.Context) []model.Booking {
	return m.Called(ctx).Get(0).([]model.Booking)
}

func (m *mockService) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Booking), args.Error(1)
}

func (m *mockService) GetAvailableSeats(ctx context.Context, movieID int) []model.Seat {
	return m.Called(ctx, movieID).Get(0).([]model.Seat)
}

func (m *mockService) ListMovies(ctx context.Context) []model.Movie {
	return m.Called(ctx).Get(0).([]model.Movie)
}

func (m *mockService) GetMovie(ctx context.Context, id int) (model.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Movie), args.Error(1)
}

func setupEcho(t *testing.T) (*mockService, *Handler, *echo.Echo) {
	t.Helper()
	svc := &mockService{}
	t.Cleanup(func() { svc.AssertExpectations(t) })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(svc, log)

	e := echo.New()
	e.HTTPErrorHandler = ErrorHandler(log)
	api := e.Group("/api")
	api.GET("/movies", h.ListMovies)
	api.GET("/movies/:id", h.GetMovie)
	api.GET("/seats", h.ListAvailableSeats)
	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings/:id", h.GetBooking)
	api.GET("/bookings/:id/qr", h.BookingQR)
	api.POST("/payment", h.ProcessPayment)
	api.GET("/payment", MethodNotAllowed)
	e.GET("/healthz", Health)

	return svc, h, e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestHealth(t *testing.T) {
	_, _, e := setupEcho(t)

	rec := serve(e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestListMovies(t *testing.T) {
	svc, _, e := setupEcho(t)
	svc.On("ListMovies", mock.Anything).Return([]model.Movie{{ID: 1, Title: "A", Price: 12.99}})

	rec := serve(e, http.MethodGet, "/api/movies", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Movie
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Title)
}

func TestGetMovie(t *testing.T) {
	svc, _, e := setupEcho(t)
	svc.On("GetMovie", mock.Anything, 2).Return(model.Movie{ID: 2, Title: "B"}, nil)
	svc.On("GetMovie", mock.Anything, 9).Return(model.Movie{}, fmt.Errorf("%w: 9", service.ErrMovieNotFound))

	rec := serve(e, http.MethodGet, "/api/movies/2", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/api/movies/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, errorBody(t, rec), "movie not found")

	rec = serve(e, http.MethodGet, "/api/movies/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid movie id", errorBody(t, rec))
}

func TestListAvailableSeats(t *testing.T) {
	svc, _, e := setupEcho(t)
	svc.On("GetAvailableSeats", mock.Anything, 1).Return([]model.Seat{{ID: 3, SeatNumber: "A3", Available: true}})
	svc.On("GetAvailableSeats", mock.Anything, 99).Return([]model.Seat{})

	rec := serve(e, http.MethodGet, "/api/seats?movieId=1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":3,"seatNumber":"A3","available":true}]`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/api/seats?movieId=99", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/api/seats", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "movieId parameter required", errorBody(t, rec))

	rec = serve(e, http.MethodGet, "/api/seats?movieId=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking(t *testing.T) {
	svc, _, e := setupEcho(t)
	want := model.Booking{BookingID: "BK1000", MovieID: 1, SeatNumbers: []int{1, 2}, CustomerName: "Alice",
		TotalAmount: 25.98, Status: model.BookingStatusConfirmed, BookingDate: time.Now().UTC()}
	svc.On("CreateBooking", mock.Anything, model.BookingRequest{MovieID: 1, SeatNumbers: []int{1, 2}, CustomerName: "Alice"}).
		Return(want, nil)

	rec := serve(e, http.MethodPost, "/api/bookings", `{"movieId":1,"seatNumbers":[1,2],"customerName":"Alice"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got model.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "BK1000", got.BookingID)
	assert.Equal(t, "CONFIRMED", got.Status)
}

func TestCreateBooking_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid", fmt.Errorf("%w: customerName is required", service.ErrInvalidRequest), http.StatusBadRequest},
		{"conflict", fmt.Errorf("%w: movie 1 seats [1]", service.ErrSeatConflict), http.StatusConflict},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, e := setupEcho(t)
			svc.On("CreateBooking", mock.Anything, mock.Anything).Return(model.Booking{}, tc.err)

			rec := serve(e, http.MethodPost, "/api/bookings", `{"movieId":1,"seatNumbers":[1],"customerName":"A"}`)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusInternalServerError {
				assert.Equal(t, "internal server error", errorBody(t, rec))
			} else {
				assert.Equal(t, tc.err.Error(), errorBody(t, rec))
			}
		})
	}
}

func TestCreateBooking_MalformedBody(t *testing.T) {
	_, _, e := setupEcho(t)

	rec := serve(e, http.MethodPost, "/api/bookings", `{"movieId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", errorBody(t, rec))

	rec = serve(e, http.MethodPost, "/api/bookings", `{"movieId":"one"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingAndQR(t *testing.T) {
	svc, _, e := setupEcho(t)
	svc.On("GetBooking", mock.Anything, "BK1000").Return(model.Booking{BookingID: "BK1000"}, nil)
	svc.On("GetBooking", mock.Anything, "BK1").Return(model.Booking{}, fmt.Errorf("%w: BK1", service.ErrBookingNotFound))

	rec := serve(e, http.MethodGet, "/api/bookings/BK1000", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/api/bookings/BK1000/qr", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, qrSize, img.Bounds().Dx())

	rec = serve(e, http.MethodGet, "/api/bookings/BK1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, http.MethodGet, "/api/bookings/BK1/qr", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListBookings(t *testing.T) {
	svc, _, e := setupEcho(t)
	svc.On("ListBookings", mock.Anything).Return([]model.Booking{})

	rec := serve(e, http.MethodGet, "/api/bookings", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestProcessPayment(t *testing.T) {
	_, h, e := setupEcho(t)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	rec := serve(e, http.MethodPost, "/api/payment", `{"amount": 25.98}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.PaymentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.Equal(t, fmt.Sprintf("TXN%d", fixed.UnixMilli()), got.TransactionID)
	assert.Equal(t, "2025-03-01T12:00:00Z", got.Timestamp)

	rec = serve(e, http.MethodPost, "/api/payment", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	_, _, e := setupEcho(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/payment"},
		{http.MethodDelete, "/api/bookings"},
		{http.MethodPut, "/api/movies"},
	} {
		rec := serve(e, tc.method, tc.path, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, tc.method+" "+tc.path)
		assert.Equal(t, "method not allowed", errorBody(t, rec))
	}
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	_, _, e := setupEcho(t)

	rec := serve(e, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", errorBody(t, rec))
}
