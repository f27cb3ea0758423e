// Package queue defines message payloads exchanged over the message broker
// together with the publisher and consumer of the booking.confirmed queue.
package queue

import (
	"time"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// BookingQueueName is the durable queue booking events are routed to.
const BookingQueueName = "booking.confirmed"

// BookingConfirmedEvent is published once a booking has been stored.
// It carries enough information for downstream consumers to log or
// notify without calling back into the API.
type BookingConfirmedEvent struct {
	BookingID    string   `json:"booking_id"`
	MovieID      int      `json:"movie_id"`
	MovieTitle   string   `json:"movie_title"`
	SeatLabels   []string `json:"seats"`
	CustomerName string   `json:"customer_name"`
	TotalAmount  float64  `json:"total_amount"`
	ConfirmedAt  string   `json:"confirmed_at"`
}

// NewBookingConfirmedEvent builds the event for a stored booking.
func NewBookingConfirmedEvent(b model.Booking, m model.Movie) BookingConfirmedEvent {
	labels := make([]string, 0, len(b.SeatNumbers))
	for _, n := range b.SeatNumbers {
		labels = append(labels, repository.SeatLabel(n))
	}
	return BookingConfirmedEvent{
		BookingID:    b.BookingID,
		MovieID:      b.MovieID,
		MovieTitle:   m.Title,
		SeatLabels:   labels,
		CustomerName: b.CustomerName,
		TotalAmount:  b.TotalAmount,
		ConfirmedAt:  b.BookingDate.UTC().Format(time.RFC3339),
	}
}
