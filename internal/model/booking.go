package model

import "time"

// BookingStatusConfirmed is the only status a booking can carry.  There
// is no cancellation flow, so a booking never leaves this state.
const BookingStatusConfirmed = "CONFIRMED"

// Booking records a confirmed reservation of one or more seats for a
// single movie.  Bookings are append-only: once stored they are never
// updated or removed.
//
// Fields:
//  BookingID     – generated identifier, "BK" followed by a counter.
//  MovieID       – movie the seats belong to.
//  SeatNumbers   – seat numbers in request order.
//  CustomerName  – trimmed customer name, never blank.
//  CustomerEmail – optional contact email.
//  CustomerPhone – optional contact phone.
//  BookingDate   – creation timestamp (UTC).
//  TotalAmount   – movie price multiplied by the number of seats.
//  Status        – always BookingStatusConfirmed.
type Booking struct {
	BookingID     string    `json:"bookingId"`
	MovieID       int       `json:"movieId"`
	SeatNumbers   []int     `json:"seatNumbers"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	BookingDate   time.Time `json:"bookingDate"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
}

// BookingRequest is the input of the booking operation as received
// from clients.
type BookingRequest struct {
	MovieID       int    `json:"movieId"                 validate:"required"`
	SeatNumbers   []int  `json:"seatNumbers"             validate:"required,min=1"`
	CustomerName  string `json:"customerName"            validate:"required"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}
