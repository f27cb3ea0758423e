package model

// Seat describes one bookable seat of a movie.  Every movie owns its
// own dense list of seats numbered from 1; the label is the row letter
// followed by the number (A1, A2, ...).
//
// Fields:
//  ID         – seat number, unique within the movie.
//  SeatNumber – printable label shown to customers.
//  Available  – false once the seat has been booked.
type Seat struct {
	ID         int    `json:"id"`
	SeatNumber string `json:"seatNumber"`
	Available  bool   `json:"available"`
}
