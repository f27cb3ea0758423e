package service

import "errors"

// Caller errors.  Handlers map them to 4xx responses with errors.Is;
// everything else is an internal failure.
var (
	ErrInvalidRequest  = errors.New("invalid booking request")
	ErrSeatConflict    = errors.New("seats not available")
	ErrMovieNotFound   = errors.New("movie not found")
	ErrBookingNotFound = errors.New("booking not found")
)
