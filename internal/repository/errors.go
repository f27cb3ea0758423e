// Package repository holds the in-memory stores behind the booking
// service: the movie catalog, the per-movie seat inventory and the
// booking ledger.  The sentinel errors below let the service layer tell
// caller mistakes apart from conflicting state.
package repository

import "errors"

// ErrMovieNotFound is returned when a catalog lookup misses.
var ErrMovieNotFound = errors.New("movie not found")

// ErrSeatUnavailable is returned by Reserve when at least one requested
// seat is out of range or already booked.  No seat is modified when it
// is returned.
var ErrSeatUnavailable = errors.New("seat unavailable")

// ErrDuplicateBooking is returned when a booking id is inserted twice.
// Ids come from NextID, so seeing it means a caller bypassed the
// generator.
var ErrDuplicateBooking = errors.New("duplicate booking id")
