package repository

import (
	"sync"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// movieSeats is the seat list of one movie together with the lock that
// guards it.  Seat n lives at index n-1.
type movieSeats struct {
	mu    sync.RWMutex
	seats []model.Seat
}

// SeatRepo tracks seat availability per movie.  The movie map is built
// once in NewSeatRepo and only the seat flags change afterwards, so each
// movie has its own lock and bookings for different movies never
// contend.
type SeatRepo struct {
	byMovie map[int]*movieSeats
}

// NewSeatRepo creates seatsPerMovie available seats, numbered from 1,
// for each movie id.
func NewSeatRepo(movieIDs []int, seatsPerMovie int) *SeatRepo {
	r := &SeatRepo{byMovie: make(map[int]*movieSeats, len(movieIDs))}
	for _, id := range movieIDs {
		ms := &movieSeats{seats: make([]model.Seat, 0, seatsPerMovie)}
		for n := 1; n <= seatsPerMovie; n++ {
			ms.seats = append(ms.seats, model.Seat{ID: n, SeatNumber: SeatLabel(n), Available: true})
		}
		r.byMovie[id] = ms
	}
	return r
}

// ListSeats returns a snapshot of all seats of a movie ordered by
// number.  Unknown movies yield an empty slice.
func (r *SeatRepo) ListSeats(movieID int) []model.Seat {
	return r.snapshot(movieID, false)
}

// ListAvailable is ListSeats restricted to seats that can still be
// booked.
func (r *SeatRepo) ListAvailable(movieID int) []model.Seat {
	return r.snapshot(movieID, true)
}

// SeatCount returns the number of seats of a movie, 0 when unknown.
func (r *SeatRepo) SeatCount(movieID int) int {
	ms, ok := r.byMovie[movieID]
	if !ok {
		return 0
	}
	// the slice length never changes after construction
	return len(ms.seats)
}

// Reserve marks every requested seat as booked.  Either all seats are
// taken or none: if any number is outside 1..SeatCount or already
// booked, ErrSeatUnavailable is returned and the inventory is left as
// it was.  The check and the update run under the movie's write lock.
func (r *SeatRepo) Reserve(movieID int, seatNumbers []int) error {
	ms, ok := r.byMovie[movieID]
	if !ok {
		return ErrSeatUnavailable
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, n := range seatNumbers {
		if n < 1 || n > len(ms.seats) {
			return ErrSeatUnavailable
		}
		if !ms.seats[n-1].Available {
			return ErrSeatUnavailable
		}
	}
	for _, n := range seatNumbers {
		ms.seats[n-1].Available = false
	}
	return nil
}

func (r *SeatRepo) snapshot(movieID int, onlyAvailable bool) []model.Seat {
	ms, ok := r.byMovie[movieID]
	if !ok {
		return []model.Seat{}
	}

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	out := make([]model.Seat, 0, len(ms.seats))
	for _, s := range ms.seats {
		if onlyAvailable && !s.Available {
			continue
		}
		out = append(out, s)
	}
	return out
}
