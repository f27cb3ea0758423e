package repository

import (
	"slices"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

const (
	bookingIDPrefix    = "BK"
	firstBookingNumber = 1000
)

// BookingRepo is the booking ledger.  Ids come from an atomic counter;
// the records themselves live behind a separate read/write lock so that
// id generation never waits on readers.
type BookingRepo struct {
	seq atomic.Int64

	mu    sync.RWMutex
	byID  map[string]model.Booking
	order []string // insertion order
}

// NewBookingRepo returns an empty ledger whose first id is BK1000.
func NewBookingRepo() *BookingRepo {
	r := &BookingRepo{byID: make(map[string]model.Booking)}
	r.seq.Store(firstBookingNumber - 1)
	return r
}

// NextID returns a fresh booking id.  Ids are strictly increasing and
// never handed out twice, also under concurrent callers.
func (r *BookingRepo) NextID() string {
	return bookingIDPrefix + strconv.FormatInt(r.seq.Add(1), 10)
}

// Insert stores b.  An existing record is never overwritten.
func (r *BookingRepo) Insert(b model.Booking) error {
	b.SeatNumbers = slices.Clone(b.SeatNumbers)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[b.BookingID]; exists {
		return ErrDuplicateBooking
	}
	r.byID[b.BookingID] = b
	r.order = append(r.order, b.BookingID)
	return nil
}

// Get returns the booking with the given id.
func (r *BookingRepo) Get(id string) (model.Booking, bool) {
	r.mu.RLock()
	b, ok := r.byID[id]
	r.mu.RUnlock()
	if !ok {
		return model.Booking{}, false
	}
	b.SeatNumbers = slices.Clone(b.SeatNumbers)
	return b, true
}

// ListAll returns all bookings in insertion order.
func (r *BookingRepo) ListAll() []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, 0, len(r.order))
	for _, id := range r.order {
		b := r.byID[id]
		b.SeatNumbers = slices.Clone(b.SeatNumbers)
		out = append(out, b)
	}
	return out
}

// Count returns the number of stored bookings.
func (r *BookingRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
