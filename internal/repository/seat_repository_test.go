package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeatRepo() *SeatRepo {
	return NewSeatRepo([]int{1, 2}, DefaultSeatsPerMovie)
}

func TestSeatRepo_ListSeats_Seeded(t *testing.T) {
	repo := newTestSeatRepo()

	seats := repo.ListSeats(1)

	require.Len(t, seats, 50)
	for i, s := range seats {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, SeatLabel(i+1), s.SeatNumber)
		assert.True(t, s.Available)
	}
}

func TestSeatRepo_ListSeats_UnknownMovie(t *testing.T) {
	repo := newTestSeatRepo()

	seats := repo.ListSeats(42)

	assert.NotNil(t, seats)
	assert.Empty(t, seats)
	assert.Empty(t, repo.ListAvailable(42))
	assert.Zero(t, repo.SeatCount(42))
}

func TestSeatRepo_Reserve_Success(t *testing.T) {
	repo := newTestSeatRepo()

	require.NoError(t, repo.Reserve(1, []int{1, 2}))

	available := repo.ListAvailable(1)
	assert.Len(t, available, 48)
	for _, s := range available {
		assert.NotContains(t, []int{1, 2}, s.ID)
	}
	// seat count never changes
	assert.Len(t, repo.ListSeats(1), 50)
	// other movies are untouched
	assert.Len(t, repo.ListAvailable(2), 50)
}

func TestSeatRepo_Reserve_AlreadyTakenLeavesNoPartialState(t *testing.T) {
	repo := newTestSeatRepo()
	require.NoError(t, repo.Reserve(1, []int{5}))

	err := repo.Reserve(1, []int{3, 4, 5})

	assert.ErrorIs(t, err, ErrSeatUnavailable)
	seats := repo.ListSeats(1)
	assert.True(t, seats[2].Available)
	assert.True(t, seats[3].Available)
	assert.False(t, seats[4].Available)
}

func TestSeatRepo_Reserve_OutOfRange(t *testing.T) {
	repo := newTestSeatRepo()

	for _, n := range []int{0, -1, 51} {
		err := repo.Reserve(1, []int{1, n})
		assert.ErrorIs(t, err, ErrSeatUnavailable, "seat %d", n)
	}
	assert.Len(t, repo.ListAvailable(1), 50)
}

func TestSeatRepo_Reserve_UnknownMovie(t *testing.T) {
	repo := newTestSeatRepo()

	assert.ErrorIs(t, repo.Reserve(99, []int{1}), ErrSeatUnavailable)
}

func TestSeatRepo_Reserve_SnapshotIsCopy(t *testing.T) {
	repo := newTestSeatRepo()

	seats := repo.ListSeats(1)
	seats[0].Available = false

	assert.True(t, repo.ListSeats(1)[0].Available)
}

func TestSeatRepo_Reserve_ConcurrentOverlap(t *testing.T) {
	repo := newTestSeatRepo()

	const workers = 64
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes [][]int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// every request touches seat 10 plus one seat of its own
			req := []int{10, 11 + i%40}
			if err := repo.Reserve(1, req); err == nil {
				mu.Lock()
				successes = append(successes, req)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Len(t, successes, 1)
	seats := repo.ListSeats(1)
	assert.False(t, seats[9].Available)

	booked := 0
	for _, s := range seats {
		if !s.Available {
			booked++
		}
	}
	assert.Equal(t, 2, booked)
}

func TestSeatRepo_Reserve_ConcurrentDisjoint(t *testing.T) {
	repo := newTestSeatRepo()

	var wg sync.WaitGroup
	for n := 1; n <= 50; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			assert.NoError(t, repo.Reserve(2, []int{n}))
		}(n)
	}
	wg.Wait()

	assert.Empty(t, repo.ListAvailable(2))
	assert.Len(t, repo.ListAvailable(1), 50)
}
