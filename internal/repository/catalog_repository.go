package repository

import (
	"slices"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// CatalogRepo is the read-only movie catalog.  It is filled once by
// NewCatalogRepo and never written again, so lookups need no locking.
type CatalogRepo struct {
	movies map[int]model.Movie
	ids    []int // ascending
}

// NewCatalogRepo builds a catalog from the given movies.  Later entries
// replace earlier ones with the same id.
func NewCatalogRepo(movies []model.Movie) *CatalogRepo {
	r := &CatalogRepo{movies: make(map[int]model.Movie, len(movies))}
	for _, m := range movies {
		m.Cast = slices.Clone(m.Cast)
		r.movies[m.ID] = m
	}
	r.ids = make([]int, 0, len(r.movies))
	for id := range r.movies {
		r.ids = append(r.ids, id)
	}
	slices.Sort(r.ids)
	return r
}

// ListAll returns every movie ordered by id.
func (r *CatalogRepo) ListAll() []model.Movie {
	out := make([]model.Movie, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, cloneMovie(r.movies[id]))
	}
	return out
}

// GetByID returns the movie with the given id or ErrMovieNotFound.
func (r *CatalogRepo) GetByID(id int) (model.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return model.Movie{}, ErrMovieNotFound
	}
	return cloneMovie(m), nil
}

// IDs returns the catalog ids in ascending order.
func (r *CatalogRepo) IDs() []int {
	return slices.Clone(r.ids)
}

func cloneMovie(m model.Movie) model.Movie {
	m.Cast = slices.Clone(m.Cast)
	return m
}
