package repository

import (
	"strconv"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// DefaultSeatsPerMovie is the number of seats created for every movie.
const DefaultSeatsPerMovie = 50

// seatRowLabel prefixes every seat label.  All seats of a movie sit in
// a single row.
const seatRowLabel = "A"

// SeatLabel returns the printable label of seat n.
func SeatLabel(n int) string {
	return seatRowLabel + strconv.Itoa(n)
}

// DefaultMovies returns the demonstration catalog, ids 1..5.
func DefaultMovies() []model.Movie {
	return []model.Movie{
		{
			ID: 1, Title: "Avengers: Endgame", Genre: "Action",
			Description: "The epic conclusion to the Infinity Saga.",
			Duration:    181, Language: "English", Rating: 4.8, Certificate: "PG-13",
			Director:    "Anthony Russo",
			Cast:        []string{"Robert Downey Jr.", "Chris Evans", "Scarlett Johansson"},
			ReleaseDate: "2019-04-26", Price: 12.99,
		},
		{
			ID: 2, Title: "The Batman", Genre: "Action/Crime",
			Description: "Batman ventures into Gotham City's underworld.",
			Duration:    176, Language: "English", Rating: 4.5, Certificate: "PG-13",
			Director:    "Matt Reeves",
			Cast:        []string{"Robert Pattinson", "Zoe Kravitz", "Paul Dano"},
			ReleaseDate: "2022-03-04", Price: 11.99,
		},
		{
			ID: 3, Title: "Dune: Part Two", Genre: "Sci-Fi/Adventure",
			Description: "Paul Atreides unites with Fremen for revenge.",
			Duration:    166, Language: "English", Rating: 4.7, Certificate: "PG-13",
			Director:    "Denis Villeneuve",
			Cast:        []string{"Timothée Chalamet", "Zendaya", "Rebecca Ferguson"},
			ReleaseDate: "2024-03-01", Price: 13.99,
		},
		{
			ID: 4, Title: "Elemental", Genre: "Animation/Comedy",
			Description: "In a city where fire, water, land and air residents live together.",
			Duration:    102, Language: "English", Rating: 4.3, Certificate: "PG",
			Director:    "Peter Sohn",
			Cast:        []string{"Leah Lewis", "Mamoudou Athie"},
			ReleaseDate: "2023-06-16", Price: 9.99,
		},
		{
			ID: 5, Title: "Mission: Impossible", Genre: "Action/Thriller",
			Description: "Ethan Hunt and his IMF team must track down a terrifying new weapon.",
			Duration:    163, Language: "English", Rating: 4.6, Certificate: "PG-13",
			Director:    "Christopher McQuarrie",
			Cast:        []string{"Tom Cruise", "Hayley Atwell", "Ving Rhames"},
			ReleaseDate: "2023-07-12", Price: 12.49,
		},
	}
}
