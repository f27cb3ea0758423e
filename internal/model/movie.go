package model

// Movie is a catalog entry.  Movies are seeded once at startup and are
// never modified afterwards, so values can be shared freely between
// goroutines as long as Cast is not mutated.
//
// Fields:
//  ID          – catalog identifier assigned at seed time (1-based).
//  Title       – display title.
//  Genre       – free-form genre label, e.g. "Action/Crime".
//  Description – short synopsis.
//  Duration    – running time in minutes.
//  Language    – spoken language.
//  Rating      – audience rating between 0 and 5.
//  Certificate – age certificate such as PG-13.
//  Director    – director name.
//  Cast        – ordered list of leading actors.
//  ReleaseDate – calendar date in YYYY-MM-DD form.
//  Price       – ticket price for a single seat.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"`
	Language    string   `json:"language"`
	Rating      float64  `json:"rating"`
	Certificate string   `json:"certificate"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	ReleaseDate string   `json:"releaseDate"`
	Price       float64  `json:"price"`
}
