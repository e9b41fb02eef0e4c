package tmdb

// Movie represents a movie from TMDb search and trending results.
type Movie struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
}

// MovieDetails represents detailed movie information, including credits.
type MovieDetails struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title,omitempty"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	OriginalLanguage string  `json:"original_language,omitempty"`
	Runtime          int     `json:"runtime"`
	Status           string  `json:"status"`
	Tagline          string  `json:"tagline"`
	Genres           []Genre `json:"genres"`
	Credits          Credits `json:"credits"`
}

// Genre represents a movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits holds the cast list for a movie, in billing order.
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// CastMember represents a single cast credit.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
}

// listResponse is the TMDb paginated list response shape shared by the
// search and trending endpoints.
type listResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}
