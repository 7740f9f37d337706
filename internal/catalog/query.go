package catalog

import "net/url"

// Sort orders understood by the backend.
const (
	SortByScoreDesc = "-imdb_score"
)

// Query holds the recognized titles-listing filters. The zero value asks
// for the backend's default ordering with no genre filter.
type Query struct {
	SortBy string
	Genre  string
}

// ByGenre returns a query for one genre, best rated first.
func ByGenre(genre string) Query {
	return Query{SortBy: SortByScoreDesc, Genre: genre}
}

// TopRated returns a query for the global best-rated listing.
func TopRated() Query {
	return Query{SortBy: SortByScoreDesc}
}

// Values renders the query as URL parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.SortBy != "" {
		v.Set("sort_by", q.SortBy)
	}
	if q.Genre != "" {
		v.Set("genre", q.Genre)
	}
	return v
}

// key returns a stable cache-key fragment for the query.
func (q Query) key() string {
	return q.Values().Encode()
}
