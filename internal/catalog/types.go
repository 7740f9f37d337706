package catalog

import (
	"encoding/json"
	"strconv"
)

// Genre is one entry of the backend's genre listing.
type Genre struct {
	Name string `json:"name"`
}

// Movie is the preview record from a titles listing page: the minimum
// needed to render a card.
type Movie struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Year     int    `json:"year"`
	ImageURL string `json:"image_url"`
	Score    Score  `json:"imdb_score"`
}

// MovieDetail is the full record behind GET /titles/{id}, fetched lazily
// for the banner and the details view.
type MovieDetail struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Year            int      `json:"year"`
	ImageURL        string   `json:"image_url"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description"`
	DatePublished   string   `json:"date_published"`
	Genres          []string `json:"genres"`
	Rated           string   `json:"rated"`
	Duration        int      `json:"duration"` // minutes; 0 when the backend sends null
	Countries       []string `json:"countries"`
	Score           Score    `json:"imdb_score"`
	Gross           Gross    `json:"worldwide_gross_income"`
	Directors       []string `json:"directors"`
	Actors          []string `json:"actors"`
}

// Synopsis returns the long description, falling back to the short one.
func (d *MovieDetail) Synopsis() string {
	if d.LongDescription != "" {
		return d.LongDescription
	}
	return d.Description
}

// page is the backend pagination envelope. A non-empty Next is the sole
// signal that another page exists.
type page[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next"`
	Previous string `json:"previous"`
	Results  []T    `json:"results"`
}

// Score is an IMDb score. The backend serializes it either as a JSON
// number or as a numeric string, depending on the endpoint.
type Score float64

func (s *Score) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*s = 0
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		if raw == "" {
			*s = 0
			return nil
		}
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*s = Score(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Score(f)
	return nil
}

// Gross is a worldwide gross income amount. The backend serializes it as a
// JSON number, a numeric string, or an already formatted string such as
// "$2.8m". The raw text is preserved so display formatting can decide.
type Gross string

func (g *Gross) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*g = ""
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*g = Gross(raw)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*g = Gross(n.String())
	return nil
}

func (g Gross) String() string {
	return string(g)
}
