package telegram

import (
	"strings"
	"testing"

	"github.com/filmotheque/filmotheque/internal/catalog"
)

func TestEscapeMdV2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text", in: "hello world", want: "hello world"},
		{name: "dots", in: "fin.", want: "fin\\."},
		{name: "exclamation", in: "Vu!", want: "Vu\\!"},
		{name: "parentheses", in: "(1995)", want: "\\(1995\\)"},
		{name: "brackets", in: "[lien]", want: "\\[lien\\]"},
		{name: "underscores", in: "foo_bar", want: "foo\\_bar"},
		{name: "stars", in: "*gras*", want: "\\*gras\\*"},
		{name: "mixed", in: "Heat (1995) - 8.3*", want: "Heat \\(1995\\) \\- 8\\.3\\*"},
		{name: "all specials", in: "_*[]()~`>#+-=|{}.!", want: "\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EscapeMdV2(tt.in)
			if got != tt.want {
				t.Errorf("EscapeMdV2(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatBold(t *testing.T) {
	got := FormatBold("Heat")
	want := "*Heat*"
	if got != want {
		t.Errorf("FormatBold(%q) = %q, want %q", "Heat", got, want)
	}

	got = FormatBold("Heat (1995)")
	want = "*Heat \\(1995\\)*"
	if got != want {
		t.Errorf("FormatBold(%q) = %q, want %q", "Heat (1995)", got, want)
	}
}

func TestFormatMovieList(t *testing.T) {
	movies := []catalog.Movie{
		{ID: 1, Title: "Heat", Year: 1995, Score: 8.3},
		{ID: 2, Title: "Memento", Year: 2000, Score: 8.4},
	}

	got := FormatMovieList("Mystère", movies)

	if !strings.HasPrefix(got, "*Mystère*\n") {
		t.Errorf("expected bold heading, got %q", got)
	}
	for _, want := range []string{"1\\. Heat", "2\\. Memento", "\\(1995\\)", "8\\.3/10"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected listing to contain %q, got %q", want, got)
		}
	}
}

func TestFormatMovieListSkipsMissingFields(t *testing.T) {
	got := FormatMovieList("Titres", []catalog.Movie{{ID: 7, Title: "Inconnu"}})

	if strings.Contains(got, "(0)") || strings.Contains(got, "\\(0\\)") {
		t.Errorf("zero year should be omitted, got %q", got)
	}
	if strings.Contains(got, "/10") {
		t.Errorf("zero score should be omitted, got %q", got)
	}
}

func TestFormatDetail(t *testing.T) {
	d := &catalog.MovieDetail{
		ID:          42,
		Title:       "Heat",
		Year:        1995,
		Rated:       "R",
		Duration:    170,
		Genres:      []string{"Crime", "Drama"},
		Score:       8.3,
		Gross:       "187436818",
		Directors:   []string{"Michael Mann"},
		Actors:      []string{"Al Pacino", "Robert De Niro"},
		Description: "A group of high-end professional thieves.",
	}

	got := FormatDetail(d)

	for _, want := range []string{
		"*Heat*",
		"1995",
		"2h50",
		"Crime, Drama",
		"IMDb 8\\.3/10",
		"$187\\.4m",
		"Michael Mann",
		"Al Pacino",
		"professional thieves",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected detail to contain %q, got:\n%s", want, got)
		}
	}
}

func TestFormatDetailSparseRecord(t *testing.T) {
	got := FormatDetail(&catalog.MovieDetail{ID: 7, Title: "Inconnu"})

	if !strings.Contains(got, "*Inconnu*") {
		t.Errorf("expected title, got %q", got)
	}
	if strings.Contains(got, "Box\\-office") {
		t.Errorf("empty gross should be omitted, got %q", got)
	}
	if strings.Contains(got, "Réalisation") {
		t.Errorf("empty directors should be omitted, got %q", got)
	}
}
