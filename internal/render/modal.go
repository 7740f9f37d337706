package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/filmotheque/filmotheque/internal/catalog"
)

var styleModalFrame = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("5")).
	Padding(1, 2)

// Modal renders the details view for one movie: poster, title, meta line,
// ratings, directors, synopsis and cast.
func Modal(d *catalog.MovieDetail, state PosterState) string {
	var poster string
	if d.ImageURL == "" || state == PosterFailed {
		poster = Placeholder(d.Title, SizeModal)
	} else {
		poster = posterPanel(d.ImageURL, SizeModal)
	}

	const textWidth = 46

	title := styleTitle.Render(truncate(d.Title, textWidth))

	var metaParts []string
	if d.Year > 0 {
		metaParts = append(metaParts, fmt.Sprintf("%d", d.Year))
	}
	if d.Rated != "" {
		metaParts = append(metaParts, d.Rated)
	}
	if d.Duration > 0 {
		metaParts = append(metaParts, FormatDuration(d.Duration))
	}
	if len(d.Genres) > 0 {
		metaParts = append(metaParts, strings.Join(d.Genres, ", "))
	}
	meta := styleDim.Render(strings.Join(metaParts, " · "))

	ratings := styleScore.Render("IMDb "+FormatScore(float64(d.Score))) +
		styleDim.Render("  ·  Box-office "+FormatGross(d.Gross.String()))

	lines := []string{
		title,
		meta,
		ratings,
		"",
		styleLabel.Render("Réalisation") + "  " + joinOrDash(d.Directors),
	}
	if len(d.Countries) > 0 {
		lines = append(lines, styleLabel.Render("Pays")+"  "+joinOrDash(d.Countries))
	}
	if d.DatePublished != "" {
		lines = append(lines, styleLabel.Render("Sortie")+"  "+d.DatePublished)
	}
	lines = append(lines,
		"",
		lipgloss.NewStyle().Width(textWidth).Render(d.Synopsis()),
		"",
		styleLabel.Render("Avec")+"  "+lipgloss.NewStyle().Width(textWidth-6).Render(joinOrDash(d.Actors)),
	)

	text := lipgloss.JoinVertical(lipgloss.Left, lines...)
	body := lipgloss.JoinHorizontal(lipgloss.Top, poster, "  ", text)

	return styleModalFrame.Render(body)
}
