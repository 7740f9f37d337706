package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/filmotheque/filmotheque/internal/catalog"
)

// Banner renders the best-movie banner: poster beside title, score,
// gross income and synopsis.
func Banner(d *catalog.MovieDetail, state PosterState) string {
	var poster string
	if d.ImageURL == "" || state == PosterFailed {
		poster = Placeholder(d.Title, SizeBanner)
	} else {
		poster = posterPanel(d.ImageURL, SizeBanner)
	}

	const textWidth = 48

	title := styleTitle.Render(truncate(d.Title, textWidth))
	score := styleScore.Render(FormatScore(float64(d.Score)))
	meta := styleDim.Render(FormatGross(d.Gross.String()))
	synopsis := lipgloss.NewStyle().
		Width(textWidth).
		Render(truncate(d.Synopsis(), textWidth*4))

	text := lipgloss.JoinVertical(lipgloss.Left, title, score+"  "+meta, "", synopsis)

	return lipgloss.JoinHorizontal(lipgloss.Top, poster, "  ", text)
}
