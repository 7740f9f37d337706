package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/filmotheque/filmotheque/internal/catalog"
)

// Card renders one movie as a grid card: poster slot, title, and the
// movie id as the details-action identifier. A record without an image
// URL gets the placeholder immediately; a failed poster state gets it
// as the one-time substitution.
func Card(m catalog.Movie, state PosterState, selected bool) string {
	var poster string
	if m.ImageURL == "" || state == PosterFailed {
		poster = Placeholder(m.Title, SizeGrid)
	} else {
		poster = posterPanel(m.ImageURL, SizeGrid)
	}

	title := styleTitle.
		Width(SizeGrid.Width).
		MaxHeight(1).
		Render(truncate(m.Title, SizeGrid.Width))

	action := styleDim.
		Width(SizeGrid.Width).
		Render(fmt.Sprintf("#%d · détails ⏎", m.ID))

	body := lipgloss.JoinVertical(lipgloss.Left, poster, title, action)
	if selected {
		return styleCardSelected.Render(body)
	}
	return styleCardBorder.Render(body)
}
