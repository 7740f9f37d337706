// Package render turns catalog records into styled terminal blocks.
// Every function is pure: the same record renders to the same string.
package render

import "github.com/charmbracelet/lipgloss"

// PosterState tracks what is known about a movie's poster URL.
// The state moves unknown -> ok or unknown -> failed exactly once;
// a failed poster is never probed again.
type PosterState int

const (
	PosterUnknown PosterState = iota
	PosterOK
	PosterFailed
)

// Size is a poster slot in terminal cells. The three slots mirror the
// original layout's 300x300 grid card, 225x338 banner poster and
// 210x315 details poster.
type Size struct {
	Width  int
	Height int
}

var (
	SizeGrid   = Size{Width: 24, Height: 7}
	SizeBanner = Size{Width: 26, Height: 9}
	SizeModal  = Size{Width: 22, Height: 8}
)

// Styles shared by the render surfaces.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	styleDim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	styleScore = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))

	styleLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	styleCardBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8"))

	styleCardSelected = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("5"))

	stylePoster = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Align(lipgloss.Center, lipgloss.Center)

	stylePlaceholder = lipgloss.NewStyle().
				Foreground(lipgloss.Color("7")).
				Background(lipgloss.Color("236")).
				Align(lipgloss.Center, lipgloss.Center)
)
