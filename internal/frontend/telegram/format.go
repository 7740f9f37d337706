package telegram

import (
	"fmt"
	"strings"

	"github.com/filmotheque/filmotheque/internal/catalog"
	"github.com/filmotheque/filmotheque/internal/render"
)

// mdV2Replacer escapes special characters for Telegram MarkdownV2.
var mdV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"]", "\\]",
	"(", "\\(",
	")", "\\)",
	"~", "\\~",
	"`", "\\`",
	">", "\\>",
	"#", "\\#",
	"+", "\\+",
	"-", "\\-",
	"=", "\\=",
	"|", "\\|",
	"{", "\\{",
	"}", "\\}",
	".", "\\.",
	"!", "\\!",
)

// EscapeMdV2 escapes a string for safe use in Telegram MarkdownV2.
func EscapeMdV2(s string) string {
	return mdV2Replacer.Replace(s)
}

// FormatBold returns MarkdownV2 bold text.
func FormatBold(s string) string {
	return "*" + EscapeMdV2(s) + "*"
}

// FormatMovieList renders a titled, numbered movie listing in MarkdownV2.
func FormatMovieList(title string, movies []catalog.Movie) string {
	var sb strings.Builder
	sb.WriteString(FormatBold(title))
	sb.WriteString("\n")
	for i, m := range movies {
		line := fmt.Sprintf("%d. %s", i+1, m.Title)
		if m.Year > 0 {
			line += fmt.Sprintf(" (%d)", m.Year)
		}
		if m.Score > 0 {
			line += " — " + render.FormatScore(float64(m.Score))
		}
		sb.WriteString(EscapeMdV2(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatDetail renders a movie's full record in MarkdownV2.
func FormatDetail(d *catalog.MovieDetail) string {
	var sb strings.Builder
	sb.WriteString(FormatBold(d.Title))
	sb.WriteString("\n")

	var meta []string
	if d.Year > 0 {
		meta = append(meta, fmt.Sprintf("%d", d.Year))
	}
	if d.Rated != "" {
		meta = append(meta, d.Rated)
	}
	if d.Duration > 0 {
		meta = append(meta, render.FormatDuration(d.Duration))
	}
	if len(d.Genres) > 0 {
		meta = append(meta, strings.Join(d.Genres, ", "))
	}
	if len(meta) > 0 {
		sb.WriteString(EscapeMdV2(strings.Join(meta, " · ")))
		sb.WriteString("\n")
	}

	sb.WriteString(EscapeMdV2("IMDb " + render.FormatScore(float64(d.Score))))
	if d.Gross.String() != "" {
		sb.WriteString(EscapeMdV2(" · Box-office " + render.FormatGross(d.Gross.String())))
	}
	sb.WriteString("\n")

	if len(d.Directors) > 0 {
		sb.WriteString(EscapeMdV2("Réalisation: " + strings.Join(d.Directors, ", ")))
		sb.WriteString("\n")
	}
	if synopsis := d.Synopsis(); synopsis != "" {
		sb.WriteString("\n")
		sb.WriteString(EscapeMdV2(synopsis))
		sb.WriteString("\n")
	}
	if len(d.Actors) > 0 {
		sb.WriteString("\n")
		sb.WriteString(EscapeMdV2("Avec: " + strings.Join(d.Actors, ", ")))
		sb.WriteString("\n")
	}
	return sb.String()
}
