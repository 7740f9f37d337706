package render

import "strings"

// Placeholder renders the fallback poster: a shaded block embedding the
// movie title as visible text, sized to fill the slot. It is used when a
// record carries no image URL at all, and substituted exactly once when a
// poster probe fails.
func Placeholder(title string, size Size) string {
	text := strings.TrimSpace(title)
	if text == "" {
		text = "Sans affiche"
	}
	return stylePlaceholder.
		Width(size.Width).
		Height(size.Height).
		Render(wrapTitle(text, size.Width-2))
}

// posterPanel renders the slot for a movie whose poster URL is usable:
// a film marker over the reference, since the terminal cannot draw the
// image itself.
func posterPanel(imageURL string, size Size) string {
	ref := imageURL
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ref = ref[i+1:]
	}
	content := "▣\n" + truncate(ref, size.Width-2)
	return stylePoster.
		Width(size.Width).
		Height(size.Height).
		Render(content)
}

// wrapTitle folds a title into lines no wider than width so that even
// long titles stay visible inside the placeholder.
func wrapTitle(title string, width int) string {
	if width < 1 {
		return title
	}
	words := strings.Fields(title)
	var lines []string
	var line string
	for _, w := range words {
		if line == "" {
			line = w
			continue
		}
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	if line != "" {
		lines = append(lines, line)
	}
	for i, l := range lines {
		lines[i] = truncate(l, width)
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if n < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}

// joinOrDash renders a name list for a detail slot.
func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	return strings.Join(items, ", ")
}
