package render

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatGross formats a worldwide gross income for display.
// Plain amounts of a million or more are shown in millions with one
// decimal ("$123.5m"); smaller amounts keep their full figure ("$500").
// Input that already starts with "$" is assumed pre-formatted and is
// returned unchanged. Unparseable input comes back as-is.
func FormatGross(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "—"
	}
	if strings.HasPrefix(raw, "$") {
		return raw
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	if amount >= 1_000_000 {
		return fmt.Sprintf("$%.1fm", amount/1_000_000)
	}
	return fmt.Sprintf("$%d", int64(amount))
}

// FormatDuration renders a runtime in minutes as "2h22" or "54min".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "—"
	}
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%dmin", m)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}

// FormatScore renders an IMDb score out of ten.
func FormatScore(score float64) string {
	if score <= 0 {
		return "—"
	}
	return fmt.Sprintf("%.1f/10", score)
}
