package formatter

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/styring/internal/domain"
)

// StatusPill renders a server-defined action or task status. Well-known
// values get a color; anything else is shown dimmed as sent.
func StatusPill(status string) string {
	switch strings.ToLower(status) {
	case "":
		return StyleDim.Render("--")
	case "planned", "todo", "open":
		return StyleBlue.Render("○ " + status)
	case "in_progress", "in-progress", "active", "ongoing":
		return StyleYellow.Render("● " + status)
	case "done", "completed", "closed":
		return StyleGreen.Render("✔ " + status)
	case "blocked", "cancelled", "canceled":
		return StyleRed.Render("✖ " + status)
	default:
		return StyleDim.Render(status)
	}
}

// TruncID returns the short display form of an id, dimmed.
func TruncID(id string) string {
	p := domain.Project{ID: id}
	return StyleDim.Render(p.DisplayID())
}

// FormatNumber renders a metric value without trailing zeros: 100, 12.5.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DateRange renders a timeline item's dates as "2026-03-14 → 2026-04-01",
// or just the start day when there is no end date.
func DateRange(item domain.TimelineItem) string {
	start := item.StartDay()
	if end := item.EndDay(); end != "" {
		if start == "" {
			return "→ " + end
		}
		return start + " → " + end
	}
	return start
}
