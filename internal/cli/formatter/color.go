package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/styring/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// TimelineTypeStyle returns the color used for a timeline item's type badge.
func TimelineTypeStyle(t domain.TimelineType) lipgloss.Style {
	switch t {
	case domain.TimelineMilestone:
		return StylePurple
	case domain.TimelineTask:
		return StyleBlue
	case domain.TimelineReview:
		return StyleYellow
	case domain.TimelineAudit:
		return StyleRed
	default:
		return StyleDim
	}
}

// TimelineBadge renders the upper-cased type of a timeline item, e.g. "AUDIT".
// Unknown types are shown as sent.
func TimelineBadge(t domain.TimelineType) string {
	if t == "" {
		return StyleDim.Render("--")
	}
	return TimelineTypeStyle(t).Render(strings.ToUpper(string(t)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Error renders an error line in red.
func Error(err error) string {
	return StyleRed.Render("Feil: " + err.Error())
}
