package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/domain"
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

// SeasonStyle returns the accent style used for a season name.
func SeasonStyle(season domain.Season) lipgloss.Style {
	switch season {
	case domain.SeasonSpring:
		return StyleGreen
	case domain.SeasonSummer:
		return StyleYellow
	case domain.SeasonFall:
		return lipgloss.NewStyle().Foreground(ColorHeader)
	case domain.SeasonWinter:
		return StyleBlue
	default:
		return StyleDim
	}
}

// SeasonBadge renders "icon season" in the season's accent color, or a dim
// placeholder when the season is unset.
func SeasonBadge(season, icon string) string {
	if season == "" {
		return StyleDim.Render("not set")
	}
	return SeasonStyle(domain.Season(season)).Render(strings.TrimSpace(icon + " " + season))
}

// OutcomeIndicator returns a colored marker for a reply outcome.
func OutcomeIndicator(outcome string) string {
	switch app.Outcome(outcome) {
	case app.OutcomeCompleted:
		return StyleGreen.Render("● COMPLETED")
	case app.OutcomeIncompleteProfile:
		return StyleYellow.Render("● INCOMPLETE PROFILE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// JournalPill returns a colored pill for a journal entry outcome.
func JournalPill(outcome string) string {
	switch app.JournalOutcome(outcome) {
	case app.JournalAccepted:
		return StyleGreen.Render("accepted")
	case app.JournalIncomplete:
		return StyleYellow.Render("incomplete")
	case app.JournalRejected:
		return StyleRed.Render("rejected")
	default:
		return StyleDim.Render(outcome)
	}
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
