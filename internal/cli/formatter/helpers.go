package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// HumanTimestampFrom returns a relative timestamp such as "5m ago" measured
// against now. Anything older than a day, or in the future, gets a date.
func HumanTimestampFrom(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return t.Format("Jan 2, 2006 15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006 15:04")
	}
}

// BulletList renders one "  • item" line per item, or a dim fallback line
// when items is empty.
func BulletList(items []string, fallback string) string {
	if len(items) == 0 {
		return "  " + Dim(fallback) + "\n"
	}
	var b strings.Builder
	for _, item := range items {
		b.WriteString("  " + StyleDim.Render("•") + " " + StyleFg.Render(item) + "\n")
	}
	return b.String()
}

// Label renders a dim "Key:" followed by value, or a dim fallback.
func Label(key, value, fallback string) string {
	if value == "" {
		return fmt.Sprintf("%s %s", Dim(key+":"), Dim(fallback))
	}
	return fmt.Sprintf("%s %s", Dim(key+":"), StyleFg.Render(value))
}
