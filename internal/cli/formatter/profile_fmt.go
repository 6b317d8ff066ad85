package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/contract"
)

// FormatUpdate renders the acknowledgement for a profile update, with the
// compatibility warning first when any product pairs conflict.
func FormatUpdate(body contract.ReplyBody) string {
	var b strings.Builder
	if len(body.Conflicts) > 0 {
		b.WriteString(FormatConflicts(body.Conflicts) + "\n")
	}
	msg := body.Text
	if len(body.Conflicts) > 0 {
		warning := "Product Compatibility Warning:\n" + strings.Join(body.Conflicts, "\n") + "\n\n"
		msg = strings.TrimPrefix(msg, warning)
	}
	if msg != "" {
		b.WriteString(StyleGreen.Render("✓") + " " + StyleFg.Render(msg) + "\n\n")
	}
	b.WriteString(FormatProfile(body.Profile))
	return b.String()
}

// FormatConflicts renders the product compatibility check result.
func FormatConflicts(conflicts []string) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("✓ No product conflicts found.") + "\n"
	}
	var b strings.Builder
	b.WriteString(StyleRed.Bold(true).Render("PRODUCT COMPATIBILITY WARNING") + "\n")
	for _, c := range conflicts {
		b.WriteString("  " + StyleRed.Render("⚠") + " " + StyleFg.Render(c) + "\n")
	}
	return b.String()
}

// FormatProfile renders the session profile inside a box.
func FormatProfile(p contract.ProfileBody) string {
	var b strings.Builder
	b.WriteString(Label("Skin type", p.SkinType, "not set") + "\n")
	b.WriteString(Label("Season", p.CurrentSeason, "not set") + "\n")
	b.WriteString(Label("Climate", p.Climate, "not set") + "\n")
	b.WriteString(Label("Concerns", strings.Join(p.Concerns, ", "), "none") + "\n")
	b.WriteString(Label("Allergies", strings.Join(p.Allergies, ", "), "none") + "\n")
	b.WriteString(Label("Products", strings.Join(p.CurrentProducts, ", "), "none"))
	if p.LastUpdate != nil {
		b.WriteString("\n" + Dim("Updated "+p.LastUpdate.UTC().Format(time.RFC3339)))
	}
	return RenderBox("Profile", b.String()) + "\n"
}

// FormatHistory renders a session's action journal as a table.
func FormatHistory(entries []contract.JournalEntryBody, now time.Time) string {
	if len(entries) == 0 {
		return Dim("No actions recorded yet.") + "\n"
	}
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		detail := e.Detail
		if e.Field != "" {
			detail = e.Field + ": " + detail
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			e.Action,
			JournalPill(e.Outcome),
			detail,
			Dim(HumanTimestampFrom(e.CreatedAt, now)),
		})
	}
	return RenderTable([]string{"#", "ACTION", "OUTCOME", "DETAIL", "WHEN"}, rows)
}

// FormatSkinTypes renders the catalog's skin type reference.
func FormatSkinTypes(types []contract.SkinTypeBody) string {
	rows := make([][]string, 0, len(types))
	for _, st := range types {
		rows = append(rows, []string{StyleGreen.Render(st.SkinType), st.Description})
	}
	return RenderTable([]string{"SKIN TYPE", "DESCRIPTION"}, rows)
}
