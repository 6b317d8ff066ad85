package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/contract"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// FormatReply renders any reply body, picking the layout from its action.
// Conflicts carried by a non-update reply are shown above it.
func FormatReply(body contract.ReplyBody) string {
	var warning string
	if len(body.Conflicts) > 0 {
		warning = FormatConflicts(body.Conflicts) + "\n"
	}
	switch app.ActionName(body.Action) {
	case app.ActionUpdateProfile:
		return FormatUpdate(body)
	case app.ActionGetRecommendations:
		return warning + FormatRecommendation(body)
	case app.ActionTransitionGuide:
		return warning + FormatTransition(body)
	default:
		return warning + body.Text
	}
}

// FormatIncomplete renders the notice shown when the profile lacks the skin
// type or current season.
func FormatIncomplete(body contract.ReplyBody) string {
	var b strings.Builder
	b.WriteString(OutcomeIndicator(body.Outcome) + "\n\n")
	b.WriteString(StyleYellow.Render(body.Text) + "\n")
	b.WriteString("\n" + Label("Skin type", body.Profile.SkinType, "missing") + "\n")
	b.WriteString(Label("Season", body.Profile.CurrentSeason, "missing") + "\n")
	b.WriteString("\n" + Dim("Try: update skinType=<type> season=<season>") + "\n")
	return b.String()
}

// FormatRecommendation renders a recommendation reply as a styled dashboard.
// The section matching the requested focus is highlighted.
func FormatRecommendation(body contract.ReplyBody) string {
	rec := body.Recommendation
	if body.Outcome != string(app.OutcomeCompleted) || rec == nil {
		return FormatIncomplete(body)
	}

	var b strings.Builder
	b.WriteString(OutcomeIndicator(body.Outcome) + "  " + Dim("focus: "+rec.Focus) + "\n\n")

	title := fmt.Sprintf("Seasonal plan for %s skin", rec.SkinType)
	b.WriteString(Header(title) + "\n")
	b.WriteString(SeasonBadge(rec.Season, rec.SeasonIcon) + "\n\n")

	b.WriteString(sectionTitle("Routine", rec.Focus == string(domain.RequestRoutine)) + "\n")
	for i, step := range rec.Routine {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), StyleFg.Render(step)))
	}

	b.WriteString("\n" + sectionTitle("Key ingredients", rec.Focus == string(domain.RequestIngredients)) + "\n")
	b.WriteString(BulletList(rec.Ingredients, "None listed"))

	if len(rec.Concerns) > 0 {
		b.WriteString("\n" + sectionTitle("Your concerns", rec.Focus == string(domain.RequestConcerns)) + "\n")
		for _, c := range rec.Concerns {
			b.WriteString("  " + StylePurple.Render(c.Concern) + "\n")
			b.WriteString("    " + Label("Products", strings.Join(c.Products, ", "), "none") + "\n")
			b.WriteString("    " + Label("Ingredients", strings.Join(c.Ingredients, ", "), "none") + "\n")
			if len(c.Avoid) > 0 {
				b.WriteString("    " + Dim("Avoid:") + " " + StyleRed.Render(strings.Join(c.Avoid, ", ")) + "\n")
			}
		}
	}

	if len(rec.AllergyAlerts) > 0 {
		b.WriteString("\n" + StyleRed.Bold(true).Render("ALLERGY ALERTS") + "\n")
		for _, a := range rec.AllergyAlerts {
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				StyleRed.Render("⚠"),
				StyleFg.Render(a.Ingredient),
				Dim("(matches your allergy: "+a.Allergy+")"),
			))
		}
	}

	return b.String()
}

// sectionTitle renders a section label; the focused one gets the header
// color and a marker.
func sectionTitle(title string, focused bool) string {
	if focused {
		return StyleHeader.Render(strings.ToUpper(title)) + " " + StylePurple.Render("◆")
	}
	return Bold(strings.ToUpper(title))
}
