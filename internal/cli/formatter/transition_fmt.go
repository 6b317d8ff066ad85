package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/contract"
)

// FormatTransition renders a seasonal transition guide: the current and
// next plans, the routine diff and the general tips.
func FormatTransition(body contract.ReplyBody) string {
	tr := body.Transition
	if body.Outcome != string(app.OutcomeCompleted) || tr == nil {
		return FormatIncomplete(body)
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Transition guide for %s skin", tr.SkinType)) + "\n")
	b.WriteString(SeasonBadge(tr.From, tr.FromIcon) + Dim("  →  ") + SeasonBadge(tr.To, tr.ToIcon) + "\n\n")

	b.WriteString(Bold("CURRENT ROUTINE") + "\n")
	b.WriteString(BulletList(tr.CurrentPlan.Routine, "None"))
	b.WriteString(Bold("NEXT ROUTINE") + "\n")
	b.WriteString(BulletList(tr.NextPlan.Routine, "None"))
	b.WriteString("  " + Label("Ingredients", strings.Join(tr.NextPlan.Ingredients, ", "), "none") + "\n")

	if len(tr.AddedSteps) > 0 || len(tr.RemovedSteps) > 0 {
		b.WriteString("\n" + Bold("CHANGES") + "\n")
		for _, s := range tr.AddedSteps {
			b.WriteString("  " + StyleGreen.Render("+ "+s) + "\n")
		}
		for _, s := range tr.RemovedSteps {
			b.WriteString("  " + StyleRed.Render("- "+s) + "\n")
		}
	} else {
		b.WriteString("\n" + Dim("Routine steps stay the same.") + "\n")
	}

	b.WriteString("\n" + Bold("TIPS") + "\n")
	for i, tip := range tr.Tips {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), StyleFg.Render(tip)))
	}
	return b.String()
}
