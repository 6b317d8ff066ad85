package service

import (
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// TransitionTips are appended to every transition guide.
var TransitionTips = []string{
	"Gradually introduce changes over 2-3 weeks",
	"Pay attention to how your skin responds",
	"Adjust product frequency before changing products",
	"Keep skin hydrated during the transition",
}

// PlanTransition compares the current seasonal plan with the plan for
// req.NextSeason. Both routines are listed in full; the step diff is extra
// structured data.
func PlanTransition(cat *catalog.Catalog, p domain.UserProfile, req app.GetTransitionGuide, now time.Time) *app.TransitionResponse {
	resp := &app.TransitionResponse{
		GeneratedAt: now,
		Message:     req.Message,
		SkinType:    p.SkinType,
		From:        p.CurrentSeason,
		To:          req.NextSeason,
	}
	if !p.Complete() {
		resp.Outcome = app.OutcomeIncompleteProfile
		resp.Text = incompleteTransitionText
		return resp
	}

	resp.Outcome = app.OutcomeCompleted
	current, _ := cat.Plan(p.CurrentSeason, p.SkinType)
	next, _ := cat.Plan(req.NextSeason, p.SkinType)
	resp.CurrentPlan = clonePlan(current)
	resp.NextPlan = clonePlan(next)
	resp.FromIcon = cat.Icon(p.CurrentSeason)
	resp.ToIcon = cat.Icon(req.NextSeason)
	resp.AddedSteps = stepsMissingFrom(resp.NextPlan.Routine, resp.CurrentPlan.Routine)
	resp.RemovedSteps = stepsMissingFrom(resp.CurrentPlan.Routine, resp.NextPlan.Routine)
	resp.Tips = slices.Clone(TransitionTips)
	resp.Text = ComposeTransitionText(resp)
	return resp
}

func clonePlan(p catalog.Plan) catalog.Plan {
	return catalog.Plan{
		Routine:     slices.Clone(p.Routine),
		Ingredients: slices.Clone(p.Ingredients),
	}
}

// stepsMissingFrom returns the steps of src not present in other, compared
// case-insensitively, in src order.
func stepsMissingFrom(src, other []string) []string {
	have := make(map[string]bool, len(other))
	for _, s := range other {
		have[strings.ToLower(s)] = true
	}
	out := []string{}
	for _, s := range src {
		if !have[strings.ToLower(s)] {
			out = append(out, s)
		}
	}
	return out
}

// ComposeTransitionText renders a completed transition guide as the reply
// text block.
func ComposeTransitionText(r *app.TransitionResponse) string {
	lines := []string{
		r.Message,
		"\nTransitioning from " + r.FromIcon + " " + string(r.From) + " to " + r.ToIcon + " " + string(r.To) +
			" for " + string(r.SkinType) + " skin:",
		"\nCurrent Routine:",
	}
	lines = append(lines, r.CurrentPlan.Routine...)
	lines = append(lines, "\nNew Routine:")
	lines = append(lines, r.NextPlan.Routine...)
	lines = append(lines, "\nKey Ingredients to Focus On:")
	lines = append(lines, r.NextPlan.Ingredients...)
	lines = append(lines, "\nTransition Tips:")
	for _, tip := range r.Tips {
		lines = append(lines, "- "+tip)
	}
	return strings.Join(lines, "\n")
}
