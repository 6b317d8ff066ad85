package service

import (
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

const (
	incompleteRecommendationText = "I need to know your skin type and current season to provide personalized recommendations."
	incompleteTransitionText     = "I need to know your skin type and current season to provide transition guidance."
)

// Recommend builds seasonal and concern guidance for p. An incomplete
// profile short-circuits before any catalog lookup.
func Recommend(cat *catalog.Catalog, p domain.UserProfile, req app.GetRecommendations, now time.Time) *app.RecommendationResponse {
	resp := &app.RecommendationResponse{
		GeneratedAt: now,
		Focus:       req.RequestType,
		Message:     req.Message,
		Season:      p.CurrentSeason,
		SkinType:    p.SkinType,
	}
	if !p.Complete() {
		resp.Outcome = app.OutcomeIncompleteProfile
		resp.Text = incompleteRecommendationText
		return resp
	}

	plan, _ := cat.Plan(p.CurrentSeason, p.SkinType)
	resp.Outcome = app.OutcomeCompleted
	resp.SeasonIcon = cat.Icon(p.CurrentSeason)
	resp.Routine = slices.Clone(plan.Routine)
	resp.Ingredients = slices.Clone(plan.Ingredients)
	resp.Concerns, resp.CatalogGaps = CollectConcernGuidance(cat, p.Concerns)
	resp.AllergyAlerts = FindAllergyAlerts(p.Allergies, resp.Ingredients, resp.Concerns)
	resp.Text = ComposeRecommendationText(resp)
	return resp
}

// CollectConcernGuidance looks up each concern in order. Concerns the
// catalog does not know are returned as gaps instead of failing.
func CollectConcernGuidance(cat *catalog.Catalog, concerns []domain.Concern) ([]app.ConcernGuidance, []domain.Concern) {
	var guidance []app.ConcernGuidance
	var gaps []domain.Concern
	for _, c := range concerns {
		cp, ok := cat.Concern(c)
		if !ok {
			gaps = append(gaps, c)
			continue
		}
		guidance = append(guidance, app.ConcernGuidance{
			Concern:     c,
			Products:    slices.Clone(cp.Products),
			Ingredients: slices.Clone(cp.Ingredients),
			Avoid:       slices.Clone(cp.Avoid),
		})
	}
	return guidance, gaps
}

// FindAllergyAlerts flags recommended ingredients whose name contains one of
// the user's allergies, case-insensitively. Each ingredient is flagged once.
func FindAllergyAlerts(allergies []string, ingredients []string, concerns []app.ConcernGuidance) []app.AllergyAlert {
	var alerts []app.AllergyAlert
	seen := map[string]bool{}
	check := func(ingredient string) {
		key := strings.ToLower(ingredient)
		if seen[key] {
			return
		}
		for _, allergy := range allergies {
			a := strings.ToLower(strings.TrimSpace(allergy))
			if a == "" || !strings.Contains(key, a) {
				continue
			}
			seen[key] = true
			alerts = append(alerts, app.AllergyAlert{Ingredient: ingredient, Allergy: allergy})
			return
		}
	}
	for _, ing := range ingredients {
		check(ing)
	}
	for _, cg := range concerns {
		for _, ing := range cg.Ingredients {
			check(ing)
		}
	}
	return alerts
}

// ComposeRecommendationText renders a completed recommendation as the reply
// text block.
func ComposeRecommendationText(r *app.RecommendationResponse) string {
	lines := []string{
		r.Message,
		"\nSeasonal Recommendations for " + r.SeasonIcon + " " + string(r.Season) + ":",
		"\nRecommended Routine:",
	}
	lines = append(lines, r.Routine...)
	lines = append(lines, "\nKey Ingredients to Look For:")
	lines = append(lines, r.Ingredients...)
	if len(r.Concerns) > 0 {
		lines = append(lines, "\nBased on Your Concerns:")
		for _, cg := range r.Concerns {
			line := "- " + strings.Join(cg.Products, ", ") + "\n  Ingredients: " + strings.Join(cg.Ingredients, ", ")
			if len(cg.Avoid) > 0 {
				line += "\n  Avoid: " + strings.Join(cg.Avoid, ", ")
			}
			lines = append(lines, line)
		}
	}
	if len(r.AllergyAlerts) > 0 {
		lines = append(lines, "\nAllergy Alerts:")
		for _, a := range r.AllergyAlerts {
			lines = append(lines, "- "+a.Ingredient+" (matches your allergy: "+a.Allergy+")")
		}
	}
	return strings.Join(lines, "\n")
}
