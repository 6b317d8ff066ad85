package service

import (
	"testing"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/alexanderramin/skinadvisor/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recRequest(msg string) app.GetRecommendations {
	return app.GetRecommendations{RequestType: domain.RequestRoutine, Message: msg}
}

func TestRecommend_OilySummerAcne(t *testing.T) {
	p := testutil.NewTestProfile(
		testutil.WithSkinType(domain.SkinOily),
		testutil.WithSeason(domain.SeasonSummer),
		testutil.WithConcerns(domain.ConcernAcne),
	)
	resp := Recommend(catalog.MustDefault(), p, recRequest("Here you go."), testEpoch)

	assert.Equal(t, app.OutcomeCompleted, resp.Outcome)
	assert.Equal(t, []string{"Foaming cleanser", "Light moisturizer", "Mattifying SPF"}, resp.Routine)
	require.Len(t, resp.Concerns, 1)
	assert.Equal(t, []string{"Spot treatment", "Oil-free moisturizer", "Clay mask"}, resp.Concerns[0].Products)

	for _, want := range []string{"Foaming cleanser", "Light moisturizer", "Mattifying SPF", "Spot treatment", "Oil-free moisturizer", "Clay mask"} {
		assert.Contains(t, resp.Text, want)
	}
	want := "Here you go.\n" +
		"\nSeasonal Recommendations for ☀️ summer:\n" +
		"\nRecommended Routine:\nFoaming cleanser\nLight moisturizer\nMattifying SPF\n" +
		"\nKey Ingredients to Look For:\nBHA\nNiacinamide\nTea Tree\n" +
		"\nBased on Your Concerns:\n" +
		"- Spot treatment, Oil-free moisturizer, Clay mask\n" +
		"  Ingredients: Salicylic acid, Benzoyl peroxide, Niacinamide\n" +
		"  Avoid: Heavy oils, Comedogenic ingredients"
	assert.Equal(t, want, resp.Text)
}

func TestRecommend_IncompleteProfileSkipsCatalog(t *testing.T) {
	p := testutil.NewTestProfile(
		testutil.WithSkinType(""),
		testutil.WithSeason(domain.SeasonSummer),
		testutil.WithConcerns(domain.ConcernAcne),
	)
	// A nil catalog panics on any lookup, so success proves none happened.
	resp := Recommend(nil, p, recRequest("ignored"), testEpoch)

	assert.Equal(t, app.OutcomeIncompleteProfile, resp.Outcome)
	assert.Equal(t, "I need to know your skin type and current season to provide personalized recommendations.", resp.Text)
	assert.Empty(t, resp.Routine)
}

func TestRecommend_MissingSeasonIsIncomplete(t *testing.T) {
	p := testutil.NewTestProfile(testutil.WithSeason(""))
	resp := Recommend(nil, p, recRequest("x"), testEpoch)
	assert.Equal(t, app.OutcomeIncompleteProfile, resp.Outcome)
}

func TestRecommend_EveryPlanNonEmpty(t *testing.T) {
	cat := catalog.MustDefault()
	for _, season := range domain.AllSeasons {
		for _, skin := range domain.AllSkinTypes {
			p := testutil.NewTestProfile(testutil.WithSkinType(skin), testutil.WithSeason(season))
			resp := Recommend(cat, p, recRequest("x"), testEpoch)
			assert.NotEmpty(t, resp.Routine, "%s/%s routine", season, skin)
			assert.NotEmpty(t, resp.Ingredients, "%s/%s ingredients", season, skin)
		}
	}
}

func TestRecommend_DropsUnknownConcerns(t *testing.T) {
	p := testutil.NewTestProfile(testutil.WithConcerns("freckles", domain.ConcernAging))
	resp := Recommend(catalog.MustDefault(), p, recRequest("x"), testEpoch)

	require.Len(t, resp.Concerns, 1)
	assert.Equal(t, domain.ConcernAging, resp.Concerns[0].Concern)
	assert.Equal(t, []domain.Concern{"freckles"}, resp.CatalogGaps)
}

func TestRecommend_NoConcernsOmitsConcernSection(t *testing.T) {
	resp := Recommend(catalog.MustDefault(), testutil.NewTestProfile(), recRequest("x"), testEpoch)
	assert.NotContains(t, resp.Text, "Based on Your Concerns:")
}

func TestRecommend_FocusCarriedThrough(t *testing.T) {
	req := app.GetRecommendations{RequestType: domain.RequestIngredients, Message: "x"}
	resp := Recommend(catalog.MustDefault(), testutil.NewTestProfile(), req, testEpoch)
	assert.Equal(t, domain.RequestIngredients, resp.Focus)
	assert.Contains(t, resp.Text, "Recommended Routine:", "text always includes every section")
}

func TestFindAllergyAlerts(t *testing.T) {
	concerns := []app.ConcernGuidance{{Ingredients: []string{"Vitamin C", "Retinol"}}}
	alerts := FindAllergyAlerts([]string{" vitamin ", "", "nuts"}, []string{"Vitamin C", "Glycerin"}, concerns)

	require.Len(t, alerts, 1, "Vitamin C appears twice but is flagged once")
	assert.Equal(t, "Vitamin C", alerts[0].Ingredient)
	assert.Equal(t, " vitamin ", alerts[0].Allergy)
}

func TestRecommend_AllergyAlertsInText(t *testing.T) {
	p := testutil.NewTestProfile(
		testutil.WithSkinType(domain.SkinNormal),
		testutil.WithSeason(domain.SeasonSummer),
		testutil.WithAllergies("aloe"),
	)
	resp := Recommend(catalog.MustDefault(), p, recRequest("x"), testEpoch)

	require.Len(t, resp.AllergyAlerts, 1)
	assert.Contains(t, resp.Text, "\nAllergy Alerts:\n- Aloe Vera (matches your allergy: aloe)")
}
