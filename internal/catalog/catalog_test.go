package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EveryPairHasRoutineAndIngredients(t *testing.T) {
	c := MustDefault()
	for _, season := range domain.AllSeasons {
		for _, skin := range domain.AllSkinTypes {
			plan, ok := c.Plan(season, skin)
			require.True(t, ok, "%s/%s missing", season, skin)
			assert.NotEmpty(t, plan.Routine, "%s/%s routine", season, skin)
			assert.NotEmpty(t, plan.Ingredients, "%s/%s ingredients", season, skin)
		}
		assert.NotEmpty(t, c.Icon(season), "%s icon", season)
	}
}

func TestDefault_SummerOily(t *testing.T) {
	plan, ok := MustDefault().Plan(domain.SeasonSummer, domain.SkinOily)
	require.True(t, ok)
	assert.Equal(t, []string{"Foaming cleanser", "Light moisturizer", "Mattifying SPF"}, plan.Routine)
	assert.Equal(t, []string{"BHA", "Niacinamide", "Tea Tree"}, plan.Ingredients)
}

func TestDefault_ConcernsAndDescriptions(t *testing.T) {
	c := MustDefault()
	acne, ok := c.Concern(domain.ConcernAcne)
	require.True(t, ok)
	assert.Equal(t, []string{"Spot treatment", "Oil-free moisturizer", "Clay mask"}, acne.Products)
	assert.Equal(t, []string{"Heavy oils", "Comedogenic ingredients"}, acne.Avoid)

	for _, skin := range domain.AllSkinTypes {
		assert.NotEmpty(t, c.Describe(skin), skin)
	}
}

func TestDefault_ConflictRulesLowercasedInOrder(t *testing.T) {
	rules := MustDefault().Conflicts
	require.Len(t, rules, 4)
	assert.Equal(t, "retinol", rules[0].Trigger)
	assert.Equal(t, []string{"vitamin c", "aha", "bha"}, rules[0].Incompatible)
	assert.Equal(t, "benzoyl peroxide", rules[1].Trigger)
}

func TestPlan_UnknownKeys(t *testing.T) {
	c := MustDefault()
	_, ok := c.Plan("monsoon", domain.SkinDry)
	assert.False(t, ok)
	_, ok = c.Plan(domain.SeasonFall, "greasy")
	assert.False(t, ok)
	assert.Equal(t, "", c.Icon("monsoon"))
}

func TestParse_RejectsMissingSkinTypePlan(t *testing.T) {
	doc := []byte(`
skin_types: {normal: a, dry: b, oily: c, combination: d, sensitive: e}
seasons:
  spring:
    icon: x
    plans:
      normal: {routine: [a], ingredients: [b]}
concerns: {acne: {}, aging: {}, pigmentation: {}, sensitivity: {}}
`)
	_, err := Parse(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), `season "spring" has no plan for "dry"`)
	assert.Contains(t, err.Error(), `season "winter" missing`)
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("skin_tones: {}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding catalog")
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, defaultDocument, 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Seasons, 4)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog")
}
