package intent

import (
	"testing"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildAdvisorPrompt_EmptyProfile(t *testing.T) {
	out := BuildAdvisorPrompt(catalog.MustDefault(), domain.UserProfile{})

	assert.Contains(t, out, "expert skincare advisor")
	assert.Contains(t, out, "Skin Type: Not specified")
	assert.Contains(t, out, "Concerns: None specified")
	assert.Contains(t, out, "Season: Not specified")
	assert.Contains(t, out, "Climate: Not specified")
	assert.Contains(t, out, "5. Current skincare routine")
}

func TestBuildAdvisorPrompt_FilledProfile(t *testing.T) {
	p := domain.UserProfile{
		SkinType:      domain.SkinCombination,
		Concerns:      []domain.Concern{domain.ConcernAcne, domain.ConcernPigmentation},
		CurrentSeason: domain.SeasonWinter,
		Climate:       domain.ClimateTemperate,
		Allergies:     []string{"lanolin"},
	}
	out := BuildAdvisorPrompt(catalog.MustDefault(), p)

	assert.Contains(t, out, "Skin Type: combination (Oily T-zone, dry cheeks)")
	assert.Contains(t, out, "Concerns: acne, pigmentation")
	assert.Contains(t, out, "Season: ❄️ winter")
	assert.Contains(t, out, "Climate: temperate")
	assert.Contains(t, out, "Allergies: lanolin")
}
