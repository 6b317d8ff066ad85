package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestFormatUpdate_WarningThenMessage(t *testing.T) {
	conflicts := []string{"Retinol Serum and Vitamin C Serum shouldn't be used together"}
	body := contract.ReplyBody{
		Action:    "updateUserProfile",
		Outcome:   "completed",
		Text:      "Product Compatibility Warning:\n" + conflicts[0] + "\n\nSaved.",
		Conflicts: conflicts,
		Profile:   contract.ProfileBody{CurrentProducts: []string{"Retinol Serum", "Vitamin C Serum"}},
	}

	out := stripANSI(FormatReply(body))
	assert.Contains(t, out, "PRODUCT COMPATIBILITY WARNING")
	assert.Contains(t, out, "⚠ "+conflicts[0])
	assert.Contains(t, out, "✓ Saved.")
	assert.NotContains(t, out, "Product Compatibility Warning:")
	assert.Contains(t, out, "Products: Retinol Serum, Vitamin C Serum")
}

func TestFormatConflicts_None(t *testing.T) {
	assert.Equal(t, "✓ No product conflicts found.\n", stripANSI(FormatConflicts(nil)))
}

func TestFormatProfile(t *testing.T) {
	at := time.Date(2026, 3, 1, 8, 30, 0, 0, time.UTC)
	out := stripANSI(FormatProfile(contract.ProfileBody{
		SkinType:      "combination",
		CurrentSeason: "spring",
		Concerns:      []string{"acne", "aging"},
		LastUpdate:    &at,
	}))
	assert.Contains(t, out, "PROFILE")
	assert.Contains(t, out, "Skin type: combination")
	assert.Contains(t, out, "Concerns: acne, aging")
	assert.Contains(t, out, "Climate: not set")
	assert.Contains(t, out, "Allergies: none")
	assert.Contains(t, out, "Updated 2026-03-01T08:30:00Z")
}

func TestFormatHistory(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	out := stripANSI(FormatHistory([]contract.JournalEntryBody{
		{Action: "updateUserProfile", Outcome: "accepted", CreatedAt: now.Add(-10 * time.Minute)},
		{Action: "getRecommendations", Outcome: "rejected", Field: "requestType", Detail: "INVALID_ENUM", CreatedAt: now.Add(-2 * time.Minute)},
	}, now))

	assert.Contains(t, out, "ACTION")
	assert.Contains(t, out, "updateUserProfile")
	assert.Contains(t, out, "requestType: INVALID_ENUM")
	assert.Contains(t, out, "10m ago")
	assert.Contains(t, out, "rejected")
}

func TestFormatHistory_Empty(t *testing.T) {
	assert.Equal(t, "No actions recorded yet.\n", stripANSI(FormatHistory(nil, time.Now())))
}

func TestFormatSkinTypes(t *testing.T) {
	out := stripANSI(FormatSkinTypes([]contract.SkinTypeBody{
		{SkinType: "dry", Description: "Feels tight, may have flaky patches"},
	}))
	assert.Contains(t, out, "SKIN TYPE")
	assert.Contains(t, out, "Feels tight, may have flaky patches")
}
