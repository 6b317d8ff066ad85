package intent

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

const advisorPersona = `You are an expert skincare advisor with deep knowledge of ingredients,
product formulations, and skin conditions.`

var gatheringChecklist = []string{
	"Skin type and sensitivity level",
	"Specific concerns and goals",
	"Current season and climate",
	"Any known allergies or sensitivities",
	"Current skincare routine",
}

// BuildAdvisorPrompt renders the context block the hosting agent runtime
// feeds its model each turn: persona, the current profile and what is
// still worth asking about.
func BuildAdvisorPrompt(cat *catalog.Catalog, p domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(advisorPersona)
	b.WriteString(" Current user profile:\n\n")

	season := "Not specified"
	if p.CurrentSeason != "" {
		season = strings.TrimSpace(cat.Icon(p.CurrentSeason) + " " + string(p.CurrentSeason))
	}
	skin := domain.CoalesceStr(string(p.SkinType), "Not specified")
	if desc := cat.Describe(p.SkinType); desc != "" {
		skin = fmt.Sprintf("%s (%s)", p.SkinType, desc)
	}

	fmt.Fprintf(&b, "Skin Type: %s\n", skin)
	fmt.Fprintf(&b, "Concerns: %s\n", domain.JoinOr(p.Concerns, ", ", "None specified"))
	fmt.Fprintf(&b, "Season: %s\n", season)
	fmt.Fprintf(&b, "Climate: %s\n", domain.CoalesceStr(string(p.Climate), "Not specified"))
	fmt.Fprintf(&b, "Allergies: %s\n", domain.JoinOr(p.Allergies, ", ", "None specified"))
	fmt.Fprintf(&b, "Current Products: %s\n", domain.JoinOr(p.CurrentProducts, ", ", "None specified"))

	b.WriteString("\nGather information about:\n")
	for i, item := range gatheringChecklist {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	b.WriteString("\nProvide evidence-based recommendations and explain the role of each product/ingredient.\n")
	return b.String()
}
