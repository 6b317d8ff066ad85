package app

import (
	"time"

	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// Outcome classifies how an action finished. An incomplete profile is a
// normal terminal outcome, not an error.
type Outcome string

const (
	OutcomeCompleted         Outcome = "completed"
	OutcomeIncompleteProfile Outcome = "incomplete_profile"
)

// Reply is the text block handed back to the hosting runtime, plus the
// structured payload that produced it.
type Reply struct {
	Action         ActionName
	Outcome        Outcome
	Text           string
	Profile        domain.UserProfile
	Update         *UpdateResponse
	Recommendation *RecommendationResponse
	Transition     *TransitionResponse
}

type UpdateResponse struct {
	Message   string
	Conflicts []string
}

// ConcernGuidance is the catalog guidance for one of the profile's concerns.
type ConcernGuidance struct {
	Concern     domain.Concern
	Products    []string
	Ingredients []string
	Avoid       []string
}

// AllergyAlert flags a recommended ingredient that matches a user allergy.
type AllergyAlert struct {
	Ingredient string
	Allergy    string
}

type RecommendationResponse struct {
	GeneratedAt   time.Time
	Outcome       Outcome
	Focus         domain.RequestType
	Message       string
	Season        domain.Season
	SeasonIcon    string
	SkinType      domain.SkinType
	Routine       []string
	Ingredients   []string
	Concerns      []ConcernGuidance
	AllergyAlerts []AllergyAlert
	CatalogGaps   []domain.Concern
	Text          string
}

type TransitionResponse struct {
	GeneratedAt  time.Time
	Outcome      Outcome
	Message      string
	SkinType     domain.SkinType
	From         domain.Season
	FromIcon     string
	To           domain.Season
	ToIcon       string
	CurrentPlan  catalog.Plan
	NextPlan     catalog.Plan
	AddedSteps   []string
	RemovedSteps []string
	Tips         []string
	Text         string
}
