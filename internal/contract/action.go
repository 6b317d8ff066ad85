package contract

import "time"

// ActionRequest is one inbound action from the hosting agent runtime.
type ActionRequest struct {
	Action string         `json:"action"`
	Args   map[string]any `json:"args"`
}

// ReplyBody carries the text block plus whichever structured payload the
// action produced. Conflicts lists product conflicts from the profile
// update that preceded the action, if any.
type ReplyBody struct {
	Action         string              `json:"action"`
	Outcome        string              `json:"outcome"`
	Text           string              `json:"text"`
	Profile        ProfileBody         `json:"profile"`
	Conflicts      []string            `json:"conflicts,omitempty"`
	Recommendation *RecommendationBody `json:"recommendation,omitempty"`
	Transition     *TransitionBody     `json:"transition,omitempty"`
}

type ConcernBody struct {
	Concern     string   `json:"concern"`
	Products    []string `json:"products"`
	Ingredients []string `json:"ingredients"`
	Avoid       []string `json:"avoid"`
}

type AllergyAlertBody struct {
	Ingredient string `json:"ingredient"`
	Allergy    string `json:"allergy"`
}

type RecommendationBody struct {
	GeneratedAt   time.Time          `json:"generatedAt"`
	Focus         string             `json:"focus"`
	Season        string             `json:"season,omitempty"`
	SeasonIcon    string             `json:"seasonIcon,omitempty"`
	SkinType      string             `json:"skinType,omitempty"`
	Routine       []string           `json:"routine"`
	Ingredients   []string           `json:"ingredients"`
	Concerns      []ConcernBody      `json:"concerns"`
	AllergyAlerts []AllergyAlertBody `json:"allergyAlerts"`
}

type PlanBody struct {
	Routine     []string `json:"routine"`
	Ingredients []string `json:"ingredients"`
}

type TransitionBody struct {
	GeneratedAt  time.Time `json:"generatedAt"`
	SkinType     string    `json:"skinType,omitempty"`
	From         string    `json:"from,omitempty"`
	FromIcon     string    `json:"fromIcon,omitempty"`
	To           string    `json:"to"`
	ToIcon       string    `json:"toIcon,omitempty"`
	CurrentPlan  PlanBody  `json:"currentPlan"`
	NextPlan     PlanBody  `json:"nextPlan"`
	AddedSteps   []string  `json:"addedSteps"`
	RemovedSteps []string  `json:"removedSteps"`
	Tips         []string  `json:"tips"`
}
