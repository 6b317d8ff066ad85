package app

import "github.com/alexanderramin/skinadvisor/internal/domain"

// ActionName is the wire name of an inbound action.
type ActionName string

const (
	ActionUpdateProfile      ActionName = "updateUserProfile"
	ActionGetRecommendations ActionName = "getRecommendations"
	ActionTransitionGuide    ActionName = "getSeasonalTransitionGuide"
)

// AllActions lists the accepted action names in display order.
var AllActions = []ActionName{ActionUpdateProfile, ActionGetRecommendations, ActionTransitionGuide}

// Action is the closed set of validated inbound actions. Only the types in
// this file implement it.
type Action interface {
	Name() ActionName
	isAction()
}

// UpdateProfile merges the present fields into the session profile and
// echoes Message.
type UpdateProfile struct {
	Update  domain.ProfileUpdate
	Message string
}

// GetRecommendations asks for seasonal and concern guidance.
type GetRecommendations struct {
	RequestType domain.RequestType
	Message     string
}

// GetTransitionGuide asks for the plan change from the current season to
// NextSeason.
type GetTransitionGuide struct {
	NextSeason domain.Season
	Message    string
}

func (UpdateProfile) Name() ActionName      { return ActionUpdateProfile }
func (GetRecommendations) Name() ActionName { return ActionGetRecommendations }
func (GetTransitionGuide) Name() ActionName { return ActionTransitionGuide }

func (UpdateProfile) isAction()      {}
func (GetRecommendations) isAction() {}
func (GetTransitionGuide) isAction() {}
