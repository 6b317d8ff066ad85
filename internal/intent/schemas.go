// Package intent validates untyped action payloads from the hosting agent
// runtime and turns them into typed app.Action values.
package intent

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// actionAliases maps accepted alternate spellings onto canonical names.
var actionAliases = map[string]app.ActionName{
	"updateUserProfile":          app.ActionUpdateProfile,
	"updateProfile":              app.ActionUpdateProfile,
	"getRecommendations":         app.ActionGetRecommendations,
	"getSeasonalTransitionGuide": app.ActionTransitionGuide,
}

// ParseActionName resolves a wire action name.
func ParseActionName(s string) (app.ActionName, error) {
	name, ok := actionAliases[strings.TrimSpace(s)]
	if !ok {
		return "", &app.ValidationError{
			Code:    app.ValidationUnknownAction,
			Field:   "action",
			Message: fmt.Sprintf("unknown action %q", s),
		}
	}
	return name, nil
}

type actionValidator func(map[string]any) (app.Action, error)

var actionValidators = map[app.ActionName]actionValidator{
	app.ActionUpdateProfile:      validateUpdateProfile,
	app.ActionGetRecommendations: validateGetRecommendations,
	app.ActionTransitionGuide:    validateTransitionGuide,
}

// ValidateAction checks args against the schema for name and returns the
// typed action. Every field is checked before anything is built, so a
// failing payload yields no action at all. Unknown fields are ignored.
func ValidateAction(name app.ActionName, args map[string]any) (app.Action, error) {
	validator, ok := actionValidators[name]
	if !ok {
		return nil, &app.ValidationError{
			Code:    app.ValidationUnknownAction,
			Field:   "action",
			Message: fmt.Sprintf("unknown action %q", name),
		}
	}
	if args == nil {
		args = map[string]any{}
	}
	return validator(args)
}

func validateUpdateProfile(args map[string]any) (app.Action, error) {
	message, err := requireString(args, "message")
	if err != nil {
		return nil, err
	}

	var u domain.ProfileUpdate
	if v, ok, err := optionalEnum(args, "skinType", skinTypes); err != nil {
		return nil, err
	} else if ok {
		st := domain.SkinType(v)
		u.SkinType = &st
	}
	if vals, ok, err := optionalEnumArray(args, "concerns", concerns); err != nil {
		return nil, err
	} else if ok {
		list := make([]domain.Concern, len(vals))
		for i, v := range vals {
			list[i] = domain.Concern(v)
		}
		u.Concerns = &list
	}
	if v, ok, err := optionalEnum(args, "season", seasons); err != nil {
		return nil, err
	} else if ok {
		s := domain.Season(v)
		u.Season = &s
	}
	if v, ok, err := optionalEnum(args, "climate", climates); err != nil {
		return nil, err
	} else if ok {
		c := domain.Climate(v)
		u.Climate = &c
	}
	if vals, ok, err := optionalStringArray(args, "allergies"); err != nil {
		return nil, err
	} else if ok {
		u.Allergies = &vals
	}
	if vals, ok, err := optionalStringArray(args, "currentProducts"); err != nil {
		return nil, err
	} else if ok {
		u.CurrentProducts = &vals
	}

	return app.UpdateProfile{Update: u, Message: message}, nil
}

func validateGetRecommendations(args map[string]any) (app.Action, error) {
	rt, err := requireEnum(args, "requestType", requestTypes)
	if err != nil {
		return nil, err
	}
	message, err := requireString(args, "message")
	if err != nil {
		return nil, err
	}
	return app.GetRecommendations{RequestType: domain.RequestType(rt), Message: message}, nil
}

func validateTransitionGuide(args map[string]any) (app.Action, error) {
	next, err := requireEnum(args, "nextSeason", seasons)
	if err != nil {
		return nil, err
	}
	message, err := requireString(args, "message")
	if err != nil {
		return nil, err
	}
	return app.GetTransitionGuide{NextSeason: domain.Season(next), Message: message}, nil
}

// helper functions for type-safe argument extraction

func fieldError(code app.ValidationErrorCode, field, msg string) error {
	return &app.ValidationError{Code: code, Field: field, Message: msg}
}

// requireString accepts any string, including "", as long as the field is
// present and typed correctly.
func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", fieldError(app.ValidationMissingField, key, key+" is required")
	}
	s, ok := v.(string)
	if !ok {
		return "", fieldError(app.ValidationInvalidType, key, fmt.Sprintf("%s must be a string, got %T", key, v))
	}
	return s, nil
}

func requireEnum(args map[string]any, key string, set enumSet) (string, error) {
	s, ok, err := optionalEnum(args, key, set)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fieldError(app.ValidationMissingField, key, fmt.Sprintf("%s is required (one of %s)", key, set))
	}
	return s, nil
}

func optionalEnum(args map[string]any, key string, set enumSet) (string, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", false, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", false, fieldError(app.ValidationInvalidType, key, fmt.Sprintf("%s must be a string, got %T", key, v))
	}
	if !set.has(s) {
		return "", false, fieldError(app.ValidationInvalidEnum, key, fmt.Sprintf("%s must be one of %s, got %q", key, set, s))
	}
	return s, true, nil
}

func optionalStringArray(args map[string]any, key string) ([]string, bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, false, nil
	}
	switch arr := v.(type) {
	case []string:
		out := make([]string, len(arr))
		copy(out, arr)
		return out, true, nil
	case []any:
		out := make([]string, 0, len(arr))
		for i, item := range arr {
			s, isStr := item.(string)
			if !isStr {
				return nil, false, fieldError(app.ValidationInvalidType, key, fmt.Sprintf("%s[%d] must be a string, got %T", key, i, item))
			}
			out = append(out, s)
		}
		return out, true, nil
	default:
		return nil, false, fieldError(app.ValidationInvalidType, key, fmt.Sprintf("%s must be an array of strings, got %T", key, v))
	}
}

func optionalEnumArray(args map[string]any, key string, set enumSet) ([]string, bool, error) {
	vals, ok, err := optionalStringArray(args, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	for i, s := range vals {
		if !set.has(s) {
			return nil, false, fieldError(app.ValidationInvalidEnum, key, fmt.Sprintf("%s[%d] must be one of %s, got %q", key, i, set, s))
		}
	}
	return vals, true, nil
}

// enumSet is an accepted value list; its String form lists the values in
// canonical order for error messages.
type enumSet []string

func (e enumSet) has(s string) bool {
	for _, v := range e {
		if v == s {
			return true
		}
	}
	return false
}

func (e enumSet) String() string { return strings.Join(e, "|") }

var (
	skinTypes    = enumOf(domain.AllSkinTypes)
	concerns     = enumOf(domain.AllConcerns)
	seasons      = enumOf(domain.AllSeasons)
	climates     = enumOf(domain.AllClimates)
	requestTypes = enumOf(domain.AllRequestTypes)
)

func enumOf[T ~string](vals []T) enumSet {
	out := make(enumSet, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}
