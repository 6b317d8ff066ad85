package contract

import (
	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

func FromSession(s *app.Session) SessionBody {
	return SessionBody{ID: s.ID, StartedAt: s.StartedAt}
}

func FromProfile(p domain.UserProfile) ProfileBody {
	return ProfileBody{
		SkinType:        string(p.SkinType),
		Concerns:        stringsOf(p.Concerns),
		CurrentSeason:   string(p.CurrentSeason),
		Climate:         string(p.Climate),
		Allergies:       nonNil(p.Allergies),
		CurrentProducts: nonNil(p.CurrentProducts),
		LastUpdate:      p.LastUpdate,
	}
}

func FromJournal(entries []app.JournalEntry) []JournalEntryBody {
	out := make([]JournalEntryBody, 0, len(entries))
	for _, e := range entries {
		out = append(out, JournalEntryBody{
			ID:        e.ID,
			Action:    string(e.Action),
			Outcome:   string(e.Outcome),
			Field:     e.Field,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}

func FromReply(r *app.Reply) ReplyBody {
	body := ReplyBody{
		Action:  string(r.Action),
		Outcome: string(r.Outcome),
		Text:    r.Text,
		Profile: FromProfile(r.Profile),
	}
	if r.Update != nil {
		body.Conflicts = r.Update.Conflicts
	}
	if rec := r.Recommendation; rec != nil && rec.Outcome == app.OutcomeCompleted {
		body.Recommendation = fromRecommendation(rec)
	}
	if tr := r.Transition; tr != nil && tr.Outcome == app.OutcomeCompleted {
		body.Transition = fromTransition(tr)
	}
	return body
}

func fromRecommendation(rec *app.RecommendationResponse) *RecommendationBody {
	concerns := make([]ConcernBody, 0, len(rec.Concerns))
	for _, c := range rec.Concerns {
		concerns = append(concerns, ConcernBody{
			Concern:     string(c.Concern),
			Products:    nonNil(c.Products),
			Ingredients: nonNil(c.Ingredients),
			Avoid:       nonNil(c.Avoid),
		})
	}
	alerts := make([]AllergyAlertBody, 0, len(rec.AllergyAlerts))
	for _, a := range rec.AllergyAlerts {
		alerts = append(alerts, AllergyAlertBody{Ingredient: a.Ingredient, Allergy: a.Allergy})
	}
	return &RecommendationBody{
		GeneratedAt:   rec.GeneratedAt,
		Focus:         string(rec.Focus),
		Season:        string(rec.Season),
		SeasonIcon:    rec.SeasonIcon,
		SkinType:      string(rec.SkinType),
		Routine:       nonNil(rec.Routine),
		Ingredients:   nonNil(rec.Ingredients),
		Concerns:      concerns,
		AllergyAlerts: alerts,
	}
}

func fromTransition(tr *app.TransitionResponse) *TransitionBody {
	return &TransitionBody{
		GeneratedAt:  tr.GeneratedAt,
		SkinType:     string(tr.SkinType),
		From:         string(tr.From),
		FromIcon:     tr.FromIcon,
		To:           string(tr.To),
		ToIcon:       tr.ToIcon,
		CurrentPlan:  fromPlan(tr.CurrentPlan),
		NextPlan:     fromPlan(tr.NextPlan),
		AddedSteps:   nonNil(tr.AddedSteps),
		RemovedSteps: nonNil(tr.RemovedSteps),
		Tips:         nonNil(tr.Tips),
	}
}

func fromPlan(p catalog.Plan) PlanBody {
	return PlanBody{Routine: nonNil(p.Routine), Ingredients: nonNil(p.Ingredients)}
}

// FromSkinTypes lists the catalog's skin types in canonical order.
func FromSkinTypes(cat *catalog.Catalog) []SkinTypeBody {
	out := make([]SkinTypeBody, 0, len(domain.AllSkinTypes))
	for _, st := range domain.AllSkinTypes {
		out = append(out, SkinTypeBody{SkinType: string(st), Description: cat.Describe(st)})
	}
	return out
}

// FromValidationError maps a rejected payload onto an error body.
func FromValidationError(ve *app.ValidationError) ErrorBody {
	return ErrorBody{Code: string(ve.Code), Field: ve.Field, Message: ve.Message}
}

func stringsOf[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
