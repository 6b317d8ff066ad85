package service

import (
	"fmt"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/app"
	"github.com/alexanderramin/skinadvisor/internal/catalog"
	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// Advisor turns a validated action and the current profile into the next
// profile and a reply. It holds no session state.
type Advisor struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewAdvisor(cat *catalog.Catalog, now func() time.Time) *Advisor {
	if now == nil {
		now = time.Now
	}
	return &Advisor{catalog: cat, now: now}
}

// Catalog returns the reference catalog the advisor reads from.
func (a *Advisor) Catalog() *catalog.Catalog { return a.catalog }

// Handle applies action to p. Read-only actions return p unchanged.
func (a *Advisor) Handle(p domain.UserProfile, action app.Action) (domain.UserProfile, *app.Reply) {
	now := a.now().UTC()
	switch act := action.(type) {
	case app.UpdateProfile:
		next := domain.ApplyUpdate(p, act.Update, now)
		upd := &app.UpdateResponse{Message: act.Message, Conflicts: []string{}}
		text := act.Message
		if act.Update.CurrentProducts != nil {
			upd.Conflicts = DetectConflicts(a.catalog.Conflicts, *act.Update.CurrentProducts)
			if warning := ConflictWarning(upd.Conflicts); warning != "" {
				text = warning + "\n\n" + act.Message
			}
		}
		return next, &app.Reply{
			Action:  act.Name(),
			Outcome: app.OutcomeCompleted,
			Text:    text,
			Profile: next.Clone(),
			Update:  upd,
		}

	case app.GetRecommendations:
		rec := Recommend(a.catalog, p, act, now)
		return p, &app.Reply{
			Action:         act.Name(),
			Outcome:        rec.Outcome,
			Text:           rec.Text,
			Profile:        p.Clone(),
			Recommendation: rec,
		}

	case app.GetTransitionGuide:
		tr := PlanTransition(a.catalog, p, act, now)
		return p, &app.Reply{
			Action:     act.Name(),
			Outcome:    tr.Outcome,
			Text:       tr.Text,
			Profile:    p.Clone(),
			Transition: tr,
		}
	}
	panic(fmt.Sprintf("service: unhandled action %T", action))
}
