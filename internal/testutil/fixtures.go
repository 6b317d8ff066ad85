package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// ProfileOption customises a fixture profile.
type ProfileOption func(*domain.UserProfile)

func WithSkinType(s domain.SkinType) ProfileOption {
	return func(p *domain.UserProfile) { p.SkinType = s }
}

func WithSeason(s domain.Season) ProfileOption {
	return func(p *domain.UserProfile) { p.CurrentSeason = s }
}

func WithConcerns(cs ...domain.Concern) ProfileOption {
	return func(p *domain.UserProfile) { p.Concerns = cs }
}

func WithClimate(c domain.Climate) ProfileOption {
	return func(p *domain.UserProfile) { p.Climate = c }
}

func WithAllergies(a ...string) ProfileOption {
	return func(p *domain.UserProfile) { p.Allergies = a }
}

func WithProducts(products ...string) ProfileOption {
	return func(p *domain.UserProfile) { p.CurrentProducts = products }
}

func WithLastUpdate(t time.Time) ProfileOption {
	return func(p *domain.UserProfile) { p.LastUpdate = &t }
}

// NewTestProfile returns a complete normal-skin spring profile unless
// options say otherwise.
func NewTestProfile(opts ...ProfileOption) domain.UserProfile {
	p := domain.UserProfile{
		SkinType:      domain.SkinNormal,
		CurrentSeason: domain.SeasonSpring,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Ptr returns a pointer to v. Handy for building domain.ProfileUpdate values.
func Ptr[T any](v T) *T { return &v }

// FixedClock returns a clock that starts at start and advances by step on
// every call. It is safe for concurrent use.
func FixedClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(step)
		return now
	}
}
