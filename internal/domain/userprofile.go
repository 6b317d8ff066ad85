package domain

import "time"

// UserProfile is the session-owned view of what the advisor knows about the
// user. Empty enum values mean "not specified yet".
type UserProfile struct {
	SkinType        SkinType
	Concerns        []Concern
	CurrentSeason   Season
	Climate         Climate
	Allergies       []string
	CurrentProducts []string
	LastUpdate      *time.Time
}

// Complete reports whether the profile carries enough to compute seasonal
// guidance.
func (p UserProfile) Complete() bool {
	return p.SkinType != "" && p.CurrentSeason != ""
}

// Clone returns a deep copy so callers never share slices with the store.
func (p UserProfile) Clone() UserProfile {
	out := p
	out.Concerns = cloneSlice(p.Concerns)
	out.Allergies = cloneSlice(p.Allergies)
	out.CurrentProducts = cloneSlice(p.CurrentProducts)
	if p.LastUpdate != nil {
		t := *p.LastUpdate
		out.LastUpdate = &t
	}
	return out
}

// ProfileUpdate is a validated partial update. Nil fields are absent.
type ProfileUpdate struct {
	SkinType        *SkinType
	Concerns        *[]Concern
	Season          *Season
	Climate         *Climate
	Allergies       *[]string
	CurrentProducts *[]string
}

// Empty reports whether the update carries no fields at all.
func (u ProfileUpdate) Empty() bool {
	return u.SkinType == nil && u.Concerns == nil && u.Season == nil &&
		u.Climate == nil && u.Allergies == nil && u.CurrentProducts == nil
}

// ApplyUpdate merges the present fields of u into p and stamps LastUpdate.
// Present slices replace prior values wholesale. Concerns are deduplicated
// keeping first-seen order.
func ApplyUpdate(p UserProfile, u ProfileUpdate, now time.Time) UserProfile {
	out := p.Clone()
	if u.SkinType != nil {
		out.SkinType = *u.SkinType
	}
	if u.Concerns != nil {
		out.Concerns = dedupeConcerns(*u.Concerns)
	}
	if u.Season != nil {
		out.CurrentSeason = *u.Season
	}
	if u.Climate != nil {
		out.Climate = *u.Climate
	}
	if u.Allergies != nil {
		out.Allergies = cloneSlice(*u.Allergies)
	}
	if u.CurrentProducts != nil {
		out.CurrentProducts = cloneSlice(*u.CurrentProducts)
	}
	if out.LastUpdate != nil && now.Before(*out.LastUpdate) {
		now = *out.LastUpdate
	}
	out.LastUpdate = &now
	return out
}

func dedupeConcerns(in []Concern) []Concern {
	seen := make(map[Concern]bool, len(in))
	out := make([]Concern, 0, len(in))
	for _, c := range in {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
