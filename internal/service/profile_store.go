package service

import (
	"sync"

	"github.com/alexanderramin/skinadvisor/internal/domain"
)

// ProfileStore owns one session's profile. All reads and writes go through
// its mutex so a reader sees either the pre- or post-update profile.
type ProfileStore struct {
	mu      sync.Mutex
	profile domain.UserProfile
}

func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// Snapshot returns a deep copy of the current profile.
func (s *ProfileStore) Snapshot() domain.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// Transact runs fn on a copy of the current profile with the lock held and
// stores whatever fn returns. Nothing is stored when fn fails.
func (s *ProfileStore) Transact(fn func(domain.UserProfile) (domain.UserProfile, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.profile.Clone())
	if err != nil {
		return err
	}
	s.profile = next.Clone()
	return nil
}
