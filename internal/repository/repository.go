// Package repository provides the in-memory stores for per-chat sessions
// and body profiles. All state is volatile by design; nothing survives a
// process restart.
package repository

import (
	"sync"

	"calobot/internal/models"
)

// Sessions stores tracking sessions keyed by chat ID. Mutation goes through
// Update so timer callbacks always operate on the live record instead of a
// copy captured when the timer was armed.
type Sessions struct {
	mu     sync.RWMutex
	byChat map[int64]*models.Session
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{byChat: make(map[int64]*models.Session)}
}

// Get returns a copy of the session for the chat, and whether it exists.
func (r *Sessions) Get(chatID int64) (models.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byChat[chatID]
	if !ok {
		return models.Session{}, false
	}
	return *s, true
}

// Update applies fn to the live session for the chat, creating the session
// first if it does not exist yet. The whole read-modify-write runs under
// the store lock.
func (r *Sessions) Update(chatID int64, fn func(s *models.Session)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.byChat[chatID]
	if !ok {
		s = &models.Session{ChatID: chatID}
		r.byChat[chatID] = s
	}
	fn(s)
}

// ForEach calls fn for every stored session under the store lock. fn may
// mutate the session; it must not call back into the store.
func (r *Sessions) ForEach(fn func(s *models.Session)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.byChat {
		fn(s)
	}
}

// Counts returns the number of stored sessions and how many are enabled.
func (r *Sessions) Counts() (total, enabled int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total = len(r.byChat)
	for _, s := range r.byChat {
		if s.Enabled {
			enabled++
		}
	}
	return total, enabled
}

// Profiles stores body profiles keyed by chat ID. Chats without an explicit
// profile fall back to the configured default.
type Profiles struct {
	mu         sync.RWMutex
	byChat     map[int64]models.Profile
	defProfile models.Profile
}

// NewProfiles creates a profile store with the given default profile.
func NewProfiles(def models.Profile) *Profiles {
	return &Profiles{
		byChat:     make(map[int64]models.Profile),
		defProfile: def,
	}
}

// Get returns the profile for the chat, or the default if none was set.
func (r *Profiles) Get(chatID int64) models.Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.byChat[chatID]; ok {
		return p
	}
	return r.defProfile
}

// SetWeight replaces the weight in the chat's profile and returns the
// profile before and after the change.
func (r *Profiles) SetWeight(chatID int64, weightKg float64) (old, updated models.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old = r.defProfile
	if p, ok := r.byChat[chatID]; ok {
		old = p
	}
	updated = old
	updated.WeightKg = weightKg
	r.byChat[chatID] = updated
	return old, updated
}
