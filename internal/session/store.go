// Package session holds per-browser login state in process memory.
// Everything here is intentionally volatile: a restart logs everyone out.
package session

import (
	"context"
	"sync"
	"time"

	"fitlog/internal/models"

	"github.com/google/uuid"
)

const defaultTTL = 24 * time.Hour

// Store is a concurrency-safe map of live sessions keyed by opaque id.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]models.Session
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]models.Session),
	}
}

// Create registers a new authenticated session for the user and returns it.
func (s *Store) Create(userID int, username string) models.Session {
	now := time.Now().UTC()
	sess := models.Session{
		ID:            uuid.NewString(),
		UserID:        userID,
		Username:      username,
		Authenticated: true,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns the live session for id. Expired sessions are dropped on access.
func (s *Store) Get(id string) (models.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return models.Session{}, false
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		s.Delete(id)
		return models.Session{}, false
	}
	return sess, true
}

// Delete invalidates a session. Unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// PurgeExpired removes every expired session and reports how many were dropped.
func (s *Store) PurgeExpired() int {
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := 0
	for id, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Janitor purges expired sessions on a tick until the context is cancelled.
// Run it from main as a background goroutine.
func (s *Store) Janitor(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = time.Minute
	}
	t := time.NewTicker(tick)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.PurgeExpired()
		}
	}
}
