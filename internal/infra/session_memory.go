package infra

import (
	"context"
	"sync"
	"time"

	"github.com/Vovarama1992/cloudio/internal/models"
	"github.com/Vovarama1992/cloudio/internal/ports"
)

type memorySession struct {
	state     models.ViewState
	expiresAt time.Time
}

type MemorySessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]memorySession
}

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]memorySession),
	}
}

var _ ports.SessionStore = (*MemorySessionStore)(nil)

func (s *MemorySessionStore) Load(_ context.Context, id string) (*models.ViewState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	if s.ttl > 0 && s.now().After(sess.expiresAt) {
		delete(s.sessions, id)
		return nil, nil
	}

	state := sess.state
	state.Search.Results = append([]models.SearchResult(nil), sess.state.Search.Results...)
	return &state, nil
}

func (s *MemorySessionStore) Save(_ context.Context, id string, state *models.ViewState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *state
	stored.Search.Results = append([]models.SearchResult(nil), state.Search.Results...)
	s.sessions[id] = memorySession{state: stored, expiresAt: s.now().Add(s.ttl)}

	s.sweepLocked()
	return nil
}

func (s *MemorySessionStore) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for id, sess := range s.sessions {
		if now.After(sess.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
