package session

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"health-assistant-api/internal/model"
)

// MemoryStore keeps conversation history in process memory with a TTL.
// Suitable for single-instance deployments; history is lost on restart,
// which matches the session's ephemeral contract.
type MemoryStore struct {
	cache *cache.Cache
	ttl   time.Duration
	mu    sync.Mutex
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (s *MemoryStore) History(_ context.Context, sessionID string) ([]model.ChatTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, found := s.cache.Get(sessionID)
	if !found {
		return []model.ChatTurn{}, nil
	}

	turns := entry.([]model.ChatTurn)
	out := make([]model.ChatTurn, len(turns))
	copy(out, turns)
	return out, nil
}

// Append refreshes the session TTL: a session stays alive as long as the
// user keeps talking.
func (s *MemoryStore) Append(_ context.Context, sessionID string, turns ...model.ChatTurn) error {
	if len(turns) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var history []model.ChatTurn
	if entry, found := s.cache.Get(sessionID); found {
		history = entry.([]model.ChatTurn)
	}
	history = append(history, turns...)
	s.cache.Set(sessionID, history, s.ttl)
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Delete(sessionID)
	return nil
}
