package service

import (
	"context"
	"sync"
	"time"

	"github.com/Brunera17/TCC/internal/auth/domain"
)

// MemoryRefreshStore keeps active refresh tokens in process memory. It is
// only correct for a single-process deployment and is emptied on restart.
type MemoryRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	// Now decides which entries are stale enough to prune.
	Now func() time.Time
}

func NewMemoryRefreshStore() *MemoryRefreshStore {
	return &MemoryRefreshStore{tokens: make(map[string]time.Time), Now: time.Now}
}

// Add also drops entries that expired more than domain.RefreshExpiryGrace ago
// without being verified again.
func (s *MemoryRefreshStore) Add(_ context.Context, tokenID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.Now().Add(-domain.RefreshExpiryGrace)
	for id, exp := range s.tokens {
		if exp.Before(cutoff) {
			delete(s.tokens, id)
		}
	}
	s.tokens[tokenID] = expiresAt
	return nil
}

func (s *MemoryRefreshStore) Contains(_ context.Context, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[tokenID]
	return ok, nil
}

func (s *MemoryRefreshStore) Remove(_ context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenID)
	return nil
}

// Len returns the number of tracked tokens.
func (s *MemoryRefreshStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
