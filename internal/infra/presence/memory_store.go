package presence

import (
	"context"
	"sync"
	"time"

	"heyfarmer/internal/domain/service"

	"github.com/google/uuid"
)

// memoryStore is the single-process TypingStore.
type memoryStore struct {
	mu      sync.Mutex
	expires map[uuid.UUID]map[uuid.UUID]time.Time
	now     func() time.Time
}

// NewMemoryStore builds an in-process TypingStore.
func NewMemoryStore() service.TypingStore {
	return &memoryStore{
		expires: make(map[uuid.UUID]map[uuid.UUID]time.Time),
		now:     time.Now,
	}
}

func (s *memoryStore) SetTyping(_ context.Context, conversationID, userID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, ok := s.expires[conversationID]
	if !ok {
		users = make(map[uuid.UUID]time.Time)
		s.expires[conversationID] = users
	}
	users[userID] = s.now().Add(ttl)

	return nil
}

func (s *memoryStore) ListTyping(_ context.Context, conversationID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	users := s.expires[conversationID]
	typing := make([]uuid.UUID, 0, len(users))
	for userID, until := range users {
		if !now.Before(until) {
			delete(users, userID)

			continue
		}
		typing = append(typing, userID)
	}
	if len(users) == 0 {
		delete(s.expires, conversationID)
	}

	return typing, nil
}
