package memory

import (
	"context"
	"sync"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
)

// ConversationStore keeps histories in process memory for the lifetime of
// the store.
type ConversationStore struct {
	mu        sync.RWMutex
	histories map[domain.PersonalityID][]domain.Message
}

var _ ports.ConversationStore = (*ConversationStore)(nil)

func NewConversationStore() *ConversationStore {
	return &ConversationStore{histories: make(map[domain.PersonalityID][]domain.Message)}
}

func (s *ConversationStore) Append(ctx context.Context, id domain.PersonalityID, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.histories[id] = append(s.histories[id], message)
	return nil
}

func (s *ConversationStore) Snapshot(ctx context.Context, id domain.PersonalityID) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.histories[id]
	snapshot := make([]domain.Message, len(history))
	copy(snapshot, history)
	return snapshot, nil
}

func (s *ConversationStore) Clear(ctx context.Context, id domain.PersonalityID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.histories, id)
	return nil
}
