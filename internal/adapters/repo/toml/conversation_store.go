package toml

import (
	"context"
	"sync"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
	"github.com/spf13/viper"
)

const (
	historyPathKey     = "history.path"
	conversationsFile  = "conversations.toml"
	conversationsLabel = "conversations"
)

// ConversationStore keeps every personality's history in one TOML file.
// Each Append rewrites the file, which is fine for the short dialogue
// histories this tool produces.
type ConversationStore struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.ConversationStore = (*ConversationStore)(nil)

func NewConversationStore(cfg *viper.Viper) (*ConversationStore, error) {
	path, err := resolvePath(cfg, historyPathKey, conversationsFile)
	if err != nil {
		return nil, err
	}

	return &ConversationStore{path: path, mu: lockForPath(path)}, nil
}

func (s *ConversationStore) Append(ctx context.Context, id domain.PersonalityID, message domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var file conversationsFileSchema
	if err := readTOMLFile(s.path, conversationsLabel, &file); err != nil {
		return err
	}

	encoded := messageSchema{Role: string(message.Role), Content: message.Content}
	appended := false
	for i := range file.Conversations {
		if file.Conversations[i].PersonalityID == string(id) {
			file.Conversations[i].Messages = append(file.Conversations[i].Messages, encoded)
			appended = true
			break
		}
	}
	if !appended {
		file.Conversations = append(file.Conversations, conversationSchema{
			PersonalityID: string(id),
			Messages:      []messageSchema{encoded},
		})
	}

	return writeTOMLFile(s.path, conversationsLabel, &file)
}

func (s *ConversationStore) Snapshot(ctx context.Context, id domain.PersonalityID) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var file conversationsFileSchema
	if err := readTOMLFile(s.path, conversationsLabel, &file); err != nil {
		return nil, err
	}

	for _, conversation := range file.Conversations {
		if conversation.PersonalityID != string(id) {
			continue
		}

		messages := make([]domain.Message, 0, len(conversation.Messages))
		for _, message := range conversation.Messages {
			messages = append(messages, domain.Message{Role: domain.Role(message.Role), Content: message.Content})
		}
		return messages, nil
	}

	return []domain.Message{}, nil
}

func (s *ConversationStore) Clear(ctx context.Context, id domain.PersonalityID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var file conversationsFileSchema
	if err := readTOMLFile(s.path, conversationsLabel, &file); err != nil {
		return err
	}

	kept := file.Conversations[:0]
	for _, conversation := range file.Conversations {
		if conversation.PersonalityID != string(id) {
			kept = append(kept, conversation)
		}
	}
	if len(kept) == len(file.Conversations) {
		return nil
	}
	file.Conversations = kept

	return writeTOMLFile(s.path, conversationsLabel, &file)
}
