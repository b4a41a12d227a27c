package ports

import (
	"context"

	"github.com/bnema/persona-relay/internal/domain"
)

// ConversationStore keeps one ordered history per personality. Snapshot
// returns a copy in append order; an unknown personality has an empty
// history, not an error.
type ConversationStore interface {
	Append(ctx context.Context, id domain.PersonalityID, message domain.Message) error
	Snapshot(ctx context.Context, id domain.PersonalityID) ([]domain.Message, error)
	Clear(ctx context.Context, id domain.PersonalityID) error
}
