package ports

import (
	"context"

	"github.com/bnema/persona-relay/internal/domain"
)

type PersonalityRepository interface {
	GetByID(ctx context.Context, id domain.PersonalityID) (domain.Personality, error)
	List(ctx context.Context) ([]domain.Personality, error)
	Save(ctx context.Context, personality domain.Personality) error
	Delete(ctx context.Context, id domain.PersonalityID) error
}
