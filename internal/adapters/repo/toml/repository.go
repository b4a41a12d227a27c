package toml

import (
	"context"
	"sync"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
	"github.com/spf13/viper"
)

const (
	personalitiesPathKey = "personalities.path"
	personalitiesFile    = "personalities.toml"
	personalitiesLabel   = "personalities"
)

// Repository stores personalities in a single TOML file.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.PersonalityRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	path, err := resolvePath(cfg, personalitiesPathKey, personalitiesFile)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Save(ctx context.Context, personality domain.Personality) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var file personalitiesFileSchema
	if err := readTOMLFile(r.path, personalitiesLabel, &file); err != nil {
		return err
	}

	encoded := toSchema(personality)
	updated := false
	for i := range file.Personalities {
		if file.Personalities[i].ID == encoded.ID {
			file.Personalities[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Personalities = append(file.Personalities, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, personalitiesLabel, &file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.PersonalityID) (domain.Personality, error) {
	if err := ctx.Err(); err != nil {
		return domain.Personality{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var file personalitiesFileSchema
	if err := readTOMLFile(r.path, personalitiesLabel, &file); err != nil {
		return domain.Personality{}, err
	}

	for _, entry := range file.Personalities {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Personality{}, domain.ErrPersonalityNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Personality, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var file personalitiesFileSchema
	if err := readTOMLFile(r.path, personalitiesLabel, &file); err != nil {
		return nil, err
	}

	personalities := make([]domain.Personality, 0, len(file.Personalities))
	for _, entry := range file.Personalities {
		personalities = append(personalities, fromSchema(entry))
	}

	return personalities, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.PersonalityID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var file personalitiesFileSchema
	if err := readTOMLFile(r.path, personalitiesLabel, &file); err != nil {
		return err
	}

	kept := file.Personalities[:0]
	found := false
	for _, entry := range file.Personalities {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrPersonalityNotFound
	}
	file.Personalities = kept

	return writeTOMLFile(r.path, personalitiesLabel, &file)
}

func toSchema(personality domain.Personality) personalitySchema {
	return personalitySchema{
		ID:        string(personality.ID),
		Name:      personality.Name,
		Summary:   personality.Summary,
		Backstory: personality.Backstory,
		Verbose:   personality.Verbose,
		Params: paramsSchema{
			Temperature:      personality.Params.Temperature,
			PresencePenalty:  personality.Params.PresencePenalty,
			FrequencyPenalty: personality.Params.FrequencyPenalty,
		},
	}
}

func fromSchema(personality personalitySchema) domain.Personality {
	return domain.Personality{
		ID:        domain.PersonalityID(personality.ID),
		Name:      personality.Name,
		Summary:   personality.Summary,
		Backstory: personality.Backstory,
		Verbose:   personality.Verbose,
		Params: domain.GenerationParams{
			Temperature:      personality.Params.Temperature,
			PresencePenalty:  personality.Params.PresencePenalty,
			FrequencyPenalty: personality.Params.FrequencyPenalty,
		},
	}
}
