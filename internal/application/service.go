package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports"
	"github.com/google/uuid"
)

var errNilDispatcher = errors.New("dispatcher is nil")

// Service manages personalities and fronts the dispatcher for callers that
// address personalities by ID.
type Service struct {
	repo       ports.PersonalityRepository
	store      ports.ConversationStore
	dispatcher *Dispatcher
	templater  PromptTemplater
}

func NewService(repo ports.PersonalityRepository, store ports.ConversationStore, dispatcher *Dispatcher, templater PromptTemplater) *Service {
	return &Service{
		repo:       repo,
		store:      store,
		dispatcher: dispatcher,
		templater:  templater,
	}
}

func (s *Service) SavePersonality(ctx context.Context, personality domain.Personality) error {
	personality.Normalize()
	if err := personality.Validate(); err != nil {
		return fmt.Errorf("invalid personality: %w", err)
	}

	if err := s.repo.Save(ctx, personality); err != nil {
		return fmt.Errorf("save personality: %w", err)
	}

	return nil
}

func (s *Service) GetPersonality(ctx context.Context, id domain.PersonalityID) (domain.Personality, error) {
	personality, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Personality{}, fmt.Errorf("get personality %s: %w", id, err)
	}

	return personality, nil
}

func (s *Service) ListPersonalities(ctx context.Context) ([]domain.Personality, error) {
	personalities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list personalities: %w", err)
	}

	return personalities, nil
}

// RemovePersonality deletes the personality and then its history. A failed
// history wipe is reported but the personality stays deleted.
func (s *Service) RemovePersonality(ctx context.Context, id domain.PersonalityID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete personality %s: %w", id, err)
	}

	if err := s.store.Clear(ctx, id); err != nil {
		return fmt.Errorf("clear history of removed personality %s: %w", id, err)
	}

	return nil
}

func (s *Service) History(ctx context.Context, id domain.PersonalityID) ([]domain.Message, error) {
	if _, err := s.GetPersonality(ctx, id); err != nil {
		return nil, err
	}

	history, err := s.store.Snapshot(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load history of %s: %w", id, err)
	}

	return history, nil
}

func (s *Service) ClearHistory(ctx context.Context, id domain.PersonalityID) error {
	if _, err := s.GetPersonality(ctx, id); err != nil {
		return err
	}

	if err := s.store.Clear(ctx, id); err != nil {
		return fmt.Errorf("clear history of %s: %w", id, err)
	}

	return nil
}

func (s *Service) Reply(ctx context.Context, id domain.PersonalityID, prompt string, callback func(string)) (<-chan domain.Result, error) {
	return s.Request(ctx, domain.TemplateReply, id, prompt, callback)
}

func (s *Service) AssessVisualCues(ctx context.Context, id domain.PersonalityID, prompt string, callback func(string)) (<-chan domain.Result, error) {
	return s.Request(ctx, domain.TemplateVisualCues, id, prompt, callback)
}

func (s *Service) ReactionInstructions(ctx context.Context, id domain.PersonalityID, prompt string, callback func(string)) (<-chan domain.Result, error) {
	return s.Request(ctx, domain.TemplateReactionHints, id, prompt, callback)
}

// RequestOption adjusts a request before it is submitted.
type RequestOption func(*domain.PendingRequest)

// WithPhaseHook reports the Waiting and InFlight transitions of the request.
func WithPhaseHook(hook func(domain.DispatchState)) RequestOption {
	return func(request *domain.PendingRequest) {
		request.OnPhase = hook
	}
}

// Request templates the prompt for the given kind and submits it on behalf
// of the personality. The returned channel yields the single Result.
func (s *Service) Request(ctx context.Context, kind domain.TemplateKind, id domain.PersonalityID, prompt string, callback func(string), opts ...RequestOption) (<-chan domain.Result, error) {
	if s.dispatcher == nil {
		return nil, errNilDispatcher
	}

	personality, err := s.GetPersonality(ctx, id)
	if err != nil {
		return nil, err
	}

	templated, original, err := s.templater.Apply(kind, prompt)
	if err != nil {
		return nil, err
	}

	request := domain.PendingRequest{
		ID:             uuid.NewString(),
		Kind:           kind,
		Personality:    personality,
		Prompt:         templated,
		OriginalPrompt: original,
		Callback:       callback,
	}
	for _, opt := range opts {
		opt(&request)
	}

	return s.dispatcher.Submit(ctx, request), nil
}
