package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/persona-relay/internal/adapters/repo/memory"
	"github.com/bnema/persona-relay/internal/domain"
	"github.com/bnema/persona-relay/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, transport *mocks.MockCompletionTransport) (*Service, *mocks.MockPersonalityRepository, *memory.ConversationStore) {
	t.Helper()

	repo := mocks.NewMockPersonalityRepository(t)
	store := memory.NewConversationStore()
	if transport == nil {
		transport = mocks.NewMockCompletionTransport(t)
	}

	dispatcher, err := NewDispatcher(defaultSettings(), DispatcherDeps{
		Transport:   transport,
		Store:       store,
		Limiter:     NewRateLimiter(0),
		Interpreter: NewResponseInterpreter("REFUSE"),
	})
	require.NoError(t, err)

	return NewService(repo, store, dispatcher, NewPromptTemplater("REFUSE")), repo, store
}

func TestServiceSavePersonalityNormalizesBeforeSaving(t *testing.T) {
	service, repo, _ := newTestService(t, nil)

	repo.EXPECT().Save(mockAnyContext(), domain.Personality{
		ID:        "ada",
		Name:      "Ada",
		Backstory: "grew up on the docks",
		Params:    domain.GenerationParams{Temperature: 0.8},
	}).Return(nil)

	err := service.SavePersonality(context.Background(), domain.Personality{
		ID:        " ada ",
		Name:      "Ada\n",
		Backstory: "  grew up on the docks",
		Params:    domain.GenerationParams{Temperature: 0.8},
	})
	require.NoError(t, err)
}

func TestServiceSavePersonalityRejectsInvalid(t *testing.T) {
	service, _, _ := newTestService(t, nil)

	err := service.SavePersonality(context.Background(), domain.Personality{
		ID:     "ada",
		Name:   "Ada",
		Params: domain.GenerationParams{Temperature: 3},
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid personality")
}

func TestServiceListPersonalitiesWrapsRepositoryError(t *testing.T) {
	service, repo, _ := newTestService(t, nil)

	listErr := errors.New("disk on fire")
	repo.EXPECT().List(mockAnyContext()).Return(nil, listErr)

	_, err := service.ListPersonalities(context.Background())
	require.ErrorIs(t, err, listErr)
	assert.ErrorContains(t, err, "list personalities")
}

func TestServiceRemovePersonalityClearsHistory(t *testing.T) {
	service, repo, store := newTestService(t, nil)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, "ada", domain.NewUserMessage("hi")))

	repo.EXPECT().Delete(mockAnyContext(), domain.PersonalityID("ada")).Return(nil)

	require.NoError(t, service.RemovePersonality(ctx, "ada"))

	history, err := store.Snapshot(ctx, "ada")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestServiceHistoryRequiresKnownPersonality(t *testing.T) {
	service, repo, _ := newTestService(t, nil)

	repo.EXPECT().GetByID(mockAnyContext(), domain.PersonalityID("ghost")).Return(domain.Personality{}, domain.ErrPersonalityNotFound)

	_, err := service.History(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrPersonalityNotFound)
}

func TestServiceClearHistory(t *testing.T) {
	service, repo, store := newTestService(t, nil)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, "ada", domain.NewUserMessage("hi")))
	require.NoError(t, store.Append(ctx, "bob", domain.NewUserMessage("yo")))

	repo.EXPECT().GetByID(mockAnyContext(), domain.PersonalityID("ada")).Return(ada, nil)

	require.NoError(t, service.ClearHistory(ctx, "ada"))

	adaHistory, err := store.Snapshot(ctx, "ada")
	require.NoError(t, err)
	assert.Empty(t, adaHistory)

	bobHistory, err := store.Snapshot(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bobHistory, 1)
}

func TestServiceReplyTemplatesAndDispatches(t *testing.T) {
	transport := mocks.NewMockCompletionTransport(t)
	service, repo, store := newTestService(t, transport)
	ctx := context.Background()

	repo.EXPECT().GetByID(mockAnyContext(), domain.PersonalityID("ada")).Return(ada, nil)

	templated, _ := NewPromptTemplater("REFUSE").Reply("Who goes there?")
	transport.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(request domain.CompletionRequest) bool {
		return len(request.Messages) == 1 && request.Messages[0].Content == templated
	})).Return(completionBody("A friend."), nil).Once()

	var delivered string
	results, err := service.Reply(ctx, "ada", "Who goes there?", func(s string) { delivered = s })
	require.NoError(t, err)

	result := <-results
	require.Equal(t, domain.StateDelivered, result.State)
	assert.Equal(t, "A friend.", delivered)
	assert.NotEmpty(t, result.RequestID)

	history, err := store.Snapshot(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, templated, history[0].Content)
}

func TestServiceRequestUnknownPersonality(t *testing.T) {
	service, repo, _ := newTestService(t, nil)

	repo.EXPECT().GetByID(mockAnyContext(), domain.PersonalityID("ghost")).Return(domain.Personality{}, domain.ErrPersonalityNotFound)

	results, err := service.ReactionInstructions(context.Background(), "ghost", "boo", nil)
	require.ErrorIs(t, err, domain.ErrPersonalityNotFound)
	assert.Nil(t, results)
}

func TestServiceRequestWithoutDispatcher(t *testing.T) {
	service := NewService(mocks.NewMockPersonalityRepository(t), memory.NewConversationStore(), nil, NewPromptTemplater("REFUSE"))

	_, err := service.AssessVisualCues(context.Background(), "ada", "smoke", nil)
	require.ErrorIs(t, err, errNilDispatcher)
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func TestServiceRequestReportsPhases(t *testing.T) {
	transport := mocks.NewMockCompletionTransport(t)
	service, repo, _ := newTestService(t, transport)

	repo.EXPECT().GetByID(mockAnyContext(), domain.PersonalityID("ada")).Return(ada, nil)
	transport.EXPECT().Complete(mock.Anything, mock.Anything).Return(completionBody("Aye."), nil).Once()

	var phases []domain.DispatchState
	results, err := service.Request(context.Background(), domain.TemplateReply, "ada", "Ready?", nil,
		WithPhaseHook(func(state domain.DispatchState) { phases = append(phases, state) }))
	require.NoError(t, err)

	require.Equal(t, domain.StateDelivered, (<-results).State)
	assert.Equal(t, []domain.DispatchState{domain.StateWaiting, domain.StateInFlight}, phases)
}
