package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path string) *ConversationStore {
	t.Helper()

	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestConversationStoreAppendAndSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t, filepath.Join(t.TempDir(), "conversations.db"))

	require.NoError(t, store.Append(ctx, "ada", domain.NewUserMessage("hello")))
	require.NoError(t, store.Append(ctx, "bob", domain.NewUserMessage("yo")))
	require.NoError(t, store.Append(ctx, "ada", domain.NewAssistantMessage("Ahoy")))

	history, err := store.Snapshot(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, []domain.Message{
		domain.NewUserMessage("hello"),
		domain.NewAssistantMessage("Ahoy"),
	}, history)

	empty, err := store.Snapshot(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestConversationStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "conversations.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, "ada", domain.NewUserMessage("hello")))
	require.NoError(t, first.Close())

	history, err := openTestStore(t, path).Snapshot(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, []domain.Message{domain.NewUserMessage("hello")}, history)
}

func TestConversationStoreClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t, filepath.Join(t.TempDir(), "conversations.db"))
	require.NoError(t, store.Append(ctx, "ada", domain.NewUserMessage("hello")))
	require.NoError(t, store.Append(ctx, "bob", domain.NewUserMessage("yo")))

	require.NoError(t, store.Clear(ctx, "ada"))

	history, err := store.Snapshot(ctx, "ada")
	require.NoError(t, err)
	assert.Empty(t, history)

	bobHistory, err := store.Snapshot(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, bobHistory, 1)
}

func TestConversationStoreConcurrentAppends(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := openTestStore(t, filepath.Join(t.TempDir(), "conversations.db"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Append(ctx, "ada", domain.NewUserMessage("hi")))
		}()
	}
	wg.Wait()

	history, err := store.Snapshot(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, history, 20)
}

func TestNewConversationStoreUsesConfiguredPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.db")
	cfg := viper.New()
	cfg.Set("history.path", path)

	store, err := NewConversationStore(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	assert.Equal(t, path, store.Path())
}

func TestConversationStoreCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTestStore(t, filepath.Join(t.TempDir(), "conversations.db"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Append(ctx, "ada", domain.NewUserMessage("hello")), context.Canceled)
	_, err := store.Snapshot(ctx, "ada")
	require.ErrorIs(t, err, context.Canceled)
}
