package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set("personalities.path", path)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "personalities.toml"))

	first := domain.Personality{
		ID:        "ada",
		Name:      "Ada",
		Summary:   "a retired sailor",
		Backstory: "grew up on the docks",
		Verbose:   true,
		Params:    domain.GenerationParams{Temperature: 0.9, PresencePenalty: 0.5, FrequencyPenalty: -0.5},
	}
	second := domain.Personality{ID: "bob", Name: "Bob", Params: domain.GenerationParams{Temperature: 1}}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	personalities, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Personality{first, second}, personalities)
}

func TestRepositorySaveReplacesExistingEntry(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "personalities.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Personality{ID: "ada", Name: "Ada"}))
	require.NoError(t, repo.Save(context.Background(), domain.Personality{ID: "ada", Name: "Ada Lovelace"}))

	personalities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, personalities, 1)
	assert.Equal(t, "Ada Lovelace", personalities[0].Name)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "personalities.toml"))
	require.NoError(t, repo.Save(context.Background(), domain.Personality{ID: "ada", Name: "Ada"}))
	require.NoError(t, repo.Save(context.Background(), domain.Personality{ID: "bob", Name: "Bob"}))

	require.NoError(t, repo.Delete(context.Background(), "ada"))

	_, err := repo.GetByID(context.Background(), "ada")
	require.ErrorIs(t, err, domain.ErrPersonalityNotFound)

	err = repo.Delete(context.Background(), "ada")
	require.ErrorIs(t, err, domain.ErrPersonalityNotFound)

	personalities, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, personalities, 1)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Personality{ID: "ada", Name: "Ada"}))

	path := filepath.Join(homeDir, ".persona", "personalities.toml")
	assert.Equal(t, path, repo.Path())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "personalities.toml"))

	personalities, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, personalities)

	_, err = repo.GetByID(context.Background(), "ada")
	require.ErrorIs(t, err, domain.ErrPersonalityNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personalities.toml")
	require.NoError(t, os.WriteFile(path, []byte("personalities = ["), 0o600))

	_, err := newTestRepository(t, path).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode personalities file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "personalities.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Personality{ID: "ada", Name: "Ada"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllEntries(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personalities.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Personality{ID: domain.PersonalityID(prefix + strconv.Itoa(i)), Name: prefix})
		}
	}
	go save(repoA, "a-")
	go save(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	personalities, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, personalities, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personalities.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.Personality{ID: "ada", Name: "Ada"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[personalities]]")
}

func TestRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personalities.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[personalities]]",
		"id = \"ada\"",
		"name = \"Ada\"",
		"backstory = \"grew up on the docks\"",
		"",
		"[personalities.params]",
		"temperature = 0.7",
		"",
	}, "\n")), 0o600))

	got, err := newTestRepository(t, path).GetByID(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, domain.Personality{
		ID:        "ada",
		Name:      "Ada",
		Backstory: "grew up on the docks",
		Params:    domain.GenerationParams{Temperature: 0.7},
	}, got)
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "personalities.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n\npersonalities = []\n"), 0o600))

	_, err := newTestRepository(t, path).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported personalities schema version")
}
