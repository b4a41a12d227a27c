package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/persona-relay/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var openedAt = time.Date(2026, 3, 1, 9, 30, 15, 0, time.UTC)

func TestSinkAppendsOneLinePerCall(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "transcripts")
	sink, err := Open(dir, "tavern", openedAt)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, sink.AppendLine(ctx, "Hello | Ada | docks | Ahoy"))
	require.NoError(t, sink.AppendLine(ctx, "two\nlines"))
	require.NoError(t, sink.Close())

	assert.Equal(t, filepath.Join(dir, "tavern_2026-03-01T09-30-15.txt"), sink.Path())

	data, err := os.ReadFile(sink.Path())
	require.NoError(t, err)
	assert.Equal(t, "Hello | Ada | docks | Ahoy\ntwo lines\n", string(data))

	info, err := os.Stat(sink.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSinkReopenAppends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	first, err := Open(dir, "", openedAt)
	require.NoError(t, err)
	require.NoError(t, first.AppendLine(ctx, "first"))
	require.NoError(t, first.Close())

	second, err := Open(dir, "", openedAt)
	require.NoError(t, err)
	require.NoError(t, second.AppendLine(ctx, "second"))
	require.NoError(t, second.Close())

	assert.Equal(t, "transcript_2026-03-01T09-30-15.txt", filepath.Base(second.Path()))

	data, err := os.ReadFile(second.Path())
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestSinkAppendAfterCloseReportsSinkClosed(t *testing.T) {
	t.Parallel()

	sink, err := Open(t.TempDir(), "tavern", openedAt)
	require.NoError(t, err)

	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())

	err = sink.AppendLine(context.Background(), "late")
	require.ErrorIs(t, err, domain.ErrSinkClosed)
}

func TestSinkCanceledContext(t *testing.T) {
	t.Parallel()

	sink, err := Open(t.TempDir(), "tavern", openedAt)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = sink.AppendLine(ctx, "line")
	require.ErrorIs(t, err, context.Canceled)
	assert.EqualError(t, err, "append transcript line: context canceled")
	assert.NotErrorIs(t, err, domain.ErrSinkClosed)
}
