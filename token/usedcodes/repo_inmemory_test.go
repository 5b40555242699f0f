package usedcodes_test

import (
	"context"
	"testing"
	"time"

	"github.com/jrsteele09/go-stateless-auth-server/token/usedcodes"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo_MarkUsed(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := usedcodes.NewInMemoryRepo(usedcodes.WithNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	first, err := repo.MarkUsed(ctx, "code-1", now.Add(5*time.Minute))
	require.NoError(t, err)
	require.True(t, first)

	again, err := repo.MarkUsed(ctx, "code-1", now.Add(5*time.Minute))
	require.NoError(t, err)
	require.False(t, again)

	other, err := repo.MarkUsed(ctx, "code-2", now.Add(5*time.Minute))
	require.NoError(t, err)
	require.True(t, other)

	_, err = repo.MarkUsed(ctx, "", now)
	require.Error(t, err)
}

func TestInMemoryRepo_ExpiredEntriesAreSwept(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := usedcodes.NewInMemoryRepo(usedcodes.WithNowFunc(func() time.Time { return now }))
	ctx := context.Background()

	_, err := repo.MarkUsed(ctx, "code-1", now.Add(time.Minute))
	require.NoError(t, err)
	_, err = repo.MarkUsed(ctx, "code-2", now.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, repo.Len())

	now = now.Add(2 * time.Minute)
	first, err := repo.MarkUsed(ctx, "code-3", now.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, first)
	require.Equal(t, 2, repo.Len())
	require.NoError(t, repo.Close())
}
