package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"vision-speech/internal/domain/entity"
)

func TestMemoryResultRepository_SaveGetDelete(t *testing.T) {
	repo := NewMemoryResultRepository()
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrResultNotFound)

	result := entity.NewResult("a dog", "كلب", "/out/abc.mp3", time.Now(), time.Second)
	require.NoError(t, repo.Save(ctx, result))

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, "a dog", got.Caption)

	got.Caption = "changed"
	again, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, "a dog", again.Caption)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, err = repo.Get(ctx, "abc")
	require.ErrorIs(t, err, entity.ErrResultNotFound)
}

func TestMemoryResultRepository_Expired(t *testing.T) {
	repo := NewMemoryResultRepository()
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, entity.NewResult("new", "", "/out/new.mp3", now, 0)))
	require.NoError(t, repo.Save(ctx, entity.NewResult("old", "", "/out/old.mp3", now.Add(-2*time.Hour), 0)))
	require.NoError(t, repo.Save(ctx, entity.NewResult("older", "", "/out/older.mp3", now.Add(-3*time.Hour), 0)))

	expired, err := repo.Expired(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, expired, 2)
	require.Equal(t, "older", expired[0].ID)
	require.Equal(t, "old", expired[1].ID)
}
