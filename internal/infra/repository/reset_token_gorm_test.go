package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/SumitSharma2000/Car-Wash-APP/internal/domain/account"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/testdb"
)

func TestResetTokenGormRepository(t *testing.T) {
	db := testdb.Open(t)
	repo := NewResetTokenGormRepository(db)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	t1 := &models.PasswordResetToken{Token: "t1", Email: "a@b.com", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, repo.Create(ctx, t1))

	t.Run("FindByToken", func(t *testing.T) {
		got, err := repo.FindByToken(ctx, "t1")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", got.Email)
		assert.False(t, got.Used)
		assert.True(t, now.Add(time.Hour).Equal(got.ExpiresAt))

		_, err = repo.FindByToken(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("CountLiveByEmail", func(t *testing.T) {
		n, err := repo.CountLiveByEmail(ctx, "a@b.com", now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.CountLiveByEmail(ctx, "a@b.com", now.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("DeleteByEmail", func(t *testing.T) {
		other := &models.PasswordResetToken{Token: "other", Email: "c@d.com", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
		require.NoError(t, repo.Create(ctx, other))

		require.NoError(t, repo.DeleteByEmail(ctx, "a@b.com"))

		_, err := repo.FindByToken(ctx, "t1")
		assert.ErrorIs(t, err, domain.ErrInvalidToken)

		_, err = repo.FindByToken(ctx, "other")
		assert.NoError(t, err)
	})

	t.Run("MarkUsedOnce", func(t *testing.T) {
		tok := &models.PasswordResetToken{Token: "once", Email: "e@f.com", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
		require.NoError(t, repo.Create(ctx, tok))

		require.NoError(t, repo.MarkUsed(ctx, tok.ID))
		assert.ErrorIs(t, repo.MarkUsed(ctx, tok.ID), domain.ErrTokenExpiredOrUsed)

		got, err := repo.FindByToken(ctx, "once")
		require.NoError(t, err)
		assert.True(t, got.Used)
	})
}

func TestResetTokenGormRepository_ConcurrentMarkUsed(t *testing.T) {
	db := testdb.Open(t)
	repo := NewResetTokenGormRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	tok := &models.PasswordResetToken{Token: "race", Email: "r@s.com", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	require.NoError(t, repo.Create(ctx, tok))

	const callers = 8
	var wins, losses atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch err := repo.MarkUsed(ctx, tok.ID); err {
			case nil:
				wins.Add(1)
			case domain.ErrTokenExpiredOrUsed:
				losses.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
	assert.Equal(t, int32(callers-1), losses.Load())
}
