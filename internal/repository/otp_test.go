package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/backend/internal/database"
	"github.com/nyayasetu/backend/internal/model"
)

func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() {
		db.MustExec("DELETE FROM otp_verifications")
		db.Close()
	})
	return db
}

func TestOTPRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOTPRepository(db.DB)
	ctx := context.Background()

	t.Run("create and find active", func(t *testing.T) {
		created, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "asha@example.com",
			OTP:       "482913",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
		require.NoError(t, err)
		assert.False(t, created.IsUsed)

		found, err := repo.FindActive(ctx, "asha@example.com", "482913")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("wrong code returns nil", func(t *testing.T) {
		found, err := repo.FindActive(ctx, "asha@example.com", "000000")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("expired code is not active even when present", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "expired@example.com",
			OTP:       "313131",
			ExpiresAt: time.Now().Add(-1 * time.Second),
		})
		require.NoError(t, err)

		found, err := repo.FindActive(ctx, "expired@example.com", "313131")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("code within its window is accepted", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "window@example.com",
			OTP:       "424242",
			ExpiresAt: time.Now().Add(1 * time.Second),
		})
		require.NoError(t, err)

		found, err := repo.FindActive(ctx, "window@example.com", "424242")
		require.NoError(t, err)
		require.NotNil(t, found)
	})

	t.Run("used code is no longer active", func(t *testing.T) {
		created, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "used@example.com",
			OTP:       "117744",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
		require.NoError(t, err)
		require.NoError(t, repo.MarkUsed(ctx, created.ID))

		found, err := repo.FindActive(ctx, "used@example.com", "117744")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("find active prefers the newest code", func(t *testing.T) {
		old, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "newest@example.com",
			OTP:       "555111",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
		require.NoError(t, err)
		newer, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "newest@example.com",
			OTP:       "555111",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
		require.NoError(t, err)

		found, err := repo.FindActive(ctx, "newest@example.com", "555111")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.GreaterOrEqual(t, found.ID, old.ID)
		assert.Equal(t, newer.ID, found.ID)
	})

	t.Run("delete others keeps the redeemed row", func(t *testing.T) {
		keep, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "multi@example.com",
			OTP:       "222333",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
		require.NoError(t, err)
		_, err = repo.Create(ctx, model.CreateOTPParams{
			Email:     "multi@example.com",
			OTP:       "999888",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
		require.NoError(t, err)

		deleted, err := repo.DeleteOthers(ctx, "multi@example.com", keep.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("delete expired removes only stale rows", func(t *testing.T) {
		_, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "stale@example.com",
			OTP:       "101010",
			ExpiresAt: time.Now().Add(-1 * time.Minute),
		})
		require.NoError(t, err)
		live, err := repo.Create(ctx, model.CreateOTPParams{
			Email:     "stale@example.com",
			OTP:       "202020",
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
		require.NoError(t, err)

		deleted, err := repo.DeleteExpired(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, deleted, int64(1))

		found, err := repo.FindActive(ctx, "stale@example.com", "202020")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, live.ID, found.ID)
	})
}
