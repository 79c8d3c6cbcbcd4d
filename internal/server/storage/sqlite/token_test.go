package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/zametka/internal/models"
	"github.com/iudanet/zametka/internal/server/storage"
)

func testToken(userID int64, token string, ttl time.Duration) *models.RefreshToken {
	now := time.Now().UTC()
	return &models.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
}

func TestSaveAndGetRefreshToken(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(user.ID, "tok-1", time.Hour)))

	got, err := store.GetRefreshToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "tok-1", got.Token)
}

func TestGetRefreshToken_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetRefreshToken(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestSaveRefreshToken_Replaces(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(user.ID, "tok-1", time.Hour)))

	// Повторное сохранение того же токена не должно падать
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(user.ID, "tok-1", 2*time.Hour)))

	got, err := store.GetRefreshToken(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
}

func TestDeleteRefreshToken(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(user.ID, "tok-1", time.Hour)))

	require.NoError(t, store.DeleteRefreshToken(ctx, "tok-1"))

	_, err := store.GetRefreshToken(ctx, "tok-1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	err = store.DeleteRefreshToken(ctx, "tok-1")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestDeleteUserTokens(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")

	require.NoError(t, store.SaveRefreshToken(ctx, testToken(alice.ID, "a-1", time.Hour)))
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(alice.ID, "a-2", time.Hour)))
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(bob.ID, "b-1", time.Hour)))

	deleted, err := store.DeleteUserTokens(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Чужие токены не тронуты
	_, err = store.GetRefreshToken(ctx, "b-1")
	assert.NoError(t, err)
}

func TestDeleteExpiredTokens(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(user.ID, "live", time.Hour)))
	require.NoError(t, store.SaveRefreshToken(ctx, testToken(user.ID, "dead", -time.Hour)))

	deleted, err := store.DeleteExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	_, err = store.GetRefreshToken(ctx, "live")
	assert.NoError(t, err)
	_, err = store.GetRefreshToken(ctx, "dead")
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}
