package boltdb

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/zametka/internal/client/storage"
	"github.com/iudanet/zametka/internal/models"
)

// createTestStorage создает временное хранилище для тестов
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	store, err := New(context.Background(), dbPath, logger)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_CreatesBuckets(t *testing.T) {
	store := createTestStorage(t)

	err := store.db.View(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketNotes, bucketPending, bucketMetadata} {
			assert.NotNil(t, tx.Bucket(name), "bucket %s must exist", name)
		}
		return nil
	})
	require.NoError(t, err)
}

func TestClearAll(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	// Наполняем все три коллекции и auth
	require.NoError(t, store.SaveNote(ctx, models.Note{ServerID: 1, Title: "a"}))
	require.NoError(t, store.AppendOperation(ctx, models.PendingOperation{ID: "op-1", Type: models.OperationCreate}))
	require.NoError(t, store.SaveLastSyncTime(ctx, time.Now()))
	require.NoError(t, store.SaveAuth(ctx, &storage.AuthData{Email: "alice@example.com", AccessToken: "tok"}))

	require.NoError(t, store.ClearAll(ctx))

	notes, err := store.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)

	lastSync, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, lastSync.IsZero())

	// Auth данные ClearAll не трогает
	auth, err := store.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", auth.Email)
}
