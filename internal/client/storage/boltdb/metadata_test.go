package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLastSyncTime_NoSyncYet(t *testing.T) {
	store := createTestStorage(t)

	lastSync, err := store.GetLastSyncTime(context.Background())
	require.NoError(t, err)
	assert.True(t, lastSync.IsZero())
}

func TestSaveAndGetLastSyncTime(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	now := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, store.SaveLastSyncTime(ctx, now))

	got, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))
}

func TestSaveLastSyncTime_Overwrite(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, store.SaveLastSyncTime(ctx, first))
	require.NoError(t, store.SaveLastSyncTime(ctx, second))

	got, err := store.GetLastSyncTime(ctx)
	require.NoError(t, err)
	assert.True(t, second.Equal(got))
}
