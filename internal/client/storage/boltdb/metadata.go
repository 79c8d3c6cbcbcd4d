package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const (
	keyLastSyncTime = "last_sync_time"
)

// SaveLastSyncTime saves the instant of the last successful pull
func (s *Storage) SaveLastSyncTime(ctx context.Context, t time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Храним в том же формате, что и timestamps заметок
		value := t.UTC().Format(time.RFC3339)
		if err := bucket.Put([]byte(keyLastSyncTime), []byte(value)); err != nil {
			return fmt.Errorf("failed to save last sync time: %w", err)
		}
		return nil
	})
}

// GetLastSyncTime retrieves the instant of the last successful pull.
// Returns the zero time if no pull has succeeded yet.
func (s *Storage) GetLastSyncTime(ctx context.Context) (time.Time, error) {
	var lastSync time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(keyLastSyncTime))
		if data == nil {
			// Ещё ни одной успешной синхронизации
			return nil
		}

		t, err := time.Parse(time.RFC3339, string(data))
		if err != nil {
			return fmt.Errorf("failed to parse last sync time: %w", err)
		}
		lastSync = t
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync time: %w", err)
	}

	return lastSync, nil
}
