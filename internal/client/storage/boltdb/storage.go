package boltdb

import (
	"context"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketAuth     = []byte("auth")
	bucketNotes    = []byte("notes")
	bucketPending  = []byte("pending")
	bucketMetadata = []byte("metadata")
)

// Storage represents BoltDB storage implementation for client.
// It backs the local note cache, the pending-operation queue,
// authentication data and sync metadata.
type Storage struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, logger *slog.Logger) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, logger: logger}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketNotes, bucketPending, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// ClearAll removes the note cache, the pending-operation queue and the
// last-sync timestamp. Auth data is untouched; use DeleteAuth for logout.
// The three deletes happen in one bolt transaction, so from the caller's
// perspective the clear is atomic.
func (s *Storage) ClearAll(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if b := tx.Bucket(bucketNotes); b != nil {
			if err := b.Delete(notesKey); err != nil {
				return fmt.Errorf("failed to clear notes: %w", err)
			}
		}
		if b := tx.Bucket(bucketPending); b != nil {
			if err := b.Delete(pendingKey); err != nil {
				return fmt.Errorf("failed to clear pending operations: %w", err)
			}
		}
		if b := tx.Bucket(bucketMetadata); b != nil {
			if err := b.Delete([]byte(keyLastSyncTime)); err != nil {
				return fmt.Errorf("failed to clear last sync time: %w", err)
			}
		}
		return nil
	})
}
