package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client sync metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the instant of the last successful pull
	SaveLastSyncTime(ctx context.Context, t time.Time) error

	// GetLastSyncTime retrieves the instant of the last successful pull.
	// Returns the zero time if no pull has succeeded yet.
	GetLastSyncTime(ctx context.Context) (time.Time, error)
}
