package storage

import (
	"context"

	"github.com/iudanet/zametka/internal/models"
)

//go:generate moq -out cache_mock.go . NoteCache

// NoteCache defines interface for the local note cache.
// The cache holds the last known full snapshot of every note the client
// knows about, including notes that only exist locally (ServerID == 0)
// and notes soft-marked for deletion.
//
// A read or deserialization failure is treated as a cold cache: list
// operations return an empty slice instead of an error.
type NoteCache interface {
	// ListNotes returns every cached note, including pending-delete ones.
	// Filtering for display is the caller's job.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote retrieves a note by its server id.
	// Returns ErrNoteNotFound if no such note is cached.
	GetNote(ctx context.Context, serverID int64) (*models.Note, error)

	// GetNoteByLocalID retrieves a note by its client-generated id.
	// Returns ErrNoteNotFound if no such note is cached.
	GetNoteByLocalID(ctx context.Context, localID string) (*models.Note, error)

	// SaveNote upserts a note: matches by ServerID when non-zero,
	// otherwise by LocalID; replaces on match, appends otherwise.
	SaveNote(ctx context.Context, note models.Note) error

	// DeleteNote removes a note by server id.
	// Deleting an absent id is a no-op.
	DeleteNote(ctx context.Context, serverID int64) error

	// ReplaceNotes fully overwrites the snapshot.
	// Used only by the pull path.
	ReplaceNotes(ctx context.Context, notes []models.Note) error
}
