package storage

import (
	"context"

	"github.com/iudanet/zametka/internal/models"
)

// NoteStorage defines interface for note persistence
type NoteStorage interface {
	// CreateNote inserts a note and fills in its generated ID
	CreateNote(ctx context.Context, note *models.NoteRecord) error

	// GetNote retrieves a note by ID
	// Returns ErrNoteNotFound if note doesn't exist
	GetNote(ctx context.Context, noteID int64) (*models.NoteRecord, error)

	// UpdateNote overwrites the stored note (title, content, tags,
	// visibility, updated_at)
	// Returns ErrNoteNotFound if note doesn't exist
	UpdateNote(ctx context.Context, note *models.NoteRecord) error

	// DeleteNote removes a note with its shares and public links
	// Returns ErrNoteNotFound if note doesn't exist
	DeleteNote(ctx context.Context, noteID int64) error

	// ListNotesForUser returns a page of notes the user owns or that are
	// shared with them, newest updated first, plus the total count
	ListNotesForUser(ctx context.Context, userID int64, offset, limit int) ([]*models.NoteRecord, int64, error)
}

// ShareStorage defines interface for note share persistence
type ShareStorage interface {
	// CreateShare grants a user read access to a note
	// Returns ErrShareAlreadyExists on a duplicate grant
	CreateShare(ctx context.Context, share *models.Share) error

	// ListSharesForNote returns all shares of a note
	ListSharesForNote(ctx context.Context, noteID int64) ([]*models.Share, error)

	// HasShare reports whether the note is shared with the user
	HasShare(ctx context.Context, noteID, userID int64) (bool, error)
}

// LinkStorage defines interface for public link persistence
type LinkStorage interface {
	// CreatePublicLink inserts a link and fills in its generated ID
	CreatePublicLink(ctx context.Context, link *models.PublicLink) error

	// GetLinkByToken retrieves a link by its URL token
	// Returns ErrLinkNotFound if link doesn't exist
	GetLinkByToken(ctx context.Context, urlToken string) (*models.PublicLink, error)

	// GetLinkByID retrieves a link by ID
	// Returns ErrLinkNotFound if link doesn't exist
	GetLinkByID(ctx context.Context, linkID int64) (*models.PublicLink, error)

	// GetLinkByNote retrieves the link of a note, if any
	// Returns ErrLinkNotFound if the note has no link
	GetLinkByNote(ctx context.Context, noteID int64) (*models.PublicLink, error)

	// DeletePublicLink removes a link by ID
	// Returns ErrLinkNotFound if link doesn't exist
	DeletePublicLink(ctx context.Context, linkID int64) error
}
