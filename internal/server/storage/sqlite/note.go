package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/zametka/internal/models"
	"github.com/iudanet/zametka/internal/server/storage"
)

// Теги храним JSON-массивом в одной колонке: по ним нет выборок,
// а схема остаётся простой.
func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to encode tags: %w", err)
	}
	return string(raw), nil
}

func decodeTags(raw string) []string {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}

// CreateNote inserts a note and fills in its generated ID
func (s *Storage) CreateNote(ctx context.Context, note *models.NoteRecord) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO notes (owner_id, title, content_md, visibility, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		note.OwnerID,
		note.Title,
		note.ContentMd,
		note.Visibility,
		tags,
		note.CreatedAt,
		note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted note id: %w", err)
	}
	note.ID = id

	return nil
}

// GetNote retrieves a note by ID
func (s *Storage) GetNote(ctx context.Context, noteID int64) (*models.NoteRecord, error) {
	query := `
		SELECT id, owner_id, title, content_md, visibility, tags, created_at, updated_at
		FROM notes
		WHERE id = ?
	`

	note := &models.NoteRecord{}
	var tags string

	err := s.db.QueryRowContext(ctx, query, noteID).Scan(
		&note.ID,
		&note.OwnerID,
		&note.Title,
		&note.ContentMd,
		&note.Visibility,
		&tags,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	note.Tags = decodeTags(tags)
	return note, nil
}

// UpdateNote overwrites the stored note
func (s *Storage) UpdateNote(ctx context.Context, note *models.NoteRecord) error {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE notes
		SET title = ?, content_md = ?, visibility = ?, tags = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		note.Title,
		note.ContentMd,
		note.Visibility,
		tags,
		note.UpdatedAt,
		note.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}

// DeleteNote removes a note; shares and public links go with it via
// ON DELETE CASCADE
func (s *Storage) DeleteNote(ctx context.Context, noteID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrNoteNotFound
	}

	return nil
}

// ListNotesForUser returns a page of notes the user owns or that are
// shared with them, newest updated first, plus the total count
func (s *Storage) ListNotesForUser(ctx context.Context, userID int64, offset, limit int) ([]*models.NoteRecord, int64, error) {
	const visibleWhere = `
		owner_id = ?
		OR id IN (SELECT note_id FROM shares WHERE shared_with_user_id = ?)
	`

	var total int64
	countQuery := `SELECT COUNT(*) FROM notes WHERE ` + visibleWhere
	if err := s.db.QueryRowContext(ctx, countQuery, userID, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notes: %w", err)
	}

	listQuery := `
		SELECT id, owner_id, title, content_md, visibility, tags, created_at, updated_at
		FROM notes
		WHERE ` + visibleWhere + `
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, listQuery, userID, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.NoteRecord
	for rows.Next() {
		note := &models.NoteRecord{}
		var tags string
		if err := rows.Scan(
			&note.ID,
			&note.OwnerID,
			&note.Title,
			&note.ContentMd,
			&note.Visibility,
			&tags,
			&note.CreatedAt,
			&note.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan note: %w", err)
		}
		note.Tags = decodeTags(tags)
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate notes: %w", err)
	}

	return notes, total, nil
}

// CreateShare grants a user read access to a note
func (s *Storage) CreateShare(ctx context.Context, share *models.Share) error {
	query := `
		INSERT INTO shares (note_id, shared_with_user_id, permission, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		share.NoteID,
		share.SharedWithUserID,
		share.Permission,
		share.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrShareAlreadyExists
		}
		return fmt.Errorf("failed to insert share: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted share id: %w", err)
	}
	share.ID = id

	return nil
}

// ListSharesForNote returns all shares of a note
func (s *Storage) ListSharesForNote(ctx context.Context, noteID int64) ([]*models.Share, error) {
	query := `
		SELECT id, note_id, shared_with_user_id, permission, created_at
		FROM shares
		WHERE note_id = ?
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shares: %w", err)
	}
	defer rows.Close()

	var shares []*models.Share
	for rows.Next() {
		share := &models.Share{}
		if err := rows.Scan(
			&share.ID,
			&share.NoteID,
			&share.SharedWithUserID,
			&share.Permission,
			&share.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}

	return shares, nil
}

// HasShare reports whether the note is shared with the user
func (s *Storage) HasShare(ctx context.Context, noteID, userID int64) (bool, error) {
	query := `SELECT 1 FROM shares WHERE note_id = ? AND shared_with_user_id = ?`

	var one int
	err := s.db.QueryRowContext(ctx, query, noteID, userID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check share: %w", err)
	}
	return true, nil
}

// CreatePublicLink inserts a link and fills in its generated ID
func (s *Storage) CreatePublicLink(ctx context.Context, link *models.PublicLink) error {
	query := `
		INSERT INTO public_links (note_id, url_token, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		link.NoteID,
		link.URLToken,
		link.CreatedAt,
		link.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert public link: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted link id: %w", err)
	}
	link.ID = id

	return nil
}

func (s *Storage) scanLink(row *sql.Row) (*models.PublicLink, error) {
	link := &models.PublicLink{}
	var expiresAt sql.NullTime

	err := row.Scan(
		&link.ID,
		&link.NoteID,
		&link.URLToken,
		&link.CreatedAt,
		&expiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrLinkNotFound
		}
		return nil, fmt.Errorf("failed to get public link: %w", err)
	}

	if expiresAt.Valid {
		link.ExpiresAt = &expiresAt.Time
	}
	return link, nil
}

// GetLinkByToken retrieves a link by its URL token
func (s *Storage) GetLinkByToken(ctx context.Context, urlToken string) (*models.PublicLink, error) {
	query := `
		SELECT id, note_id, url_token, created_at, expires_at
		FROM public_links
		WHERE url_token = ?
	`
	return s.scanLink(s.db.QueryRowContext(ctx, query, urlToken))
}

// GetLinkByID retrieves a link by ID
func (s *Storage) GetLinkByID(ctx context.Context, linkID int64) (*models.PublicLink, error) {
	query := `
		SELECT id, note_id, url_token, created_at, expires_at
		FROM public_links
		WHERE id = ?
	`
	return s.scanLink(s.db.QueryRowContext(ctx, query, linkID))
}

// GetLinkByNote retrieves the link of a note, if any
func (s *Storage) GetLinkByNote(ctx context.Context, noteID int64) (*models.PublicLink, error) {
	query := `
		SELECT id, note_id, url_token, created_at, expires_at
		FROM public_links
		WHERE note_id = ?
	`
	return s.scanLink(s.db.QueryRowContext(ctx, query, noteID))
}

// DeletePublicLink removes a link by ID
func (s *Storage) DeletePublicLink(ctx context.Context, linkID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM public_links WHERE id = ?`, linkID)
	if err != nil {
		return fmt.Errorf("failed to delete public link: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrLinkNotFound
	}

	return nil
}
