package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/zametka/internal/client/storage"
	"github.com/iudanet/zametka/internal/models"
)

// Весь кеш заметок хранится одним JSON blob под единственным ключом.
// Все операции — read-modify-write целого снапшота, частичных
// обновлений документа нет.
var notesKey = []byte("all")

// ListNotes returns every cached note, including pending-delete ones.
// A missing or unreadable blob is treated as a cold cache: the method
// returns an empty slice, never an error.
func (s *Storage) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketNotes)
		if bucket == nil {
			return fmt.Errorf("notes bucket not found")
		}

		data := bucket.Get(notesKey)
		if data == nil {
			return nil
		}

		if err := json.Unmarshal(data, &notes); err != nil {
			// Битый blob — считаем кеш холодным, доступность важнее
			s.logger.Warn("failed to unmarshal notes cache, treating as empty", "error", err)
			notes = nil
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to read notes cache, treating as empty", "error", err)
		return []models.Note{}, nil
	}

	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

// GetNote retrieves a note by its server id
func (s *Storage) GetNote(ctx context.Context, serverID int64) (*models.Note, error) {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].ServerID == serverID {
			return &notes[i], nil
		}
	}
	return nil, storage.ErrNoteNotFound
}

// GetNoteByLocalID retrieves a note by its client-generated id
func (s *Storage) GetNoteByLocalID(ctx context.Context, localID string) (*models.Note, error) {
	notes, err := s.ListNotes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range notes {
		if notes[i].LocalID != "" && notes[i].LocalID == localID {
			return &notes[i], nil
		}
	}
	return nil, storage.ErrNoteNotFound
}

// SaveNote upserts a note into the cache.
// Matches by ServerID when non-zero, otherwise by LocalID;
// replaces on match, appends otherwise.
func (s *Storage) SaveNote(ctx context.Context, note models.Note) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		notes, err := s.readNotes(tx)
		if err != nil {
			return err
		}

		replaced := false
		for i := range notes {
			match := (note.ServerID != 0 && notes[i].ServerID == note.ServerID) ||
				(note.LocalID != "" && notes[i].LocalID == note.LocalID)
			if match {
				notes[i] = note
				replaced = true
				break
			}
		}
		if !replaced {
			notes = append(notes, note)
		}

		return s.writeNotes(tx, notes)
	})
}

// DeleteNote removes a note by server id. Absent id is a no-op.
func (s *Storage) DeleteNote(ctx context.Context, serverID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		notes, err := s.readNotes(tx)
		if err != nil {
			return err
		}

		filtered := notes[:0]
		for _, n := range notes {
			if n.ServerID != serverID {
				filtered = append(filtered, n)
			}
		}

		return s.writeNotes(tx, filtered)
	})
}

// ReplaceNotes fully overwrites the cached snapshot (pull path only)
func (s *Storage) ReplaceNotes(ctx context.Context, notes []models.Note) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return s.writeNotes(tx, notes)
	})
}

// readNotes читает снапшот внутри открытой транзакции
func (s *Storage) readNotes(tx *bbolt.Tx) ([]models.Note, error) {
	bucket := tx.Bucket(bucketNotes)
	if bucket == nil {
		return nil, fmt.Errorf("notes bucket not found")
	}

	data := bucket.Get(notesKey)
	if data == nil {
		return []models.Note{}, nil
	}

	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.logger.Warn("failed to unmarshal notes cache, treating as empty", "error", err)
		return []models.Note{}, nil
	}
	return notes, nil
}

// writeNotes сохраняет снапшот внутри открытой транзакции
func (s *Storage) writeNotes(tx *bbolt.Tx, notes []models.Note) error {
	bucket := tx.Bucket(bucketNotes)
	if bucket == nil {
		return fmt.Errorf("notes bucket not found")
	}

	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to marshal notes: %w", err)
	}

	if err := bucket.Put(notesKey, data); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}
