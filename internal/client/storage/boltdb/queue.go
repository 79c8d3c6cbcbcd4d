package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/zametka/internal/models"
)

// Очередь операций хранится одним JSON blob, порядок элементов в
// котором и есть порядок replay.
var pendingKey = []byte("queue")

// ListOperations returns all queued operations in append order.
// An unreadable blob is treated as an empty queue.
func (s *Storage) ListOperations(ctx context.Context) ([]models.PendingOperation, error) {
	var ops []models.PendingOperation

	err := s.db.View(func(tx *bbolt.Tx) error {
		var innerErr error
		ops, innerErr = s.readOperations(tx)
		return innerErr
	})
	if err != nil {
		s.logger.Warn("failed to read pending operations, treating as empty", "error", err)
		return []models.PendingOperation{}, nil
	}

	return ops, nil
}

// AppendOperation adds an operation to the tail of the queue
func (s *Storage) AppendOperation(ctx context.Context, op models.PendingOperation) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		ops, err := s.readOperations(tx)
		if err != nil {
			return err
		}
		ops = append(ops, op)
		return s.writeOperations(tx, ops)
	})
}

// RemoveOperation removes an operation by id.
// Removing an id that is already gone is a no-op.
func (s *Storage) RemoveOperation(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		ops, err := s.readOperations(tx)
		if err != nil {
			return err
		}

		filtered := ops[:0]
		for _, op := range ops {
			if op.ID != id {
				filtered = append(filtered, op)
			}
		}

		return s.writeOperations(tx, filtered)
	})
}

// ClearOperations drops the whole queue
func (s *Storage) ClearOperations(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}
		return bucket.Delete(pendingKey)
	})
}

func (s *Storage) readOperations(tx *bbolt.Tx) ([]models.PendingOperation, error) {
	bucket := tx.Bucket(bucketPending)
	if bucket == nil {
		return nil, fmt.Errorf("pending bucket not found")
	}

	data := bucket.Get(pendingKey)
	if data == nil {
		return []models.PendingOperation{}, nil
	}

	var ops []models.PendingOperation
	if err := json.Unmarshal(data, &ops); err != nil {
		s.logger.Warn("failed to unmarshal pending operations, treating as empty", "error", err)
		return []models.PendingOperation{}, nil
	}
	return ops, nil
}

func (s *Storage) writeOperations(tx *bbolt.Tx, ops []models.PendingOperation) error {
	bucket := tx.Bucket(bucketPending)
	if bucket == nil {
		return fmt.Errorf("pending bucket not found")
	}

	data, err := json.Marshal(ops)
	if err != nil {
		return fmt.Errorf("failed to marshal pending operations: %w", err)
	}

	if err := bucket.Put(pendingKey, data); err != nil {
		return fmt.Errorf("failed to save pending operations: %w", err)
	}
	return nil
}
