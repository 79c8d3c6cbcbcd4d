package storage

import (
	"context"

	"github.com/iudanet/zametka/internal/models"
)

//go:generate moq -out queue_mock.go . OperationQueue

// OperationQueue defines interface for the durable pending-operation queue.
// Operations are appended by the notes facade at the moment of a local
// mutation and removed by the sync engine strictly after the corresponding
// remote call succeeds. The queue is FIFO and operations are never mutated
// in place or reordered.
type OperationQueue interface {
	// ListOperations returns all queued operations in append order.
	ListOperations(ctx context.Context) ([]models.PendingOperation, error)

	// AppendOperation adds an operation to the tail of the queue.
	AppendOperation(ctx context.Context, op models.PendingOperation) error

	// RemoveOperation removes an operation by id.
	// Removing an id that is already gone is a no-op: two concurrent
	// drains must tolerate each other.
	RemoveOperation(ctx context.Context, id string) error

	// ClearOperations drops the whole queue.
	ClearOperations(ctx context.Context) error
}
