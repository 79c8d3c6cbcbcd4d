// Package sync реализует синхронизацию локального кэша заметок с сервером:
// отправку очереди отложенных операций и полную загрузку актуального состояния.
package sync

import (
	"context"
	"errors"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/zametka/internal/client/api"
	"github.com/iudanet/zametka/internal/client/netcheck"
	"github.com/iudanet/zametka/internal/client/storage"
	"github.com/iudanet/zametka/internal/models"
	"github.com/iudanet/zametka/pkg/api"
)

//go:generate moq -out api_mock.go . NotesAPI

// NotesAPI describes the remote note operations the engine needs.
type NotesAPI interface {
	ListNotes(ctx context.Context, accessToken string, page, size int) ([]api.Note, error)
	CreateNote(ctx context.Context, accessToken string, req api.CreateNoteRequest) (*api.Note, error)
	UpdateNote(ctx context.Context, accessToken string, noteID int64, req api.UpdateNoteRequest) (*api.Note, error)
	DeleteNote(ctx context.Context, accessToken string, noteID int64) error
}

// TokenSource supplies a valid access token, refreshing it when needed.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// PushResult summarizes one pass over the pending operation queue.
type PushResult struct {
	Completed int // operations applied remotely and removed from the queue
	Failed    int // operations that hit an error and stay queued
	Remaining int // queue length after the pass
}

// listPageSize — размер страницы при полной загрузке с сервера.
const listPageSize = 100

// Engine drains the pending operation queue and refreshes the cache
// from the server. It is safe to share between goroutines as long as
// the underlying storage is.
type Engine struct {
	api     NotesAPI
	tokens  TokenSource
	cache   storage.NoteCache
	queue   storage.OperationQueue
	meta    storage.MetadataStorage
	checker netcheck.Checker
	logger  *slog.Logger
}

// NewEngine builds a sync engine over the given storage and API client.
func NewEngine(
	notesAPI NotesAPI,
	tokens TokenSource,
	cache storage.NoteCache,
	queue storage.OperationQueue,
	meta storage.MetadataStorage,
	checker netcheck.Checker,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		api:     notesAPI,
		tokens:  tokens,
		cache:   cache,
		queue:   queue,
		meta:    meta,
		checker: checker,
		logger:  logger,
	}
}

// SyncFromServer replaces the local cache with the server's state and
// records the sync time. Offline or on any error it returns whatever
// the cache holds: stale data beats no data for an offline-first client.
func (e *Engine) SyncFromServer(ctx context.Context) ([]models.Note, error) {
	if !e.checker.Online(ctx) {
		e.logger.Debug("offline, serving notes from cache")
		return e.cache.ListNotes(ctx)
	}

	token, err := e.tokens.AccessToken(ctx)
	if err != nil {
		e.logger.Warn("cannot obtain access token, serving cache", "error", err)
		return e.cache.ListNotes(ctx)
	}

	serverNotes, err := e.api.ListNotes(ctx, token, 0, listPageSize)
	if err != nil {
		e.logger.Warn("list notes from server failed, serving cache", "error", err)
		return e.cache.ListNotes(ctx)
	}

	notes := make([]models.Note, 0, len(serverNotes))
	for _, sn := range serverNotes {
		notes = append(notes, models.NoteFromServer(sn))
	}

	if err := e.cache.ReplaceNotes(ctx, notes); err != nil {
		e.logger.Error("replace cached notes failed", "error", err)
		return e.cache.ListNotes(ctx)
	}
	if err := e.meta.SaveLastSyncTime(ctx, time.Now()); err != nil {
		e.logger.Warn("save last sync time failed", "error", err)
	}

	e.logger.Info("pulled notes from server", "count", len(notes))
	return notes, nil
}

// SyncToServer drains the pending operation queue in FIFO order. Each
// operation is applied independently: a failure is logged and the
// operation stays queued for the next pass. Нет сети — выходим сразу.
func (e *Engine) SyncToServer(ctx context.Context) (PushResult, error) {
	var res PushResult

	if !e.checker.Online(ctx) {
		ops, err := e.queue.ListOperations(ctx)
		if err == nil {
			res.Remaining = len(ops)
		}
		return res, nil
	}

	ops, err := e.queue.ListOperations(ctx)
	if err != nil {
		return res, err
	}
	if len(ops) == 0 {
		return res, nil
	}

	token, err := e.tokens.AccessToken(ctx)
	if err != nil {
		res.Remaining = len(ops)
		return res, err
	}

	for _, op := range ops {
		if err := e.applyOperation(ctx, token, op); err != nil {
			if errors.Is(err, clientapi.ErrUnauthorized) {
				res.Remaining = remaining(ctx, e.queue)
				return res, err
			}
			e.logger.Warn("pending operation failed",
				"op_id", op.ID, "type", op.Type, "error", err)
			res.Failed++
			continue
		}
		if err := e.queue.RemoveOperation(ctx, op.ID); err != nil {
			// Операция уже применена на сервере: при повторной отправке
			// CREATE создаст дубликат. Доставка at-least-once.
			e.logger.Error("remove completed operation failed",
				"op_id", op.ID, "error", err)
			res.Failed++
			continue
		}
		res.Completed++
	}

	res.Remaining = remaining(ctx, e.queue)
	return res, nil
}

// PendingCount returns the current pending operation queue length.
func (e *Engine) PendingCount(ctx context.Context) int {
	return remaining(ctx, e.queue)
}

// applyOperation applies one queued operation to the server and mirrors
// the result into the cache.
func (e *Engine) applyOperation(ctx context.Context, token string, op models.PendingOperation) error {
	switch op.Type {
	case models.OperationCreate:
		return e.applyCreate(ctx, token, op)
	case models.OperationUpdate:
		return e.applyUpdate(ctx, token, op)
	case models.OperationDelete:
		return e.applyDelete(ctx, token, op)
	default:
		// Неизвестный тип не станет валидным при повторе, просто убираем.
		e.logger.Warn("dropping operation of unknown type", "op_id", op.ID, "type", op.Type)
		return nil
	}
}

func (e *Engine) applyCreate(ctx context.Context, token string, op models.PendingOperation) error {
	req := api.CreateNoteRequest{}
	if op.Data.Title != nil {
		req.Title = *op.Data.Title
	}
	if op.Data.ContentMd != nil {
		req.ContentMd = *op.Data.ContentMd
	}
	if op.Data.Tags != nil {
		req.Tags = *op.Data.Tags
	}

	created, err := e.api.CreateNote(ctx, token, req)
	if err != nil {
		return err
	}

	// Локальная заметка получает серверный id; localId сохраняем,
	// чтобы открытые ссылки на неё не потерялись.
	note := models.NoteFromServer(*created)
	note.LocalID = op.LocalID
	if err := e.cache.SaveNote(ctx, note); err != nil {
		e.logger.Warn("cache created note failed", "op_id", op.ID, "error", err)
	}
	return nil
}

func (e *Engine) applyUpdate(ctx context.Context, token string, op models.PendingOperation) error {
	if op.NoteID == 0 {
		// Заметка так и не получила серверный id: обновлять нечего.
		e.logger.Warn("dropping update without server id", "op_id", op.ID, "local_id", op.LocalID)
		return nil
	}

	req := api.UpdateNoteRequest{
		Title:      op.Data.Title,
		ContentMd:  op.Data.ContentMd,
		Tags:       op.Data.Tags,
		Visibility: op.Data.Visibility,
	}

	updated, err := e.api.UpdateNote(ctx, token, op.NoteID, req)
	if err != nil {
		return err
	}

	if err := e.cache.SaveNote(ctx, models.NoteFromServer(*updated)); err != nil {
		e.logger.Warn("cache updated note failed", "op_id", op.ID, "error", err)
	}
	return nil
}

func (e *Engine) applyDelete(ctx context.Context, token string, op models.PendingOperation) error {
	if op.NoteID == 0 {
		e.logger.Warn("dropping delete without server id", "op_id", op.ID, "local_id", op.LocalID)
		return nil
	}

	if err := e.api.DeleteNote(ctx, token, op.NoteID); err != nil {
		return err
	}

	if err := e.cache.DeleteNote(ctx, op.NoteID); err != nil {
		e.logger.Warn("evict deleted note failed", "op_id", op.ID, "error", err)
	}
	return nil
}

func remaining(ctx context.Context, queue storage.OperationQueue) int {
	ops, err := queue.ListOperations(ctx)
	if err != nil {
		return 0
	}
	return len(ops)
}
