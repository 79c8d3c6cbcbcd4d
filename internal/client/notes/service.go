// Package notes реализует offline-first фасад над кэшем, очередью
// операций и движком синхронизации: запись всегда проходит локально
// и мгновенно, отправка на сервер идёт в фоне.
package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	stdsync "sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/zametka/internal/client/netcheck"
	"github.com/iudanet/zametka/internal/client/storage"
	"github.com/iudanet/zametka/internal/client/sync"
	"github.com/iudanet/zametka/internal/models"
	"github.com/iudanet/zametka/internal/validation"
	"github.com/iudanet/zametka/pkg/api"
)

var (
	// ErrNoteNotFound is returned when a note reference resolves to nothing.
	ErrNoteNotFound = errors.New("note not found")

	// ErrSyncInProgress is returned when SyncNow is already running.
	ErrSyncInProgress = errors.New("sync already in progress")
)

//go:generate moq -out syncer_mock.go . Syncer

// Syncer is the sync engine surface the facade depends on.
type Syncer interface {
	SyncFromServer(ctx context.Context) ([]models.Note, error)
	SyncToServer(ctx context.Context) (sync.PushResult, error)
	PendingCount(ctx context.Context) int
}

// watcherInterval — период опроса доступности сервера.
const watcherInterval = 15 * time.Second

// UIState mirrors what a frontend needs to render list chrome.
type UIState struct {
	LastError  string
	Loading    bool
	Refreshing bool
}

// Service is the offline-first facade over the local cache, the
// pending operation queue and the sync engine. All mutations apply to
// the cache immediately and are pushed to the server asynchronously
// through a single background worker.
type Service struct {
	engine  Syncer
	cache   storage.NoteCache
	queue   storage.OperationQueue
	meta    storage.MetadataStorage
	checker netcheck.Checker
	logger  *slog.Logger

	mu    stdsync.Mutex
	state UIState

	isSyncing atomic.Bool

	pushTrigger chan struct{}
	results     chan sync.PushResult

	now func() time.Time
}

// NewService builds the notes facade. Call Run to start the background
// push worker and the connectivity watcher.
func NewService(
	engine Syncer,
	cache storage.NoteCache,
	queue storage.OperationQueue,
	meta storage.MetadataStorage,
	checker netcheck.Checker,
	logger *slog.Logger,
) *Service {
	return &Service{
		engine:  engine,
		cache:   cache,
		queue:   queue,
		meta:    meta,
		checker: checker,
		logger:  logger,
		// Единица ёмкости: достаточно знать, что отправка уже запрошена
		pushTrigger: make(chan struct{}, 1),
		results:     make(chan sync.PushResult, 16),
		now:         time.Now,
	}
}

// Run starts the background push worker and the connectivity watcher
// and blocks until ctx is done.
func (s *Service) Run(ctx context.Context) {
	go s.pushWorker(ctx)

	watcher := netcheck.NewWatcher(s.checker, watcherInterval, func(online bool) {
		if online {
			// Снова в сети: сразу доставляем накопленное и подтягиваем свежее
			if _, err := s.SyncNow(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
				s.logger.Warn("sync on reconnect failed", "error", err)
			}
		}
	}, s.logger)
	watcher.Run(ctx)
}

// Results exposes push outcomes for observability. The channel is
// buffered and never blocks the worker: unread results are dropped.
func (s *Service) Results() <-chan sync.PushResult {
	return s.results
}

// FetchNotes returns notes for display: cache first, then a pull from
// the server when reachable. It never fails outward because of the
// network, the caller always gets the best known list.
func (s *Service) FetchNotes(ctx context.Context) ([]models.Note, error) {
	s.setState(func(st *UIState) { st.Loading = true; st.LastError = "" })
	defer s.setState(func(st *UIState) { st.Loading = false })

	notes, err := s.engine.SyncFromServer(ctx)
	if err != nil {
		// Движок глотает сетевые ошибки сам, сюда попадают только
		// проблемы хранилища
		s.setState(func(st *UIState) { st.LastError = err.Error() })
		s.logger.Warn("fetch notes failed", "error", err)
	}

	return visible(notes), nil
}

// RefreshNotes drains the pending queue and then re-pulls from the
// server, keeping the refreshing flag set for the duration.
func (s *Service) RefreshNotes(ctx context.Context) ([]models.Note, error) {
	s.setState(func(st *UIState) { st.Refreshing = true })
	defer s.setState(func(st *UIState) { st.Refreshing = false })

	// Сначала выгружаем очередь: pull перезаписывает кэш, и без push
	// он бы стёр неотправленные создания и пометки удаления
	if _, err := s.SyncNow(ctx); err != nil && !errors.Is(err, ErrSyncInProgress) {
		s.setState(func(st *UIState) { st.LastError = err.Error() })
	}

	notes, err := s.cache.ListNotes(ctx)
	if err != nil {
		s.setState(func(st *UIState) { st.LastError = err.Error() })
	}
	return visible(notes), nil
}

// GetNote resolves a note by reference: a numeric ref is a server id,
// anything else is a local id.
func (s *Service) GetNote(ctx context.Context, ref string) (*models.Note, error) {
	return s.resolve(ctx, ref)
}

// CreateNote saves the note locally, queues a CREATE operation and
// returns immediately. The note is visible right away with a local id
// and Synced == false.
func (s *Service) CreateNote(ctx context.Context, title, contentMd string, tags []string) (*models.Note, error) {
	if err := validation.ValidateTitle(title); err != nil {
		return nil, err
	}

	nowT := s.now()
	millis := nowT.UnixMilli()
	localID := models.LocalNoteID(millis)

	note := models.Note{
		LocalID:    localID,
		Title:      title,
		ContentMd:  contentMd,
		Tags:       tags,
		Visibility: api.VisibilityPrivate,
		CreatedAt:  models.Timestamp(nowT),
		UpdatedAt:  models.Timestamp(nowT),
		Synced:     false,
	}

	if err := s.cache.SaveNote(ctx, note); err != nil {
		return nil, fmt.Errorf("cache note: %w", err)
	}

	op := models.PendingOperation{
		ID:      localID,
		Type:    models.OperationCreate,
		LocalID: localID,
		Data: models.OperationData{
			Title:     &title,
			ContentMd: &contentMd,
			Tags:      &tags,
		},
		Timestamp: millis,
	}
	if err := s.queue.AppendOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("queue create operation: %w", err)
	}

	s.schedulePush()
	return &note, nil
}

// UpdateNote merges the given fields into the cached note, queues an
// UPDATE operation and returns the updated note immediately.
func (s *Service) UpdateNote(ctx context.Context, ref string, data models.OperationData) (*models.Note, error) {
	if data.Title != nil {
		if err := validation.ValidateTitle(*data.Title); err != nil {
			return nil, err
		}
	}

	note, err := s.resolve(ctx, ref)
	if err != nil {
		return nil, err
	}

	nowT := s.now()
	if data.Title != nil {
		note.Title = *data.Title
	}
	if data.ContentMd != nil {
		note.ContentMd = *data.ContentMd
	}
	if data.Tags != nil {
		note.Tags = *data.Tags
	}
	if data.Visibility != nil {
		note.Visibility = *data.Visibility
	}
	note.UpdatedAt = models.Timestamp(nowT)
	note.Synced = false

	if err := s.cache.SaveNote(ctx, *note); err != nil {
		return nil, fmt.Errorf("cache note: %w", err)
	}

	op := models.PendingOperation{
		ID:        models.UpdateOperationID(note.ServerID, nowT.UnixMilli()),
		Type:      models.OperationUpdate,
		NoteID:    note.ServerID,
		LocalID:   note.LocalID,
		Data:      data,
		Timestamp: nowT.UnixMilli(),
	}
	if err := s.queue.AppendOperation(ctx, op); err != nil {
		return nil, fmt.Errorf("queue update operation: %w", err)
	}

	s.schedulePush()
	return note, nil
}

// DeleteNote soft-marks the note for deletion so it disappears from
// listings immediately, then queues a DELETE for the server.
func (s *Service) DeleteNote(ctx context.Context, ref string) error {
	note, err := s.resolve(ctx, ref)
	if err != nil {
		return err
	}

	nowT := s.now()
	note.PendingDelete = true
	note.Synced = false
	if err := s.cache.SaveNote(ctx, *note); err != nil {
		return fmt.Errorf("cache note: %w", err)
	}

	op := models.PendingOperation{
		ID:        models.DeleteOperationID(note.ServerID, nowT.UnixMilli()),
		Type:      models.OperationDelete,
		NoteID:    note.ServerID,
		LocalID:   note.LocalID,
		Timestamp: nowT.UnixMilli(),
	}
	if err := s.queue.AppendOperation(ctx, op); err != nil {
		return fmt.Errorf("queue delete operation: %w", err)
	}

	s.schedulePush()
	return nil
}

// SyncNow pushes the pending queue and then pulls the server state.
// Only one sync runs at a time: a second concurrent call returns
// ErrSyncInProgress instead of queueing up behind the first.
func (s *Service) SyncNow(ctx context.Context) (*models.SyncStatus, error) {
	if !s.isSyncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.isSyncing.Store(false)

	res, err := s.engine.SyncToServer(ctx)
	if err != nil {
		s.logger.Warn("push failed", "error", err,
			"completed", res.Completed, "failed", res.Failed, "remaining", res.Remaining)
	}
	s.publishResult(res)

	if _, err := s.engine.SyncFromServer(ctx); err != nil {
		s.logger.Warn("pull failed", "error", err)
	}

	return s.SyncStatus(ctx), nil
}

// SyncStatus computes a fresh status snapshot.
func (s *Service) SyncStatus(ctx context.Context) *models.SyncStatus {
	status := &models.SyncStatus{
		PendingOperations: s.engine.PendingCount(ctx),
		IsOnline:          s.checker.Online(ctx),
		IsSyncing:         s.isSyncing.Load(),
	}

	if last, err := s.meta.GetLastSyncTime(ctx); err == nil && !last.IsZero() {
		status.LastSync = &last
	}
	return status
}

// State returns the current UI state snapshot.
func (s *Service) State() UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// schedulePush asks the background worker for a push pass. Non-blocking:
// если отправка уже запрошена, второй сигнал не нужен.
func (s *Service) schedulePush() {
	select {
	case s.pushTrigger <- struct{}{}:
	default:
	}
}

func (s *Service) pushWorker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.pushTrigger:
			res, err := s.engine.SyncToServer(ctx)
			if err != nil {
				s.logger.Warn("background push failed", "error", err)
			}
			s.publishResult(res)
		}
	}
}

func (s *Service) publishResult(res sync.PushResult) {
	select {
	case s.results <- res:
	default:
		// Результаты никто не читает, не копим
	}
}

func (s *Service) resolve(ctx context.Context, ref string) (*models.Note, error) {
	if serverID, err := strconv.ParseInt(ref, 10, 64); err == nil {
		note, err := s.cache.GetNote(ctx, serverID)
		if err != nil {
			if errors.Is(err, storage.ErrNoteNotFound) {
				return nil, fmt.Errorf("%w: id %d", ErrNoteNotFound, serverID)
			}
			return nil, err
		}
		return note, nil
	}

	note, err := s.cache.GetNoteByLocalID(ctx, ref)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, ref)
		}
		return nil, err
	}
	return note, nil
}

func (s *Service) setState(mutate func(*UIState)) {
	s.mu.Lock()
	mutate(&s.state)
	s.mu.Unlock()
}

// visible filters out notes soft-marked for deletion.
func visible(notes []models.Note) []models.Note {
	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if !n.PendingDelete {
			out = append(out, n)
		}
	}
	return out
}
