package notes

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/zametka/internal/client/netcheck"
	"github.com/iudanet/zametka/internal/client/storage/boltdb"
	"github.com/iudanet/zametka/internal/client/sync"
	"github.com/iudanet/zametka/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestService строит фасад поверх настоящего bbolt-хранилища и
// мока движка синхронизации.
func newTestService(t *testing.T) (*Service, *boltdb.Storage, *SyncerMock, *netcheck.CheckerMock) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := boltdb.New(context.Background(), dbPath, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	syncer := &SyncerMock{
		// По умолчанию pull отдаёт кэш, как настоящий движок в офлайне
		SyncFromServerFunc: func(ctx context.Context) ([]models.Note, error) {
			return store.ListNotes(ctx)
		},
		SyncToServerFunc: func(ctx context.Context) (sync.PushResult, error) {
			return sync.PushResult{}, nil
		},
		PendingCountFunc: func(ctx context.Context) int {
			ops, _ := store.ListOperations(ctx)
			return len(ops)
		},
	}
	checker := &netcheck.CheckerMock{
		OnlineFunc: func(ctx context.Context) bool { return false },
	}

	svc := NewService(syncer, store, store, store, checker, testLogger())
	return svc, store, syncer, checker
}

func TestService_CreateNote_OptimisticVisibility(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	ctx := context.Background()

	note, err := svc.CreateNote(ctx, "Shopping", "- milk", []string{"home"})
	require.NoError(t, err)

	// Заметка видна сразу, с локальным id и без подтверждения сервера
	assert.True(t, strings.HasPrefix(note.LocalID, "local_"))
	assert.Zero(t, note.ServerID)
	assert.False(t, note.Synced)

	notes, err := svc.FetchNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "Shopping", notes[0].Title)

	// Операция CREATE встала в очередь
	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OperationCreate, ops[0].Type)
	assert.Equal(t, note.LocalID, ops[0].LocalID)
	require.NotNil(t, ops[0].Data.Title)
	assert.Equal(t, "Shopping", *ops[0].Data.Title)
}

func TestService_CreateNote_EmptyTitle(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateNote(ctx, "   ", "content", nil)
	require.Error(t, err)

	notes, err := store.ListNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestService_UpdateNote(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.SaveNote(ctx, models.Note{
		ServerID:  7,
		Title:     "old",
		ContentMd: "body",
		UpdatedAt: "2026-01-01T00:00:00Z",
		Synced:    true,
	}))

	title := "new title"
	note, err := svc.UpdateNote(ctx, "7", models.OperationData{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "new title", note.Title)
	assert.Equal(t, "body", note.ContentMd) // незатронутое поле сохраняется
	assert.False(t, note.Synced)
	assert.NotEqual(t, "2026-01-01T00:00:00Z", note.UpdatedAt)

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OperationUpdate, ops[0].Type)
	assert.Equal(t, int64(7), ops[0].NoteID)
}

func TestService_UpdateNote_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.UpdateNote(context.Background(), "99", models.OperationData{})
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestService_UpdateNote_ByLocalID(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.SaveNote(ctx, models.Note{
		LocalID: "local_123",
		Title:   "draft",
	}))

	title := "renamed draft"
	note, err := svc.UpdateNote(ctx, "local_123", models.OperationData{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "renamed draft", note.Title)

	// Без серверного id операция всё равно встаёт в очередь
	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Zero(t, ops[0].NoteID)
	assert.Equal(t, "local_123", ops[0].LocalID)
}

func TestService_DeleteNote_SoftHide(t *testing.T) {
	svc, store, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.SaveNote(ctx, models.Note{ServerID: 7, Title: "doomed", Synced: true}))

	require.NoError(t, svc.DeleteNote(ctx, "7"))

	// Из выдачи заметка исчезла сразу
	notes, err := svc.FetchNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)

	// Но в кэше она ещё лежит с пометкой на удаление
	cached, err := store.GetNote(ctx, 7)
	require.NoError(t, err)
	assert.True(t, cached.PendingDelete)

	ops, err := store.ListOperations(ctx)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, models.OperationDelete, ops[0].Type)
}

func TestService_DeleteNote_NotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	err := svc.DeleteNote(context.Background(), "404")
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

// TestService_SyncNow_SecondCallerDeclines фиксирует взаимное
// исключение: пока идёт синхронизация, повторный вызов отказывает,
// а не встаёт в очередь.
func TestService_SyncNow_SecondCallerDeclines(t *testing.T) {
	svc, _, syncer, _ := newTestService(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	syncer.SyncToServerFunc = func(ctx context.Context) (sync.PushResult, error) {
		close(started)
		<-release
		return sync.PushResult{}, nil
	}

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.SyncNow(ctx)
		firstDone <- err
	}()

	<-started

	_, err := svc.SyncNow(ctx)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-firstDone)

	// После завершения замок отпущен
	syncer.SyncToServerFunc = func(ctx context.Context) (sync.PushResult, error) {
		return sync.PushResult{}, nil
	}
	_, err = svc.SyncNow(ctx)
	assert.NoError(t, err)
}

// TestService_RefreshNotes_DrainsQueueBeforePull фиксирует порядок
// обновления: сначала очередь уходит на сервер, потом pull. Иначе pull
// перезаписал бы кэш серверным состоянием и удалённая заметка
// воскресла бы в выдаче.
func TestService_RefreshNotes_DrainsQueueBeforePull(t *testing.T) {
	svc, store, syncer, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, store.SaveNote(ctx, models.Note{ServerID: 5, Title: "doomed", Synced: true}))
	require.NoError(t, svc.DeleteNote(ctx, "5"))

	// Сервер узнаёт об удалении только из push-а
	serverNotes := []models.Note{{ServerID: 5, Title: "doomed", Synced: true}}
	syncer.SyncToServerFunc = func(ctx context.Context) (sync.PushResult, error) {
		serverNotes = nil
		require.NoError(t, store.DeleteNote(ctx, 5))
		return sync.PushResult{Completed: 1}, nil
	}
	syncer.SyncFromServerFunc = func(ctx context.Context) ([]models.Note, error) {
		require.NoError(t, store.ReplaceNotes(ctx, serverNotes))
		return serverNotes, nil
	}

	notes, err := svc.RefreshNotes(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes, "deleted note must not resurface after refresh")
	require.Len(t, syncer.SyncToServerCalls(), 1)
	require.Len(t, syncer.SyncFromServerCalls(), 1)
}

func TestService_SyncNow_PushBeforePull(t *testing.T) {
	svc, _, syncer, _ := newTestService(t)

	var order []string
	syncer.SyncToServerFunc = func(ctx context.Context) (sync.PushResult, error) {
		order = append(order, "push")
		return sync.PushResult{Completed: 1}, nil
	}
	syncer.SyncFromServerFunc = func(ctx context.Context) ([]models.Note, error) {
		order = append(order, "pull")
		return nil, nil
	}

	_, err := svc.SyncNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"push", "pull"}, order)
}

func TestService_SyncStatus(t *testing.T) {
	svc, store, _, checker := newTestService(t)
	ctx := context.Background()

	checker.OnlineFunc = func(ctx context.Context) bool { return true }
	last := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveLastSyncTime(ctx, last))
	require.NoError(t, store.AppendOperation(ctx, models.PendingOperation{ID: "a"}))
	require.NoError(t, store.AppendOperation(ctx, models.PendingOperation{ID: "b"}))

	status := svc.SyncStatus(ctx)

	assert.True(t, status.IsOnline)
	assert.False(t, status.IsSyncing)
	assert.Equal(t, 2, status.PendingOperations)
	require.NotNil(t, status.LastSync)
	assert.True(t, status.LastSync.Equal(last))
}

// TestService_BackgroundPush проверяет, что мутация будит фонового
// воркера и результат отправки виден в канале Results.
func TestService_BackgroundPush(t *testing.T) {
	svc, _, syncer, _ := newTestService(t)

	pushed := make(chan struct{}, 1)
	syncer.SyncToServerFunc = func(ctx context.Context) (sync.PushResult, error) {
		select {
		case pushed <- struct{}{}:
		default:
		}
		return sync.PushResult{Completed: 1}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.pushWorker(ctx)

	_, err := svc.CreateNote(ctx, "wake the worker", "", nil)
	require.NoError(t, err)

	select {
	case <-pushed:
	case <-time.After(2 * time.Second):
		t.Fatal("background push never ran")
	}

	select {
	case res := <-svc.Results():
		assert.Equal(t, 1, res.Completed)
	case <-time.After(2 * time.Second):
		t.Fatal("push result never published")
	}
}

func TestService_FetchNotes_StateFlags(t *testing.T) {
	svc, _, syncer, _ := newTestService(t)

	syncer.SyncFromServerFunc = func(ctx context.Context) ([]models.Note, error) {
		st := svc.State()
		assert.True(t, st.Loading)
		return nil, nil
	}

	_, err := svc.FetchNotes(context.Background())
	require.NoError(t, err)
	assert.False(t, svc.State().Loading)
}
