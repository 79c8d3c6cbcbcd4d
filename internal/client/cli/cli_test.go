package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/zametka/internal/client/auth"
	"github.com/iudanet/zametka/internal/client/iocli"
	"github.com/iudanet/zametka/internal/client/netcheck"
	"github.com/iudanet/zametka/internal/client/notes"
	"github.com/iudanet/zametka/internal/client/storage/boltdb"
	syncpkg "github.com/iudanet/zametka/internal/client/sync"
	"github.com/iudanet/zametka/internal/models"
)

// testIO собирает весь вывод CLI в буфер, ввод отдаёт из списка ответов.
func testIO(inputs ...string) (*iocli.IOMock, *strings.Builder) {
	var out strings.Builder
	next := 0

	mock := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(&out, format, a...)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			if next >= len(inputs) {
				return "", fmt.Errorf("no more scripted inputs")
			}
			v := inputs[next]
			next++
			return v, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if next >= len(inputs) {
				return "", fmt.Errorf("no more scripted inputs")
			}
			v := inputs[next]
			next++
			return v, nil
		},
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
	}
	return mock, &out
}

func newTestCli(t *testing.T, inputs ...string) (*Cli, *strings.Builder, *boltdb.Storage) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := boltdb.New(context.Background(), filepath.Join(t.TempDir(), "cli.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	syncer := &notes.SyncerMock{
		SyncFromServerFunc: func(ctx context.Context) ([]models.Note, error) {
			return store.ListNotes(ctx)
		},
		SyncToServerFunc: func(ctx context.Context) (syncpkg.PushResult, error) {
			return syncpkg.PushResult{}, nil
		},
		PendingCountFunc: func(ctx context.Context) int {
			ops, _ := store.ListOperations(ctx)
			return len(ops)
		},
	}
	checker := &netcheck.CheckerMock{
		OnlineFunc: func(ctx context.Context) bool { return false },
	}

	notesService := notes.NewService(syncer, store, store, store, checker, logger)
	authService := auth.NewService(&auth.AuthAPIMock{}, store, logger)

	ioMock, out := testIO(inputs...)
	cli := New(ioMock, nil, authService, notesService, "test")
	return cli, out, store
}

func TestCli_AddListGetDelete(t *testing.T) {
	// Ввод: подтверждение удаления
	cli, out, _ := newTestCli(t, "y")
	ctx := context.Background()

	err := cli.Run(ctx, "add", []string{"-title", "Shopping", "-content", "- milk", "-tags", "home,errands"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Note saved locally")

	err = cli.Run(ctx, "list", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Shopping")
	assert.Contains(t, out.String(), "#home #errands")
	// Несинхронизированная заметка помечена звёздочкой
	assert.Contains(t, out.String(), "* [local_")

	// Достаём локальный id из чистого состояния
	cli2, out2, store := newTestCli(t, "y")
	note, err := cli2.notesService.CreateNote(ctx, "To read", "books", nil)
	require.NoError(t, err)

	err = cli2.Run(ctx, "get", []string{note.LocalID})
	require.NoError(t, err)
	assert.Contains(t, out2.String(), "To read")
	assert.Contains(t, out2.String(), "not synced yet")

	err = cli2.Run(ctx, "delete", []string{note.LocalID})
	require.NoError(t, err)
	assert.Contains(t, out2.String(), "Note deleted locally")

	cached, err := store.GetNoteByLocalID(ctx, note.LocalID)
	require.NoError(t, err)
	assert.True(t, cached.PendingDelete)
}

func TestCli_DeleteCancelled(t *testing.T) {
	cli, out, store := newTestCli(t, "n")
	ctx := context.Background()

	note, err := cli.notesService.CreateNote(ctx, "keep me", "", nil)
	require.NoError(t, err)

	err = cli.Run(ctx, "delete", []string{note.LocalID})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Cancelled")

	cached, err := store.GetNoteByLocalID(ctx, note.LocalID)
	require.NoError(t, err)
	assert.False(t, cached.PendingDelete)
}

func TestCli_Edit(t *testing.T) {
	cli, out, store := newTestCli(t)
	ctx := context.Background()

	note, err := cli.notesService.CreateNote(ctx, "draft", "old", nil)
	require.NoError(t, err)

	err = cli.Run(ctx, "edit", []string{note.LocalID, "-title", "final"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Note updated locally")

	cached, err := store.GetNoteByLocalID(ctx, note.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "final", cached.Title)
	assert.Equal(t, "old", cached.ContentMd)
}

func TestCli_Edit_NoFlags(t *testing.T) {
	cli, _, _ := newTestCli(t)
	ctx := context.Background()

	note, err := cli.notesService.CreateNote(ctx, "draft", "", nil)
	require.NoError(t, err)

	err = cli.Run(ctx, "edit", []string{note.LocalID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")
}

func TestCli_Status_NotAuthenticated(t *testing.T) {
	cli, out, _ := newTestCli(t)

	err := cli.Run(context.Background(), "status", nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "not authenticated")
}

func TestCli_UnknownCommand(t *testing.T) {
	cli, out, _ := newTestCli(t)

	err := cli.Run(context.Background(), "frobnicate", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Contains(t, out.String(), "Usage:")
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "single", raw: "home", want: []string{"home"}},
		{name: "spaces and empties", raw: " a , ,b,", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitTags(tt.raw))
		})
	}
}
