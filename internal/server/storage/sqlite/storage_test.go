package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/zametka/internal/models"
)

// createTestStorage создает in-memory хранилище с прогнанными миграциями
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// createTestUser вставляет пользователя и возвращает его с заполненным ID
func createTestUser(t *testing.T, store *Storage, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		PasswordHash: "$2a$10$fakehashfortests",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, store.CreateUser(context.Background(), user))
	require.NotZero(t, user.ID)
	return user
}

// createTestNote вставляет заметку и возвращает её с заполненным ID
func createTestNote(t *testing.T, store *Storage, ownerID int64, title string) *models.NoteRecord {
	t.Helper()

	now := time.Now().UTC()
	note := &models.NoteRecord{
		OwnerID:    ownerID,
		Title:      title,
		ContentMd:  "content of " + title,
		Visibility: "PRIVATE",
		Tags:       []string{"test"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, store.CreateNote(context.Background(), note))
	require.NotZero(t, note.ID)
	return note
}

func TestNew_RunsMigrations(t *testing.T) {
	store := createTestStorage(t)

	// После миграций все таблицы на месте
	for _, table := range []string{"users", "refresh_tokens", "notes", "shares", "public_links"} {
		var name string
		err := store.DB().QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s must exist", table)
	}
}
