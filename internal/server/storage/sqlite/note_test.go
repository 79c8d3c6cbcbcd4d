package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/zametka/internal/models"
	"github.com/iudanet/zametka/internal/server/storage"
)

func TestCreateAndGetNote(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")
	note := createTestNote(t, store, user.ID, "Shopping")

	got, err := store.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shopping", got.Title)
	assert.Equal(t, user.ID, got.OwnerID)
	assert.Equal(t, "PRIVATE", got.Visibility)
	assert.Equal(t, []string{"test"}, got.Tags)
}

func TestGetNote_NotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetNote(context.Background(), 9999)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestUpdateNote(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := createTestUser(t, store, "alice@example.com")
	note := createTestNote(t, store, user.ID, "draft")

	note.Title = "final"
	note.Tags = []string{"a", "b"}
	note.Visibility = "SHARED"
	note.UpdatedAt = time.Now().UTC().Add(time.Minute)
	require.NoError(t, store.UpdateNote(ctx, note))

	got, err := store.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
	assert.Equal(t, "SHARED", got.Visibility)
}

func TestUpdateNote_NotFound(t *testing.T) {
	store := createTestStorage(t)

	err := store.UpdateNote(context.Background(), &models.NoteRecord{ID: 9999, Title: "x"})
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)
}

func TestDeleteNote_CascadesSharesAndLinks(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")
	note := createTestNote(t, store, alice.ID, "doomed")

	require.NoError(t, store.CreateShare(ctx, &models.Share{
		NoteID:           note.ID,
		SharedWithUserID: bob.ID,
		Permission:       "READ",
		CreatedAt:        time.Now().UTC(),
	}))
	require.NoError(t, store.CreatePublicLink(ctx, &models.PublicLink{
		NoteID:    note.ID,
		URLToken:  uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}))

	require.NoError(t, store.DeleteNote(ctx, note.ID))

	_, err := store.GetNote(ctx, note.ID)
	assert.ErrorIs(t, err, storage.ErrNoteNotFound)

	shares, err := store.ListSharesForNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)

	_, err = store.GetLinkByNote(ctx, note.ID)
	assert.ErrorIs(t, err, storage.ErrLinkNotFound)
}

func TestListNotesForUser_OwnedAndShared(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")

	own := createTestNote(t, store, alice.ID, "mine")
	createTestNote(t, store, bob.ID, "not visible")
	shared := createTestNote(t, store, bob.ID, "shared with alice")

	require.NoError(t, store.CreateShare(ctx, &models.Share{
		NoteID:           shared.ID,
		SharedWithUserID: alice.ID,
		Permission:       "READ",
		CreatedAt:        time.Now().UTC(),
	}))

	notes, total, err := store.ListNotesForUser(ctx, alice.ID, 0, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, notes, 2)

	ids := []int64{notes[0].ID, notes[1].ID}
	assert.Contains(t, ids, own.ID)
	assert.Contains(t, ids, shared.ID)
}

func TestListNotesForUser_OrderAndPaging(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com")

	base := time.Now().UTC()
	for i := 0; i < 3; i++ {
		note := &models.NoteRecord{
			OwnerID:    alice.ID,
			Title:      string(rune('a' + i)),
			Visibility: "PRIVATE",
			CreatedAt:  base,
			UpdatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.CreateNote(ctx, note))
	}

	// Первая страница из двух: самые свежие по updated_at
	notes, total, err := store.ListNotesForUser(ctx, alice.ID, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, notes, 2)
	assert.Equal(t, "c", notes[0].Title)
	assert.Equal(t, "b", notes[1].Title)

	notes, _, err = store.ListNotesForUser(ctx, alice.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "a", notes[0].Title)
}

func TestCreateShare_Duplicate(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")
	note := createTestNote(t, store, alice.ID, "shared")

	share := &models.Share{
		NoteID:           note.ID,
		SharedWithUserID: bob.ID,
		Permission:       "READ",
		CreatedAt:        time.Now().UTC(),
	}
	require.NoError(t, store.CreateShare(ctx, share))

	dup := &models.Share{
		NoteID:           note.ID,
		SharedWithUserID: bob.ID,
		Permission:       "READ",
		CreatedAt:        time.Now().UTC(),
	}
	err := store.CreateShare(ctx, dup)
	assert.ErrorIs(t, err, storage.ErrShareAlreadyExists)
}

func TestHasShare(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com")
	bob := createTestUser(t, store, "bob@example.com")
	note := createTestNote(t, store, alice.ID, "shared")

	has, err := store.HasShare(ctx, note.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, store.CreateShare(ctx, &models.Share{
		NoteID:           note.ID,
		SharedWithUserID: bob.ID,
		Permission:       "READ",
		CreatedAt:        time.Now().UTC(),
	}))

	has, err = store.HasShare(ctx, note.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestPublicLinks(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com")
	note := createTestNote(t, store, alice.ID, "public")

	token := uuid.NewString()
	expires := time.Now().UTC().Add(24 * time.Hour)
	link := &models.PublicLink{
		NoteID:    note.ID,
		URLToken:  token,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: &expires,
	}
	require.NoError(t, store.CreatePublicLink(ctx, link))
	require.NotZero(t, link.ID)

	byToken, err := store.GetLinkByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, note.ID, byToken.NoteID)
	require.NotNil(t, byToken.ExpiresAt)

	byID, err := store.GetLinkByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, token, byID.URLToken)

	require.NoError(t, store.DeletePublicLink(ctx, link.ID))

	_, err = store.GetLinkByToken(ctx, token)
	assert.ErrorIs(t, err, storage.ErrLinkNotFound)

	err = store.DeletePublicLink(ctx, link.ID)
	assert.ErrorIs(t, err, storage.ErrLinkNotFound)
}
