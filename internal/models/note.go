package models

import (
	"time"

	"github.com/iudanet/zametka/pkg/api"
)

// Note представляет заметку на клиенте.
// Поле ServerID равно 0, пока сервер не присвоил заметке идентификатор;
// до этого момента заметка адресуется по LocalID.
// Поля Synced и PendingDelete существуют только локально и описывают
// состояние синхронизации, сервер про них ничего не знает.
type Note struct {
	ServerID   int64           `json:"id"`
	LocalID    string          `json:"localId,omitempty"`
	Title      string          `json:"title"`
	ContentMd  string          `json:"contentMd"`
	Visibility string          `json:"visibility"`
	Tags       []string        `json:"tags"`
	OwnerID    int64           `json:"ownerId"`
	OwnerEmail string          `json:"ownerEmail"`
	CreatedAt  string          `json:"createdAt"` // ISO-8601
	UpdatedAt  string          `json:"updatedAt"` // ISO-8601
	Shares     []api.Share     `json:"shares,omitempty"`
	PublicLink *api.PublicLink `json:"publicLink,omitempty"`

	// Локальные флаги offline-синхронизации
	Synced        bool `json:"synced"`
	PendingDelete bool `json:"pendingDelete,omitempty"`
}

// NoteFromServer converts a server note into the local representation.
// Server data is authoritative, so the result is always marked synced.
func NoteFromServer(n api.Note) Note {
	return Note{
		ServerID:   n.ID,
		Title:      n.Title,
		ContentMd:  n.ContentMd,
		Visibility: n.Visibility,
		Tags:       n.Tags,
		OwnerID:    n.OwnerID,
		OwnerEmail: n.OwnerEmail,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Shares:     n.Shares,
		PublicLink: n.PublicLink,
		Synced:     true,
	}
}

// ToAPI converts the note into its wire representation,
// dropping the client-only fields.
func (n Note) ToAPI() api.Note {
	return api.Note{
		ID:         n.ServerID,
		Title:      n.Title,
		ContentMd:  n.ContentMd,
		Visibility: n.Visibility,
		Tags:       n.Tags,
		OwnerID:    n.OwnerID,
		OwnerEmail: n.OwnerEmail,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
		Shares:     n.Shares,
		PublicLink: n.PublicLink,
	}
}

// Timestamp formats an instant the way the server does (ISO-8601, UTC).
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
