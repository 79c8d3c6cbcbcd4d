package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/zametka/internal/models"
	"github.com/iudanet/zametka/internal/server/storage"
	"github.com/iudanet/zametka/pkg/api"
)

// PermissionRead единственное поддерживаемое право доступа
const PermissionRead = "READ"

// ShareHandler обрабатывает выдачу доступа и публичные ссылки
type ShareHandler struct {
	logger       *slog.Logger
	noteStorage  storage.NoteStorage
	shareStorage storage.ShareStorage
	linkStorage  storage.LinkStorage
	userStorage  storage.UserStorage
	baseURL      string
}

// NewShareHandler создает новый ShareHandler
func NewShareHandler(
	logger *slog.Logger,
	noteStorage storage.NoteStorage,
	shareStorage storage.ShareStorage,
	linkStorage storage.LinkStorage,
	userStorage storage.UserStorage,
	baseURL string,
) *ShareHandler {
	return &ShareHandler{
		logger:       logger,
		noteStorage:  noteStorage,
		shareStorage: shareStorage,
		linkStorage:  linkStorage,
		userStorage:  userStorage,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

// ShareWithUser обрабатывает POST /api/v1/notes/{id}/share/user
func (h *ShareHandler) ShareWithUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, ok := h.loadOwnedNote(ctx, w, r)
	if !ok {
		return
	}

	var req api.ShareWithUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	target, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user",
			slog.String("email", email),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if target.ID == rec.OwnerID {
		sendError(h.logger, w, "cannot share note with yourself", http.StatusBadRequest)
		return
	}

	share := &models.Share{
		NoteID:           rec.ID,
		SharedWithUserID: target.ID,
		Permission:       PermissionRead,
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.shareStorage.CreateShare(ctx, share); err != nil {
		if errors.Is(err, storage.ErrShareAlreadyExists) {
			sendError(h.logger, w, "note already shared with this user", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create share",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// PRIVATE -> SHARED; публичная заметка остается PUBLIC
	if rec.Visibility == api.VisibilityPrivate {
		rec.Visibility = api.VisibilityShared
		rec.UpdatedAt = time.Now().UTC()
		if err := h.noteStorage.UpdateNote(ctx, rec); err != nil {
			h.logger.ErrorContext(ctx, "failed to update note visibility",
				slog.Int64("note_id", rec.ID),
				slog.Any("error", err),
			)
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	h.logger.InfoContext(ctx, "note shared",
		slog.Int64("note_id", rec.ID),
		slog.Int64("shared_with", target.ID),
	)

	sendJSON(h.logger, w, api.Share{
		ID:              share.ID,
		NoteID:          share.NoteID,
		SharedWithEmail: target.Email,
		Permission:      share.Permission,
	}, http.StatusCreated)
}

// CreatePublicLink обрабатывает POST /api/v1/notes/{id}/share/public.
// Если ссылка уже есть, возвращается существующая.
func (h *ShareHandler) CreatePublicLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rec, ok := h.loadOwnedNote(ctx, w, r)
	if !ok {
		return
	}

	existing, err := h.linkStorage.GetLinkByNote(ctx, rec.ID)
	if err == nil {
		sendJSON(h.logger, w, h.apiLink(existing), http.StatusOK)
		return
	}
	if !errors.Is(err, storage.ErrLinkNotFound) {
		h.logger.ErrorContext(ctx, "failed to get public link",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	link := &models.PublicLink{
		NoteID:    rec.ID,
		URLToken:  uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := h.linkStorage.CreatePublicLink(ctx, link); err != nil {
		h.logger.ErrorContext(ctx, "failed to create public link",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if rec.Visibility != api.VisibilityPublic {
		rec.Visibility = api.VisibilityPublic
		rec.UpdatedAt = time.Now().UTC()
		if err := h.noteStorage.UpdateNote(ctx, rec); err != nil {
			h.logger.ErrorContext(ctx, "failed to update note visibility",
				slog.Int64("note_id", rec.ID),
				slog.Any("error", err),
			)
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	h.logger.InfoContext(ctx, "public link created",
		slog.Int64("note_id", rec.ID),
		slog.Int64("link_id", link.ID),
	)

	sendJSON(h.logger, w, h.apiLink(link), http.StatusCreated)
}

// RevokePublicLink обрабатывает DELETE /api/v1/public-links/{id}.
// После отзыва видимость заметки откатывается: SHARED если остались
// доступы, иначе PRIVATE.
func (h *ShareHandler) RevokePublicLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	linkID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid link id", http.StatusBadRequest)
		return
	}

	link, err := h.linkStorage.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, storage.ErrLinkNotFound) {
			sendError(h.logger, w, "link not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get public link",
			slog.Int64("link_id", linkID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	rec, err := h.noteStorage.GetNote(ctx, link.NoteID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get note for link",
			slog.Int64("note_id", link.NoteID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if rec.OwnerID != userID {
		sendError(h.logger, w, "link not found", http.StatusNotFound)
		return
	}

	if err := h.linkStorage.DeletePublicLink(ctx, link.ID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete public link",
			slog.Int64("link_id", link.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	shares, err := h.shareStorage.ListSharesForNote(ctx, rec.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list shares",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if len(shares) > 0 {
		rec.Visibility = api.VisibilityShared
	} else {
		rec.Visibility = api.VisibilityPrivate
	}
	rec.UpdatedAt = time.Now().UTC()
	if err := h.noteStorage.UpdateNote(ctx, rec); err != nil {
		h.logger.ErrorContext(ctx, "failed to update note visibility",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "public link revoked",
		slog.Int64("note_id", rec.ID),
		slog.Int64("link_id", link.ID),
	)

	w.WriteHeader(http.StatusNoContent)
}

// GetPublicNote обрабатывает GET /api/v1/public/notes/{token} без авторизации
func (h *ShareHandler) GetPublicNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.PathValue("token")
	if token == "" {
		sendError(h.logger, w, "invalid link token", http.StatusBadRequest)
		return
	}

	link, err := h.linkStorage.GetLinkByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrLinkNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get public link", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	if link.Expired(time.Now()) {
		sendError(h.logger, w, "note not found", http.StatusNotFound)
		return
	}

	rec, err := h.noteStorage.GetNote(ctx, link.NoteID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get note for link",
			slog.Int64("note_id", link.NoteID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	owner, err := h.userStorage.GetUserByID(ctx, rec.OwnerID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get note owner",
			slog.Int64("user_id", rec.OwnerID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Публичный вид не раскрывает список выданных доступов
	note := api.Note{
		ID:         rec.ID,
		Title:      rec.Title,
		ContentMd:  rec.ContentMd,
		Visibility: rec.Visibility,
		Tags:       rec.Tags,
		OwnerID:    rec.OwnerID,
		OwnerEmail: owner.Email,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
		PublicLink: h.apiLink(link),
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	sendJSON(h.logger, w, note, http.StatusOK)
}

// loadOwnedNote читает {id} из пути и проверяет, что заметка
// принадлежит аутентифицированному пользователю
func (h *ShareHandler) loadOwnedNote(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.NoteRecord, bool) {
	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	noteID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid note id", http.StatusBadRequest)
		return nil, false
	}

	rec, err := h.noteStorage.GetNote(ctx, noteID)
	if err != nil {
		if errors.Is(err, storage.ErrNoteNotFound) {
			sendError(h.logger, w, "note not found", http.StatusNotFound)
			return nil, false
		}
		h.logger.ErrorContext(ctx, "failed to get note",
			slog.Int64("note_id", noteID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	if rec.OwnerID != userID {
		sendError(h.logger, w, "note not found", http.StatusNotFound)
		return nil, false
	}

	return rec, true
}

// apiLink конвертирует публичную ссылку в API-вид с полным URL
func (h *ShareHandler) apiLink(link *models.PublicLink) *api.PublicLink {
	out := &api.PublicLink{
		ID:        link.ID,
		URLToken:  link.URLToken,
		FullURL:   h.baseURL + "/api/v1/public/notes/" + link.URLToken,
		CreatedAt: link.CreatedAt.Format(time.RFC3339),
	}
	if link.ExpiresAt != nil {
		out.ExpiresAt = link.ExpiresAt.Format(time.RFC3339)
	}
	return out
}
