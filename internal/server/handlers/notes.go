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

	"github.com/iudanet/zametka/internal/models"
	"github.com/iudanet/zametka/internal/server/storage"
	"github.com/iudanet/zametka/internal/validation"
	"github.com/iudanet/zametka/pkg/api"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// NotesHandler обрабатывает CRUD запросы по заметкам
type NotesHandler struct {
	logger       *slog.Logger
	noteStorage  storage.NoteStorage
	shareStorage storage.ShareStorage
	linkStorage  storage.LinkStorage
	userStorage  storage.UserStorage
	baseURL      string
}

// NewNotesHandler создает новый NotesHandler.
// baseURL используется для построения полных публичных ссылок.
func NewNotesHandler(
	logger *slog.Logger,
	noteStorage storage.NoteStorage,
	shareStorage storage.ShareStorage,
	linkStorage storage.LinkStorage,
	userStorage storage.UserStorage,
	baseURL string,
) *NotesHandler {
	return &NotesHandler{
		logger:       logger,
		noteStorage:  noteStorage,
		shareStorage: shareStorage,
		linkStorage:  linkStorage,
		userStorage:  userStorage,
		baseURL:      strings.TrimRight(baseURL, "/"),
	}
}

// List обрабатывает GET /api/v1/notes
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", defaultPageSize)
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	records, total, err := h.noteStorage.ListNotesForUser(ctx, userID, page*size, size)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list notes",
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	content := make([]api.Note, 0, len(records))
	for _, rec := range records {
		note, err := h.apiNote(ctx, rec)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to build note response",
				slog.Int64("note_id", rec.ID),
				slog.Any("error", err),
			)
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		content = append(content, *note)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	sendJSON(h.logger, w, api.NoteListResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, http.StatusOK)
}

// Get обрабатывает GET /api/v1/notes/{id}
func (h *NotesHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rec, ok := h.loadNote(ctx, w, r)
	if !ok {
		return
	}

	if !h.canRead(ctx, rec, userID) {
		// 404 вместо 403, чтобы не раскрывать существование чужих заметок
		sendError(h.logger, w, "note not found", http.StatusNotFound)
		return
	}

	note, err := h.apiNote(ctx, rec)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build note response",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, note, http.StatusOK)
}

// Create обрабатывает POST /api/v1/notes.
// Новая заметка всегда PRIVATE, видимость меняется только через share-эндпоинты.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validation.ValidateTitle(req.Title); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	now := time.Now().UTC()
	rec := &models.NoteRecord{
		OwnerID:    userID,
		Title:      strings.TrimSpace(req.Title),
		ContentMd:  req.ContentMd,
		Visibility: api.VisibilityPrivate,
		Tags:       req.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := h.noteStorage.CreateNote(ctx, rec); err != nil {
		h.logger.ErrorContext(ctx, "failed to create note",
			slog.Int64("user_id", userID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note created",
		slog.Int64("note_id", rec.ID),
		slog.Int64("user_id", userID),
	)

	note, err := h.apiNote(ctx, rec)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build note response", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, note, http.StatusCreated)
}

// Update обрабатывает PUT /api/v1/notes/{id}.
// nil-поля запроса не изменяются. Только владелец может менять заметку.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rec, ok := h.loadNote(ctx, w, r)
	if !ok {
		return
	}

	if rec.OwnerID != userID {
		sendError(h.logger, w, "note not found", http.StatusNotFound)
		return
	}

	var req api.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Title != nil {
		if err := validation.ValidateTitle(*req.Title); err != nil {
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}
		rec.Title = strings.TrimSpace(*req.Title)
	}
	if req.ContentMd != nil {
		rec.ContentMd = *req.ContentMd
	}
	if req.Tags != nil {
		rec.Tags = *req.Tags
	}
	if req.Visibility != nil {
		switch *req.Visibility {
		case api.VisibilityPrivate, api.VisibilityShared, api.VisibilityPublic:
			rec.Visibility = *req.Visibility
		default:
			sendError(h.logger, w, "invalid visibility", http.StatusBadRequest)
			return
		}
	}
	rec.UpdatedAt = time.Now().UTC()

	if err := h.noteStorage.UpdateNote(ctx, rec); err != nil {
		h.logger.ErrorContext(ctx, "failed to update note",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	note, err := h.apiNote(ctx, rec)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build note response", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, note, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/notes/{id}
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rec, ok := h.loadNote(ctx, w, r)
	if !ok {
		return
	}

	if rec.OwnerID != userID {
		sendError(h.logger, w, "note not found", http.StatusNotFound)
		return
	}

	if err := h.noteStorage.DeleteNote(ctx, rec.ID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete note",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "note deleted",
		slog.Int64("note_id", rec.ID),
		slog.Int64("user_id", userID),
	)

	w.WriteHeader(http.StatusNoContent)
}

// loadNote читает {id} из пути и достает заметку.
// При ошибке сам пишет ответ и возвращает ok=false.
func (h *NotesHandler) loadNote(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.NoteRecord, bool) {
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
	return rec, true
}

// canRead проверяет право пользователя читать заметку
func (h *NotesHandler) canRead(ctx context.Context, rec *models.NoteRecord, userID int64) bool {
	if rec.OwnerID == userID {
		return true
	}
	if rec.Visibility == api.VisibilityPublic {
		return true
	}
	shared, err := h.shareStorage.HasShare(ctx, rec.ID, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to check share",
			slog.Int64("note_id", rec.ID),
			slog.Any("error", err),
		)
		return false
	}
	return shared
}

// apiNote собирает полный API-вид заметки: email владельца,
// выданные доступы и публичная ссылка
func (h *NotesHandler) apiNote(ctx context.Context, rec *models.NoteRecord) (*api.Note, error) {
	owner, err := h.userStorage.GetUserByID(ctx, rec.OwnerID)
	if err != nil {
		return nil, err
	}

	note := &api.Note{
		ID:         rec.ID,
		Title:      rec.Title,
		ContentMd:  rec.ContentMd,
		Visibility: rec.Visibility,
		Tags:       rec.Tags,
		OwnerID:    rec.OwnerID,
		OwnerEmail: owner.Email,
		CreatedAt:  rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  rec.UpdatedAt.Format(time.RFC3339),
	}
	if note.Tags == nil {
		note.Tags = []string{}
	}

	shares, err := h.shareStorage.ListSharesForNote(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	for _, s := range shares {
		user, err := h.userStorage.GetUserByID(ctx, s.SharedWithUserID)
		if err != nil {
			return nil, err
		}
		note.Shares = append(note.Shares, api.Share{
			ID:              s.ID,
			NoteID:          s.NoteID,
			SharedWithEmail: user.Email,
			Permission:      s.Permission,
		})
	}

	link, err := h.linkStorage.GetLinkByNote(ctx, rec.ID)
	if err != nil {
		if !errors.Is(err, storage.ErrLinkNotFound) {
			return nil, err
		}
	} else {
		note.PublicLink = h.apiLink(link)
	}

	return note, nil
}

// apiLink конвертирует публичную ссылку в API-вид с полным URL
func (h *NotesHandler) apiLink(link *models.PublicLink) *api.PublicLink {
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

// queryInt читает числовой query-параметр с дефолтом
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
