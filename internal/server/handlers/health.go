package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// HealthHandler обрабатывает GET /healthz.
// Эндпоинт же служит клиенту пробой доступности сервера.
type HealthHandler struct {
	logger  *slog.Logger
	version string
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(logger *slog.Logger, version string) *HealthHandler {
	return &HealthHandler{
		logger:  logger,
		version: version,
	}
}

// Health возвращает статус сервера
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	sendJSON(h.logger, w, HealthResponse{
		Status:    "ok",
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
