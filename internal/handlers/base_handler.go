package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillvalley/training-service/internal/services"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"error": message})
}

// statusForError maps engine error kinds to HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUnknownCourse),
		errors.Is(err, services.ErrUnknownTopic),
		errors.Is(err, services.ErrUnknownQuestion):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidSelection),
		errors.Is(err, services.ErrIncompleteAttempt),
		errors.Is(err, services.ErrViewedSignalRequired):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrLedgerUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
