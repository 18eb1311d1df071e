package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hanzicards/backend/internal/services"
	"go.uber.org/zap"
)

type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// respondServiceError maps well-known service errors to their HTTP status
func (h *BaseHandler) respondServiceError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrForbidden):
		h.respondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, services.ErrAlreadyExists):
		h.respondError(w, http.StatusConflict, "already exists")
	case errors.Is(err, services.ErrInvalidRating):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("failed to "+action, zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to "+action)
	}
}
