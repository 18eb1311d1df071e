package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	authmw "github.com/hanzicards/backend/internal/auth/middleware"
	"github.com/hanzicards/backend/internal/models"
	"go.uber.org/zap"
)

// StatsService is the interface that wraps methods for stats business logic.
type StatsService interface {
	// Summary aggregates a user's progress in one dictionary.
	Summary(ctx context.Context, userID string, dictionaryID int64) (*models.StatsSummary, error)
}

// StatsHandler handles HTTP requests for study statistics.
//
// Masking follows the study routes: with maskForbidden enabled, access
// failures answer 200 with a zeroed summary.
type StatsHandler struct {
	BaseHandler
	service       StatsService
	maskForbidden bool
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(svc StatsService, maskForbidden bool, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		service:       svc,
		maskForbidden: maskForbidden,
		BaseHandler:   BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all stats handler routes
func (h *StatsHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/dictionaries/{dictionaryID}/stats", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/summary", h.Summary)
	})
}

// Summary handles GET /api/v1/dictionaries/{dictionaryID}/stats/summary
// @Summary Get progress summary
// @Description Get character totals, known/unknown split, due count and accumulated study time
// @Tags stats
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Success 200 {object} models.StatsSummary
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/stats/summary [get]
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	summary, err := h.service.Summary(r.Context(), username, dictionaryID)
	if err != nil {
		if h.maskForbidden && maskable(err) {
			h.respondJSON(w, http.StatusOK, &models.StatsSummary{})
			return
		}
		h.respondServiceError(w, err, "get stats summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}
