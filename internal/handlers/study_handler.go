package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	authmw "github.com/hanzicards/backend/internal/auth/middleware"
	"github.com/hanzicards/backend/internal/models"
	"github.com/hanzicards/backend/internal/scheduler"
	"github.com/hanzicards/backend/internal/services"
	"go.uber.org/zap"
)

// StudyService is the interface that wraps methods for study business logic.
type StudyService interface {
	// GetQueue retrieves the ordered due queue: unseen characters first,
	// then due ones by ascending due time.
	GetQueue(ctx context.Context, userID string, dictionaryID int64) ([]models.QueueItem, error)
	// SubmitReview applies one SM-2 review and returns the new scheduling
	// state. Returns services.ErrInvalidRating for ratings outside 0..5.
	SubmitReview(ctx context.Context, userID string, dictionaryID int64, req models.ReviewRequest) (*models.ReviewResult, error)
	// StartSession opens a study session.
	StartSession(ctx context.Context, userID string, dictionaryID int64) (*models.SessionStartResult, error)
	// EndSession closes a study session; unknown session IDs are a no-op.
	EndSession(ctx context.Context, userID string, dictionaryID int64, req models.EndSessionRequest) (*models.SessionEndResult, error)
}

// StudyHandler handles HTTP requests for the study workflow.
//
// With maskForbidden enabled, access failures on read-style study routes
// answer 200 with an empty payload instead of 403/404, so a client cannot
// probe which dictionary IDs exist.
type StudyHandler struct {
	BaseHandler
	service       StudyService
	maskForbidden bool
}

// NewStudyHandler creates a new study handler
func NewStudyHandler(svc StudyService, maskForbidden bool, logger *zap.Logger) *StudyHandler {
	return &StudyHandler{
		service:       svc,
		maskForbidden: maskForbidden,
		BaseHandler:   BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all study handler routes
func (h *StudyHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/dictionaries/{dictionaryID}/study", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/queue", h.GetQueue)
		r.Post("/review", h.SubmitReview)
		r.Post("/session/start", h.StartSession)
		r.Post("/session/end", h.EndSession)
	})
}

// maskable reports whether err is an access failure the masking policy covers
func maskable(err error) bool {
	return errors.Is(err, services.ErrForbidden) || errors.Is(err, services.ErrNotFound)
}

// GetQueue handles GET /api/v1/dictionaries/{dictionaryID}/study/queue
// @Summary Get due queue
// @Description Get the characters due for review, unseen ones first
// @Tags study
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Success 200 {object} models.QueueResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/study/queue [get]
func (h *StudyHandler) GetQueue(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	items, err := h.service.GetQueue(r.Context(), username, dictionaryID)
	if err != nil {
		if h.maskForbidden && maskable(err) {
			h.respondJSON(w, http.StatusOK, models.QueueResponse{Items: []models.QueueItem{}})
			return
		}
		h.respondServiceError(w, err, "get due queue")
		return
	}

	if items == nil {
		items = []models.QueueItem{}
	}
	h.respondJSON(w, http.StatusOK, models.QueueResponse{Items: items})
}

// SubmitReview handles POST /api/v1/dictionaries/{dictionaryID}/study/review
// @Summary Submit review
// @Description Apply one SM-2 review of a character and return the new scheduling state
// @Tags study
// @Accept json
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Param request body models.ReviewRequest true "Review"
// @Success 200 {object} models.ReviewResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/study/review [post]
func (h *StudyHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Hanzi == "" {
		h.respondError(w, http.StatusBadRequest, "hanzi is required")
		return
	}

	result, err := h.service.SubmitReview(r.Context(), username, dictionaryID, req)
	if err != nil {
		// Invalid ratings stay a 400 even under masking
		if h.maskForbidden && maskable(err) {
			h.respondJSON(w, http.StatusOK, map[string]any{
				"nextReviewAt": "",
				"interval":     0,
				"easeFactor":   scheduler.DefaultEaseFactor,
			})
			return
		}
		h.respondServiceError(w, err, "submit review")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// StartSession handles POST /api/v1/dictionaries/{dictionaryID}/study/session/start
// @Summary Start study session
// @Description Open a study session and return its ID
// @Tags study
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Success 200 {object} models.SessionStartResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/study/session/start [post]
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	result, err := h.service.StartSession(r.Context(), username, dictionaryID)
	if err != nil {
		if h.maskForbidden && maskable(err) {
			h.respondJSON(w, http.StatusOK, map[string]any{
				"sessionId": 0,
				"startedAt": "",
			})
			return
		}
		h.respondServiceError(w, err, "start session")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// EndSession handles POST /api/v1/dictionaries/{dictionaryID}/study/session/end
// @Summary End study session
// @Description Close a study session; ending an unknown or already-closed session succeeds
// @Tags study
// @Accept json
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Param request body models.EndSessionRequest true "Session to close"
// @Success 200 {object} models.SessionEndResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/study/session/end [post]
func (h *StudyHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	var req models.EndSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID <= 0 {
		h.respondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	result, err := h.service.EndSession(r.Context(), username, dictionaryID, req)
	if err != nil {
		if h.maskForbidden && maskable(err) {
			h.respondJSON(w, http.StatusOK, map[string]any{
				"sessionId": req.SessionID,
				"endedAt":   "",
			})
			return
		}
		h.respondServiceError(w, err, "end session")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}
