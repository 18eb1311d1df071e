package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	authmw "github.com/hanzicards/backend/internal/auth/middleware"
	"github.com/hanzicards/backend/internal/models"
	"go.uber.org/zap"
)

// DictionariesService is the interface that wraps methods for Dictionaries business logic.
type DictionariesService interface {
	// List retrieves the dictionaries visible to a user, creating the
	// default private one first for users who own none.
	List(ctx context.Context, userID string) ([]models.DictionaryItem, error)
	// Create adds a new dictionary owned by the user.
	//
	// Returns services.ErrAlreadyExists when the user already owns a
	// dictionary with the same name.
	Create(ctx context.Context, userID string, req models.CreateDictionaryRequest) (*models.DictionaryItem, error)
	// Get retrieves one dictionary the user may read.
	Get(ctx context.Context, userID string, dictionaryID int64) (*models.DictionaryItem, error)
	// Update changes a dictionary's name or visibility. Owner only;
	// omitted fields keep their current value.
	Update(ctx context.Context, userID string, dictionaryID int64, req models.UpdateDictionaryRequest) (*models.DictionaryItem, error)
	// Delete removes a dictionary together with its characters, study
	// records and sessions. Owner only.
	Delete(ctx context.Context, userID string, dictionaryID int64) error
}

// DictionariesHandler handles HTTP requests for dictionaries
type DictionariesHandler struct {
	BaseHandler
	service DictionariesService
}

// NewDictionariesHandler creates a new dictionary handler
func NewDictionariesHandler(svc DictionariesService, logger *zap.Logger) *DictionariesHandler {
	return &DictionariesHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all dictionary handler routes
func (h *DictionariesHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/dictionaries", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{dictionaryID}", h.Get)
		r.Patch("/{dictionaryID}", h.Update)
		r.Delete("/{dictionaryID}", h.Delete)
	})
}

// dictionaryIDParam parses the {dictionaryID} path parameter
func dictionaryIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "dictionaryID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List handles GET /api/v1/dictionaries
// @Summary List dictionaries
// @Description List the user's own dictionaries plus public ones
// @Tags dictionaries
// @Produce json
// @Success 200 {array} models.DictionaryItem
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries [get]
func (h *DictionariesHandler) List(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	items, err := h.service.List(r.Context(), username)
	if err != nil {
		h.respondServiceError(w, err, "list dictionaries")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// Create handles POST /api/v1/dictionaries
// @Summary Create dictionary
// @Description Create a new dictionary owned by the user
// @Tags dictionaries
// @Accept json
// @Produce json
// @Param request body models.CreateDictionaryRequest true "Dictionary"
// @Success 201 {object} models.DictionaryItem
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries [post]
func (h *DictionariesHandler) Create(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	var req models.CreateDictionaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		h.respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	item, err := h.service.Create(r.Context(), username, req)
	if err != nil {
		h.respondServiceError(w, err, "create dictionary")
		return
	}

	h.respondJSON(w, http.StatusCreated, item)
}

// Get handles GET /api/v1/dictionaries/{dictionaryID}
// @Summary Get dictionary
// @Description Get one dictionary the user may read
// @Tags dictionaries
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Success 200 {object} models.DictionaryItem
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID} [get]
func (h *DictionariesHandler) Get(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	item, err := h.service.Get(r.Context(), username, dictionaryID)
	if err != nil {
		h.respondServiceError(w, err, "get dictionary")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// Update handles PATCH /api/v1/dictionaries/{dictionaryID}
// @Summary Update dictionary
// @Description Change a dictionary's name or visibility (owner only)
// @Tags dictionaries
// @Accept json
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Param request body models.UpdateDictionaryRequest true "Fields to change"
// @Success 200 {object} models.DictionaryItem
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID} [patch]
func (h *DictionariesHandler) Update(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	var req models.UpdateDictionaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Update(r.Context(), username, dictionaryID, req)
	if err != nil {
		h.respondServiceError(w, err, "update dictionary")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/dictionaries/{dictionaryID}
// @Summary Delete dictionary
// @Description Delete a dictionary and all study state scoped to it (owner only)
// @Tags dictionaries
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID} [delete]
func (h *DictionariesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	if err := h.service.Delete(r.Context(), username, dictionaryID); err != nil {
		h.respondServiceError(w, err, "delete dictionary")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
