package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	authmw "github.com/hanzicards/backend/internal/auth/middleware"
	"github.com/hanzicards/backend/internal/models"
	"go.uber.org/zap"
)

// CharactersService is the interface that wraps methods for Characters business logic.
type CharactersService interface {
	// Import adds hanzi to a dictionary, deriving pinyin readings on the
	// way in. Entries that are not a single CJK ideograph, or already
	// present, count as skipped. Owner only.
	Import(ctx context.Context, userID string, dictionaryID int64, items []string) (*models.ImportCharactersResult, error)
	// List retrieves all characters of a dictionary the user may read.
	List(ctx context.Context, userID string, dictionaryID int64) ([]models.CharacterListItem, error)
	// Info retrieves one character together with the most frequent words
	// containing it.
	Info(ctx context.Context, userID string, dictionaryID int64, hanzi string) (*models.CharacterInfo, error)
}

// CharactersHandler handles HTTP requests for characters
type CharactersHandler struct {
	BaseHandler
	service CharactersService
}

// NewCharactersHandler creates a new character handler
func NewCharactersHandler(svc CharactersService, logger *zap.Logger) *CharactersHandler {
	return &CharactersHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all character handler routes
func (h *CharactersHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/dictionaries/{dictionaryID}/characters", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.List)
		r.Post("/import", h.Import)
		r.Get("/{hanzi}/info", h.Info)
	})
}

// List handles GET /api/v1/dictionaries/{dictionaryID}/characters
// @Summary List characters
// @Description List all characters of a dictionary
// @Tags characters
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Success 200 {array} models.CharacterListItem
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/characters [get]
func (h *CharactersHandler) List(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	items, err := h.service.List(r.Context(), username, dictionaryID)
	if err != nil {
		h.respondServiceError(w, err, "list characters")
		return
	}

	h.respondJSON(w, http.StatusOK, items)
}

// Import handles POST /api/v1/dictionaries/{dictionaryID}/characters/import
// @Summary Import characters
// @Description Import hanzi into a dictionary (owner only); pinyin is derived automatically
// @Tags characters
// @Accept json
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Param request body models.ImportCharactersRequest true "Hanzi to import"
// @Success 200 {object} models.ImportCharactersResult
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/characters/import [post]
func (h *CharactersHandler) Import(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	var req models.ImportCharactersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		h.respondError(w, http.StatusBadRequest, "items are required")
		return
	}

	result, err := h.service.Import(r.Context(), username, dictionaryID, req.Items)
	if err != nil {
		h.respondServiceError(w, err, "import characters")
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Info handles GET /api/v1/dictionaries/{dictionaryID}/characters/{hanzi}/info
// @Summary Get character info
// @Description Get one character with its pinyin and most frequent words
// @Tags characters
// @Produce json
// @Param dictionaryID path int true "Dictionary ID"
// @Param hanzi path string true "Character glyph"
// @Success 200 {object} models.CharacterInfo
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/dictionaries/{dictionaryID}/characters/{hanzi}/info [get]
func (h *CharactersHandler) Info(w http.ResponseWriter, r *http.Request) {
	username, _ := authmw.GetUsername(r.Context())

	dictionaryID, ok := dictionaryIDParam(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid dictionary id")
		return
	}

	hanzi := chi.URLParam(r, "hanzi")
	if hanzi == "" {
		h.respondError(w, http.StatusBadRequest, "hanzi parameter is required")
		return
	}

	info, err := h.service.Info(r.Context(), username, dictionaryID, hanzi)
	if err != nil {
		h.respondServiceError(w, err, "get character info")
		return
	}

	h.respondJSON(w, http.StatusOK, info)
}
