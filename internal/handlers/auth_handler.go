package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	authmw "github.com/hanzicards/backend/internal/auth/middleware"
	"github.com/hanzicards/backend/internal/models"
	"github.com/hanzicards/backend/internal/services"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Login verifies a username/password pair and issues an access token.
	//
	// Returns services.ErrInvalidCredentials for an unknown user or a wrong
	// password; the two are indistinguishable to the caller.
	Login(username, password string) (*models.LoginResponse, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	BaseHandler
	service AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(svc AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all auth handler routes
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.With(authMiddleware).Get("/me", h.Me)
	})
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Verify credentials and issue a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		h.respondError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}
		h.logger.Error("failed to log in", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// Me handles GET /api/v1/auth/me
// @Summary Get current user
// @Description Return the username of the authenticated principal
// @Tags auth
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := authmw.GetUsername(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	h.respondJSON(w, http.StatusOK, models.UserResponse{Username: username})
}
