package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"comanda/internal/model"
	"comanda/internal/service"
)

// AuthHandler handles session HTTP requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// loginRequest is the POST /api/login payload: the Google ID token plus
// the client-side profile that accompanies it.
type loginRequest struct {
	IDToken string                `json:"idToken"`
	Profile service.GoogleProfile `json:"profile"`
}

// Login handles POST /api/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	user, err := h.service.Login(r.Context(), req.IDToken, req.Profile)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/logout requests.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/session requests, reporting the logged-in
// user or 401 when there is no session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user := h.service.CurrentUser()
	if user == nil {
		writeError(w, r, http.StatusUnauthorized, model.ErrCodeUnauthorised, "no active session", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
