package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"comanda/internal/model"
	"comanda/internal/service"
)

// TabHandler handles customer-tab HTTP requests.
type TabHandler struct {
	service service.TabService
	logger  zerolog.Logger
}

// NewTabHandler creates a new tab handler.
func NewTabHandler(service service.TabService, logger zerolog.Logger) *TabHandler {
	return &TabHandler{
		service: service,
		logger:  logger.With().Str("handler", "tab").Logger(),
	}
}

// List handles GET /api/tabs requests. The status query parameter
// selects the open (default) or closed view; refresh=true forces a
// reload from the gateway before answering.
func (h *TabHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		if err := h.service.Refresh(r.Context()); err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}
	}

	switch strings.ToLower(r.URL.Query().Get("status")) {
	case "", "open":
		writeJSON(w, http.StatusOK, h.service.OpenTabs())
	case "closed":
		writeJSON(w, http.StatusOK, h.service.ClosedTabs())
	default:
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "status must be open or closed", h.logger)
	}
}

// createTabRequest is the POST /api/tabs payload.
type createTabRequest struct {
	TableID      string `json:"tableId"`
	CustomerName string `json:"customerName"`
}

// Create handles POST /api/tabs requests.
func (h *TabHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req createTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.TableID == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "tableId is required", h.logger)
		return
	}

	tab, err := h.service.CreateTab(r.Context(), req.TableID, req.CustomerName)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, tab)
}

// Close handles POST /api/tabs/{id}/close requests.
func (h *TabHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/tabs/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "tab ID is required", h.logger)
		return
	}

	if err := h.service.CloseTab(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// Delete handles DELETE /api/tabs/{id} requests.
func (h *TabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/tabs/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "tab ID is required", h.logger)
		return
	}

	if err := h.service.DeleteTab(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// emailRequest is the POST /api/tabs/{id}/email payload.
type emailRequest struct {
	Email string `json:"email"`
}

// Email handles POST /api/tabs/{id}/email requests.
func (h *TabHandler) Email(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/tabs/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "tab ID is required", h.logger)
		return
	}

	var req emailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if err := h.service.EmailReceipt(r.Context(), id, req.Email); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
