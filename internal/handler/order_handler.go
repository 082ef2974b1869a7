package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"comanda/internal/model"
	"comanda/internal/service"
)

// OrderHandler handles order HTTP requests.
type OrderHandler struct {
	service service.TabService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.TabService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// createOrderRequest is the POST /api/orders payload. An empty tabId
// submits a walk-in order not attached to any tab.
type createOrderRequest struct {
	TabID string                 `json:"tabId"`
	Lines []model.NewLineRequest `json:"lines"`
}

// Create handles POST /api/orders requests.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInternalError, "method not allowed", h.logger)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), req.TabID, req.Lines)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/orders/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", h.logger)
		return
	}

	order, err := h.service.Order(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	if order == nil {
		writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "order not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Close handles POST /api/orders/{id}/close requests.
func (h *OrderHandler) Close(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/orders/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", h.logger)
		return
	}

	if err := h.service.CloseOrder(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "closed"})
}

// Delete handles DELETE /api/orders/{id} requests.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := pathID(r.URL.Path, "/api/orders/")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeMissingField, "order ID is required", h.logger)
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
