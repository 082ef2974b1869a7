package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"comanda/internal/service"
)

// TableHandler handles floor-view HTTP requests.
type TableHandler struct {
	service service.TableService
	logger  zerolog.Logger
}

// NewTableHandler creates a new table handler.
func NewTableHandler(service service.TableService, logger zerolog.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		logger:  logger.With().Str("handler", "table").Logger(),
	}
}

// List handles GET /api/tables requests. free=true narrows the response
// to unoccupied tables; refresh=true rederives occupancy first.
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		if err := h.service.Refresh(r.Context()); err != nil {
			writeDomainError(w, r, err, h.logger)
			return
		}
	}

	if r.URL.Query().Get("free") == "true" {
		writeJSON(w, http.StatusOK, h.service.FreeTables())
		return
	}
	writeJSON(w, http.StatusOK, h.service.Tables())
}

// Create handles POST /api/tables requests. The gateway assigns the
// next table number.
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	table, err := h.service.CreateTable(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}
