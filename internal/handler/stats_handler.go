package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"comanda/internal/service"
)

// StatsHandler handles the manager-dashboard HTTP requests.
type StatsHandler struct {
	service service.StatsService
	logger  zerolog.Logger
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(service service.StatsService, logger zerolog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With().Str("handler", "stats").Logger(),
	}
}

// Get handles GET /api/statistics requests. Figures are derived from
// fresh gateway data on every call.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.service.Snapshot(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
