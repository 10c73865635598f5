package handler

import (
	"log/slog"
	"net/http"

	"github.com/passgen/passgen-go/internal/service"
)

// StatsHandler handles HTTP requests for generation statistics.
type StatsHandler struct {
	service *service.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{service: svc}
}

// HandleStats handles GET /api/v1/stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Summary(r.Context())
	if err != nil {
		slog.Error("failed to load stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
