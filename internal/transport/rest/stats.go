package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/asmirnova/circleback/internal/domain"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	DaysSinceLastInteraction(ctx context.Context) ([]domain.ActivityRecord, error)
}

// StatsHandler serves statistics REST endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type activityResponse struct {
	Records []domain.ActivityRecord `json:"records"`
}

// DaysSinceLastInteraction handles GET /api/v1/stats/days-since-last-interaction.
func (h *StatsHandler) DaysSinceLastInteraction(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.DaysSinceLastInteraction(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, activityResponse{Records: records})
}
