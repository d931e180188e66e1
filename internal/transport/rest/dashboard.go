package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sharankona/CompanyPortal-sub000/internal/domain"
)

type dashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	RecentActivity(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// DashboardHandler serves the dashboard counters and the activity feed.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(*stats))
}

// Activities handles GET /api/activities?limit=.
func (h *DashboardHandler) Activities(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			handleError(h.log, w, r, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		limit = n
	}

	entries, err := h.svc.RecentActivity(r.Context(), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]activityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toActivityResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}
