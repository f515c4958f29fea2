package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

// OverviewGetter defines the interface that the admin service must implement.
type OverviewGetter interface {
	Stats(ctx context.Context) (*services.OverviewStats, error)
}

// StatsResponse wraps the dashboard overview counters.
// swagger:model StatsResponse
type StatsResponse struct {
	Success bool                   `json:"success"`
	Data    services.OverviewStats `json:"data"`
}

// NewAdminStatsHandler returns an HTTP handler for the dashboard overview:
// total students, total plants and the number of entries dated today in
// server-local terms.
// @Summary Dashboard overview counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.StatsResponse "Aggregate counters"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid operator token"
// @Router /admin/stats [get]
func NewAdminStatsHandler(svc OverviewGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Message: "Failed to fetch stats",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatsResponse{
			Success: true,
			Data:    *stats,
		})
	}
}
