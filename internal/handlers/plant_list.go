package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/middlewares"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// PlantLister defines the interface that the plant service must implement.
type PlantLister interface {
	List(ctx context.Context, userID int64) ([]models.PlantDB, error)
}

// NewListPlantsHandler returns an HTTP handler listing the caller's plants.
// The response is a bare JSON array, newest-created first.
// @Summary List own plants
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PlantDB "Caller's plants"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /plants [get]
func NewListPlantsHandler(svc PlantLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())

		plants, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Failed to fetch plants",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(plants)
	}
}
