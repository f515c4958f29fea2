package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/middlewares"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

// PlantUpdater defines the interface that the plant service must implement.
type PlantUpdater interface {
	Update(ctx context.Context, p models.PlantDB) error
}

// NewUpdatePlantHandler returns an HTTP handler replacing all mutable fields
// of one of the caller's plants. A plant that is absent or owned by someone
// else yields the same 404.
// @Summary Update a plant
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant id"
// @Param plantRequest body handlers.PlantRequest true "Replacement plant parameters"
// @Success 200 {object} handlers.MessageResponse "Plant updated"
// @Failure 400 {object} handlers.ErrorResponse "Bad id or out-of-range values"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found or not owned"
// @Router /plants/{id} [put]
func NewUpdatePlantHandler(svc PlantUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Invalid plant id",
			})
			return
		}

		var req PlantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if msg, ok := validatePlantRequest(req); !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Message: msg})
			return
		}

		err = svc.Update(r.Context(), models.PlantDB{
			ID:          id,
			UserID:      claims.UserID,
			Name:        req.Name,
			ImagePath:   req.ImagePath,
			SunExposure: req.SunExposure,
			WaterAmount: req.WaterAmount,
			SoilPH:      req.SoilPH,
			HarvestDays: req.HarvestDays,
			Height:      req.Height,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPlantNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Plant not found or not authorized to update",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Failed to update plant",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Plant updated successfully",
		})
	}
}
