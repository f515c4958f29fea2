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
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

// PlantDeleter defines the interface that the plant service must implement.
type PlantDeleter interface {
	Delete(ctx context.Context, id, userID int64) error
}

// NewDeletePlantHandler returns an HTTP handler removing one of the caller's
// plants.
// @Summary Delete a plant
// @Tags plants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plant id"
// @Success 200 {object} handlers.MessageResponse "Plant deleted"
// @Failure 400 {object} handlers.ErrorResponse "Bad id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Plant not found or not owned"
// @Router /plants/{id} [delete]
func NewDeletePlantHandler(svc PlantDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), id, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrPlantNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Plant not found or not authorized to delete",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Failed to delete plant",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Plant deleted successfully",
		})
	}
}
