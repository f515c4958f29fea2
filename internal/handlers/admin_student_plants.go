package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// StudentPlantsLister defines the interface that the admin service must
// implement.
type StudentPlantsLister interface {
	StudentPlants(ctx context.Context, userID int64) ([]models.PlantDB, error)
}

// StudentPlantsResponse wraps one student's plants.
// swagger:model StudentPlantsResponse
type StudentPlantsResponse struct {
	Success bool             `json:"success"`
	Data    []models.PlantDB `json:"data"`
}

// NewAdminStudentPlantsHandler returns an HTTP handler listing one student's
// plants, newest first.
// @Summary Plants of one student
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student id"
// @Success 200 {object} handlers.StudentPlantsResponse "Student's plants"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid operator token"
// @Router /admin/student/{id}/plants [get]
func NewAdminStudentPlantsHandler(svc StudentPlantsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Message: "Invalid student id",
			})
			return
		}

		plants, err := svc.StudentPlants(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Message: "Failed to fetch plants for student",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StudentPlantsResponse{
			Success: true,
			Data:    plants,
		})
	}
}
