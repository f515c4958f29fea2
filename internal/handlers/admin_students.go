package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// StudentLister defines the interface that the admin service must implement.
type StudentLister interface {
	Students(ctx context.Context) ([]models.UserDB, error)
}

// StudentsResponse wraps the full roster, passwords excluded.
// swagger:model StudentsResponse
type StudentsResponse struct {
	Success bool            `json:"success"`
	Data    []models.UserDB `json:"data"`
}

// NewAdminStudentsHandler returns an HTTP handler listing all registered
// students, most recently registered first.
// @Summary Student roster
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.StudentsResponse "All students"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid operator token"
// @Router /admin/students [get]
func NewAdminStudentsHandler(svc StudentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := svc.Students(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Message: "Failed to fetch students",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StudentsResponse{
			Success: true,
			Data:    students,
		})
	}
}
