package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

// StudentDeleter defines the interface that the admin service must implement.
type StudentDeleter interface {
	DeleteStudent(ctx context.Context, userID int64) error
}

// AdminMessageResponse is the success body of admin mutations.
// swagger:model AdminMessageResponse
type AdminMessageResponse struct {
	Success bool `json:"success"`
	// Human-readable success message
	// example: Student deleted successfully
	Message string `json:"message"`
}

// NewAdminDeleteStudentHandler returns an HTTP handler removing a student
// account. The store cascades the delete to the student's plants and diary
// entries.
// @Summary Delete a student account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student id"
// @Success 200 {object} handlers.AdminMessageResponse "Student deleted"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid operator token"
// @Failure 404 {object} handlers.AdminErrorResponse "No such student"
// @Router /admin/student/{id} [delete]
func NewAdminDeleteStudentHandler(svc StudentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Message: "Invalid student id",
			})
			return
		}

		if err := svc.DeleteStudent(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrStudentNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{
					Message: "Student not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{
					Message: "Failed to delete student",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AdminMessageResponse{
			Success: true,
			Message: "Student deleted successfully",
		})
	}
}
