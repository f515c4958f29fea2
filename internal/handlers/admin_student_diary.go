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

// StudentDiaryLister defines the interface that the admin service must
// implement.
type StudentDiaryLister interface {
	StudentDiary(ctx context.Context, userID int64) ([]models.DiaryEntryDB, error)
}

// StudentDiaryResponse wraps one student's diary entries.
// swagger:model StudentDiaryResponse
type StudentDiaryResponse struct {
	Success bool                  `json:"success"`
	Data    []models.DiaryEntryDB `json:"data"`
}

// NewAdminStudentDiaryHandler returns an HTTP handler listing one student's
// diary entries, most recent entry date first.
// @Summary Diary of one student
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student id"
// @Success 200 {object} handlers.StudentDiaryResponse "Student's diary entries"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid operator token"
// @Router /admin/student/{id}/diary [get]
func NewAdminStudentDiaryHandler(svc StudentDiaryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Message: "Invalid student id",
			})
			return
		}

		entries, err := svc.StudentDiary(r.Context(), id)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{
				Message: "Failed to fetch diary entries for student",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StudentDiaryResponse{
			Success: true,
			Data:    entries,
		})
	}
}
