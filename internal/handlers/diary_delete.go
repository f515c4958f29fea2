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

// DiaryDeleter defines the interface that the diary service must implement.
type DiaryDeleter interface {
	Delete(ctx context.Context, id, userID int64) error
}

// NewDeleteDiaryHandler returns an HTTP handler removing one of the caller's
// diary entries.
// @Summary Delete a diary entry
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Param id path int true "Entry id"
// @Success 200 {object} handlers.MessageResponse "Entry deleted"
// @Failure 400 {object} handlers.ErrorResponse "Bad id"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found or not owned"
// @Router /diary/{id} [delete]
func NewDeleteDiaryHandler(svc DiaryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Invalid diary entry id",
			})
			return
		}

		if err := svc.Delete(r.Context(), id, claims.UserID); err != nil {
			switch {
			case errors.Is(err, services.ErrEntryNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Diary entry not found or already deleted",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Failed to delete diary entry",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Diary entry deleted successfully",
		})
	}
}
