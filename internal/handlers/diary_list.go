package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/middlewares"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// DiaryLister defines the interface that the diary service must implement.
type DiaryLister interface {
	ListByDate(ctx context.Context, userID int64, date string) ([]models.DiaryEntryDB, error)
}

// DiaryEntriesResponse wraps the caller's entries for one date.
// swagger:model DiaryEntriesResponse
type DiaryEntriesResponse struct {
	// Success message
	// example: Diary entries retrieved successfully
	Message string                `json:"message"`
	Data    []models.DiaryEntryDB `json:"data"`
}

// NewListDiaryHandler returns an HTTP handler for fetching the caller's
// diary entries on one calendar date, oldest first. A day can hold several
// entries.
// @Summary Get diary entries for a date
// @Tags diary
// @Produce json
// @Security BearerAuth
// @Param date path string true "Calendar date, YYYY-MM-DD"
// @Success 200 {object} handlers.DiaryEntriesResponse "Entries for the date"
// @Failure 400 {object} handlers.ErrorResponse "Malformed date"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /diary/{date} [get]
func NewListDiaryHandler(svc DiaryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())

		date := chi.URLParam(r, "date")
		if _, err := time.Parse("2006-01-02", date); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Date must be in YYYY-MM-DD format",
			})
			return
		}

		entries, err := svc.ListByDate(r.Context(), claims.UserID, date)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Failed to fetch diary entry",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DiaryEntriesResponse{
			Message: "Diary entries retrieved successfully",
			Data:    entries,
		})
	}
}
