package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/middlewares"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// DiarySaver defines the interface that the diary service must implement.
type DiarySaver interface {
	Save(ctx context.Context, e models.DiaryEntryDB) (bool, error)
}

// SaveDiaryRequest represents the upsert body. A present id updates that
// entry; an absent id always creates a new one.
// swagger:model SaveDiaryRequest
type SaveDiaryRequest struct {
	// Entry id to update; omit to create
	// example: 12
	ID int64 `json:"id"`

	// Calendar date of the entry
	// required: true
	// example: 2024-05-01
	EntryDate string `json:"entry_date"`

	// Optional time of day, HH:MM:SS
	// example: 08:30:00
	EntryTime *string `json:"entry_time"`

	Watering    bool `json:"watering"`
	Misting     bool `json:"misting"`
	Fertilizing bool `json:"fertilizing"`
	Rotating    bool `json:"rotating"`

	// Free-text notes
	// example: first true leaves
	Notes string `json:"notes"`

	// Optional photo path
	ImagePath *string `json:"image_path"`
}

// NewSaveDiaryHandler returns an HTTP handler upserting a diary entry for
// the caller. Updates are filtered by (id, owner); an id owned by someone
// else matches zero rows and still reports success, mirroring the long-lived
// behavior clients depend on.
// @Summary Create or update a diary entry
// @Tags diary
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param saveDiaryRequest body handlers.SaveDiaryRequest true "Diary entry"
// @Success 200 {object} handlers.MessageResponse "Entry updated"
// @Success 201 {object} handlers.MessageResponse "Entry created"
// @Failure 400 {object} handlers.ErrorResponse "Missing or malformed entry_date"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /diary [post]
func NewSaveDiaryHandler(svc DiarySaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())

		var req SaveDiaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.EntryDate == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "entry_date is required",
			})
			return
		}
		if _, err := time.Parse("2006-01-02", req.EntryDate); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "entry_date must be in YYYY-MM-DD format",
			})
			return
		}
		if req.EntryTime != nil {
			if _, err := time.Parse("15:04:05", *req.EntryTime); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "entry_time must be in HH:MM:SS format",
				})
				return
			}
		}

		created, err := svc.Save(r.Context(), models.DiaryEntryDB{
			ID:          req.ID,
			UserID:      claims.UserID,
			EntryDate:   req.EntryDate,
			EntryTime:   req.EntryTime,
			Watering:    req.Watering,
			Misting:     req.Misting,
			Fertilizing: req.Fertilizing,
			Rotating:    req.Rotating,
			Notes:       req.Notes,
			ImagePath:   req.ImagePath,
		})
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Failed to save diary entry",
			})
			return
		}

		if created {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(MessageResponse{
				Message: "Diary entry created successfully",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(MessageResponse{
			Message: "Diary entry updated successfully",
		})
	}
}
