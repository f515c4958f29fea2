package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/middlewares"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// PlantCreator defines the interface that the plant service must implement.
type PlantCreator interface {
	Create(ctx context.Context, p models.PlantDB) (int64, error)
}

// PlantRequest represents the JSON body for creating or updating a plant.
// swagger:model PlantRequest
type PlantRequest struct {
	// Plant name
	// required: true
	// example: Cherry tomato
	Name string `json:"name"`

	// Photo path; a stock asset is used when empty
	// example: assets/plantlist/tomato.webp
	ImagePath string `json:"image_path"`

	// Sun exposure description
	// example: full sun
	SunExposure string `json:"sun_exposure"`

	// Water per watering, ml
	// example: 250
	WaterAmount int `json:"water_amount"`

	// Preferred soil pH
	// example: 6.5
	SoilPH float64 `json:"soil_ph"`

	// Days until harvest
	// example: 80
	HarvestDays int `json:"harvest_days"`

	// Expected height, cm
	// example: 120
	Height float64 `json:"height"`
}

// PlantCreatedResponse represents a successful plant creation response
// swagger:model PlantCreatedResponse
type PlantCreatedResponse struct {
	// Success message
	// example: Plant added successfully
	Message string `json:"message"`
	PlantID int64  `json:"plantId"`
}

// validatePlantRequest checks the required name and the numeric ranges.
// Client input is not trusted; the ranges bound what the schema stores.
func validatePlantRequest(req PlantRequest) (string, bool) {
	switch {
	case req.Name == "":
		return "Plant name is required", false
	case req.SoilPH < 0 || req.SoilPH > 14:
		return "soil_ph must be between 0 and 14", false
	case req.WaterAmount < 0 || req.WaterAmount > 100000:
		return "water_amount must be between 0 and 100000 ml", false
	case req.HarvestDays < 0 || req.HarvestDays > 3650:
		return "harvest_days must be between 0 and 3650", false
	case req.Height < 0 || req.Height > 10000:
		return "height must be between 0 and 10000 cm", false
	}
	return "", true
}

// NewCreatePlantHandler returns an HTTP handler registering a plant for the
// caller.
// @Summary Register a plant
// @Tags plants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plantRequest body handlers.PlantRequest true "Plant parameters"
// @Success 201 {object} handlers.PlantCreatedResponse "Plant registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing name or out-of-range values"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Router /plants [post]
func NewCreatePlantHandler(svc PlantCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())

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

		id, err := svc.Create(r.Context(), models.PlantDB{
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
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Failed to add plant",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PlantCreatedResponse{
			Message: "Plant added successfully",
			PlantID: id,
		})
	}
}
