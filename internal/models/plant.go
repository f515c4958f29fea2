package models

import "time"

// DefaultPlantImage is used when a plant is registered without a photo.
const DefaultPlantImage = "assets/plantlist/tomato.webp"

// PlantDB represents a registered plant and its care parameters.
// Every plant is exclusively owned by one user; there is no sharing.
type PlantDB struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	ImagePath   string    `json:"image_path" db:"image_path"`
	SunExposure string    `json:"sun_exposure" db:"sun_exposure"`
	WaterAmount int       `json:"water_amount" db:"water_amount"` // ml per watering
	SoilPH      float64   `json:"soil_ph" db:"soil_ph"`
	HarvestDays int       `json:"harvest_days" db:"harvest_days"`
	Height      float64   `json:"height" db:"height"` // cm
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
