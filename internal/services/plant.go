package services

import (
	"context"
	"errors"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// ErrPlantNotFound is returned when a plant is absent or owned by another
// user. The two cases are deliberately not distinguished.
var ErrPlantNotFound = errors.New("plant not found")

// PlantReader defines read-only operations for plants.
type PlantReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.PlantDB, error)
}

// PlantWriter defines write operations for plants. Mutations return the
// number of rows matched by (id, user_id).
type PlantWriter interface {
	Save(ctx context.Context, p models.PlantDB) (int64, error)
	Update(ctx context.Context, p models.PlantDB) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

// PlantService handles the plant resource, scoped to the owning user.
type PlantService struct {
	reader      PlantReader
	writer      PlantWriter
	kafkaWriter KafkaWriter
}

// NewPlantService creates a new PlantService.
func NewPlantService(reader PlantReader, writer PlantWriter, kafkaWriter KafkaWriter) *PlantService {
	return &PlantService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all plants owned by the user, newest-created first.
func (svc *PlantService) List(ctx context.Context, userID int64) ([]models.PlantDB, error) {
	plants, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list plants", "user_id", userID, "err", err)
		return nil, err
	}
	return plants, nil
}

// Create registers a plant for the user. An empty image path falls back to
// the stock asset. Returns the new plant id.
func (svc *PlantService) Create(ctx context.Context, p models.PlantDB) (int64, error) {
	if p.ImagePath == "" {
		p.ImagePath = models.DefaultPlantImage
	}

	id, err := svc.writer.Save(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to save plant", "user_id", p.UserID, "err", err)
		return 0, err
	}

	publishActivity(ctx, svc.kafkaWriter, p.UserID, models.ActivityPlantCreated, id)

	return id, nil
}

// Update replaces all mutable fields of the plant. The ownership filter is
// part of the UPDATE itself, so absent and not-owned both surface as
// ErrPlantNotFound.
func (svc *PlantService) Update(ctx context.Context, p models.PlantDB) error {
	rows, err := svc.writer.Update(ctx, p)
	if err != nil {
		logger.Log.Errorw("failed to update plant", "plant_id", p.ID, "user_id", p.UserID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrPlantNotFound
	}
	return nil
}

// Delete removes the plant if it is owned by the user.
func (svc *PlantService) Delete(ctx context.Context, id, userID int64) error {
	rows, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete plant", "plant_id", id, "user_id", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrPlantNotFound
	}
	return nil
}
