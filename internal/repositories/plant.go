package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// PlantReadRepository reads plant rows.
type PlantReadRepository struct {
	db *sqlx.DB
}

func NewPlantReadRepository(db *sqlx.DB) *PlantReadRepository {
	return &PlantReadRepository{db: db}
}

// ListByUser returns all plants owned by the given user, newest first.
func (r *PlantReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.PlantDB, error) {
	const query = `
		SELECT id, user_id, name, image_path, sun_exposure, water_amount,
		       soil_ph, harvest_days, height, created_at
		FROM plants
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	plants := []models.PlantDB{}
	err := r.db.SelectContext(ctx, &plants, query, userID)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(plants),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return plants, nil
}

// PlantWriteRepository mutates plant rows. All mutations are scoped to the
// owning user in a single conditional statement so no separate ownership
// check is needed.
type PlantWriteRepository struct {
	db *sqlx.DB
}

func NewPlantWriteRepository(db *sqlx.DB) *PlantWriteRepository {
	return &PlantWriteRepository{db: db}
}

// Save inserts a plant and returns its generated id.
func (r *PlantWriteRepository) Save(ctx context.Context, p models.PlantDB) (int64, error) {
	const query = `
		INSERT INTO plants
			(user_id, name, image_path, sun_exposure, water_amount,
			 soil_ph, harvest_days, height, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id
	`
	args := []any{p.UserID, p.Name, p.ImagePath, p.SunExposure, p.WaterAmount,
		p.SoilPH, p.HarvestDays, p.Height}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", id,
		"error", err,
	)

	return id, err
}

// Update overwrites all mutable fields of the plant identified by
// (id, user_id) and returns the number of matched rows.
func (r *PlantWriteRepository) Update(ctx context.Context, p models.PlantDB) (int64, error) {
	const query = `
		UPDATE plants SET
			name = $1, image_path = $2, sun_exposure = $3, water_amount = $4,
			soil_ph = $5, harvest_days = $6, height = $7
		WHERE id = $8 AND user_id = $9
	`
	args := []any{p.Name, p.ImagePath, p.SunExposure, p.WaterAmount,
		p.SoilPH, p.HarvestDays, p.Height, p.ID, p.UserID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes the plant identified by (id, user_id) and returns the
// number of deleted rows.
func (r *PlantWriteRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	const query = `DELETE FROM plants WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query executed",
		"query", query,
		"args", []any{id, userID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
