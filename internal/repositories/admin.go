package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// AdminReadRepository serves the reporting queries. These deliberately read
// across all users; the trust boundary is enforced by the operator-token
// middleware in front of the admin routes, not here.
type AdminReadRepository struct {
	db *sqlx.DB
}

func NewAdminReadRepository(db *sqlx.DB) *AdminReadRepository {
	return &AdminReadRepository{db: db}
}

// CountUsers returns the total number of registered students.
func (r *AdminReadRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountPlants returns the total number of registered plants.
func (r *AdminReadRepository) CountPlants(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM plants`)
}

// CountEntriesOn returns the number of diary entries dated exactly the given
// calendar date (YYYY-MM-DD).
func (r *AdminReadRepository) CountEntriesOn(ctx context.Context, date string) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM diary_entries WHERE entry_date = $1`, date)
}

func (r *AdminReadRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, query, args...)

	logger.Log.Debugw("query executed",
		"query", query,
		"args", args,
		"result", n,
		"error", err,
	)

	return n, err
}

// ListUsers returns the full roster, most recently registered first.
func (r *AdminReadRepository) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT id, name, year, class, email, password, created_at
		FROM users
		ORDER BY created_at DESC
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListPlantsByUser returns one student's plants, newest first.
func (r *AdminReadRepository) ListPlantsByUser(ctx context.Context, userID int64) ([]models.PlantDB, error) {
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

// ListEntriesByUser returns one student's diary entries, most recent
// entry date first.
func (r *AdminReadRepository) ListEntriesByUser(ctx context.Context, userID int64) ([]models.DiaryEntryDB, error) {
	query := `
		SELECT ` + diaryColumns + `
		FROM diary_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC
	`

	entries := []models.DiaryEntryDB{}
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
