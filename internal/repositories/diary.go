package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// diaryColumns casts DATE and TIME columns to text so rows scan into the
// wire representation directly (YYYY-MM-DD, HH:MM:SS).
const diaryColumns = `
	id, user_id, entry_date::TEXT AS entry_date, entry_time::TEXT AS entry_time,
	watering, misting, fertilizing, rotating, notes, image_path,
	created_at, updated_at
`

// DiaryReadRepository reads diary entries.
type DiaryReadRepository struct {
	db *sqlx.DB
}

func NewDiaryReadRepository(db *sqlx.DB) *DiaryReadRepository {
	return &DiaryReadRepository{db: db}
}

// ListByUserAndDate returns all of the user's entries for one calendar date,
// oldest first. Several entries per day are allowed.
func (r *DiaryReadRepository) ListByUserAndDate(ctx context.Context, userID int64, date string) ([]models.DiaryEntryDB, error) {
	query := `
		SELECT ` + diaryColumns + `
		FROM diary_entries
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY created_at ASC
	`

	entries := []models.DiaryEntryDB{}
	err := r.db.SelectContext(ctx, &entries, query, userID, date)

	logger.Log.Debugw("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, date},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DiaryWriteRepository mutates diary entries.
type DiaryWriteRepository struct {
	db *sqlx.DB
}

func NewDiaryWriteRepository(db *sqlx.DB) *DiaryWriteRepository {
	return &DiaryWriteRepository{db: db}
}

// Insert creates a new entry for the user and returns its generated id.
func (r *DiaryWriteRepository) Insert(ctx context.Context, e models.DiaryEntryDB) (int64, error) {
	const query = `
		INSERT INTO diary_entries
			(user_id, entry_date, entry_time, watering, misting, fertilizing,
			 rotating, notes, image_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	args := []any{e.UserID, e.EntryDate, e.EntryTime, e.Watering, e.Misting,
		e.Fertilizing, e.Rotating, e.Notes, e.ImagePath}

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

// Update overwrites the mutable fields of the entry identified by
// (id, user_id) and touches updated_at. Returns the number of matched rows;
// a mismatch updates zero rows without error.
func (r *DiaryWriteRepository) Update(ctx context.Context, e models.DiaryEntryDB) (int64, error) {
	const query = `
		UPDATE diary_entries SET
			entry_time = $1, watering = $2, misting = $3, fertilizing = $4,
			rotating = $5, notes = $6, image_path = $7, updated_at = NOW()
		WHERE id = $8 AND user_id = $9
	`
	args := []any{e.EntryTime, e.Watering, e.Misting, e.Fertilizing,
		e.Rotating, e.Notes, e.ImagePath, e.ID, e.UserID}

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

// Delete removes the entry identified by (id, user_id) and returns the
// number of deleted rows.
func (r *DiaryWriteRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	const query = `DELETE FROM diary_entries WHERE id = $1 AND user_id = $2`

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
