package services

import (
	"context"
	"errors"
	"time"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// ErrStudentNotFound is returned when a roster operation targets an unknown
// user id.
var ErrStudentNotFound = errors.New("student not found")

// OverviewStats is the aggregate counters block of the dashboard.
type OverviewStats struct {
	TotalStudents int64 `json:"totalStudents"`
	TotalPlants   int64 `json:"totalPlants"`
	EntriesToday  int64 `json:"entriesToday"`
}

// AdminReader defines the unscoped reporting queries.
type AdminReader interface {
	CountUsers(ctx context.Context) (int64, error)
	CountPlants(ctx context.Context) (int64, error)
	CountEntriesOn(ctx context.Context, date string) (int64, error)
	ListUsers(ctx context.Context) ([]models.UserDB, error)
	ListPlantsByUser(ctx context.Context, userID int64) ([]models.PlantDB, error)
	ListEntriesByUser(ctx context.Context, userID int64) ([]models.DiaryEntryDB, error)
}

// UserRemover deletes a user row; the store cascades to plants and entries.
type UserRemover interface {
	Delete(ctx context.Context, id int64) (int64, error)
}

// AdminService serves the teacher dashboard. It reads across all users by
// design; access control happens in the operator-token middleware.
type AdminService struct {
	reader  AdminReader
	remover UserRemover
}

// NewAdminService creates a new AdminService.
func NewAdminService(reader AdminReader, remover UserRemover) *AdminService {
	return &AdminService{
		reader:  reader,
		remover: remover,
	}
}

// Stats returns the aggregate counters. "Today" is the server-local
// calendar date.
func (svc *AdminService) Stats(ctx context.Context) (*OverviewStats, error) {
	users, err := svc.reader.CountUsers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "err", err)
		return nil, err
	}

	plants, err := svc.reader.CountPlants(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count plants", "err", err)
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	entries, err := svc.reader.CountEntriesOn(ctx, today)
	if err != nil {
		logger.Log.Errorw("failed to count today's entries", "date", today, "err", err)
		return nil, err
	}

	return &OverviewStats{
		TotalStudents: users,
		TotalPlants:   plants,
		EntriesToday:  entries,
	}, nil
}

// Students returns the full roster, most recently registered first.
func (svc *AdminService) Students(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.ListUsers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list students", "err", err)
		return nil, err
	}
	return users, nil
}

// StudentPlants returns one student's plants, newest first.
func (svc *AdminService) StudentPlants(ctx context.Context, userID int64) ([]models.PlantDB, error) {
	plants, err := svc.reader.ListPlantsByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list student plants", "user_id", userID, "err", err)
		return nil, err
	}
	return plants, nil
}

// StudentDiary returns one student's diary entries, most recent date first.
func (svc *AdminService) StudentDiary(ctx context.Context, userID int64) ([]models.DiaryEntryDB, error) {
	entries, err := svc.reader.ListEntriesByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list student diary", "user_id", userID, "err", err)
		return nil, err
	}
	return entries, nil
}

// DeleteStudent removes a user; the store's cascade rules remove the
// student's plants and diary entries with it.
func (svc *AdminService) DeleteStudent(ctx context.Context, userID int64) error {
	rows, err := svc.remover.Delete(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete student", "user_id", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrStudentNotFound
	}
	return nil
}
