package services

import (
	"context"
	"errors"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// ErrEntryNotFound is returned when a diary entry is absent or owned by
// another user.
var ErrEntryNotFound = errors.New("diary entry not found")

// DiaryReader defines read-only operations for diary entries.
type DiaryReader interface {
	ListByUserAndDate(ctx context.Context, userID int64, date string) ([]models.DiaryEntryDB, error)
}

// DiaryWriter defines write operations for diary entries.
type DiaryWriter interface {
	Insert(ctx context.Context, e models.DiaryEntryDB) (int64, error)
	Update(ctx context.Context, e models.DiaryEntryDB) (int64, error)
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

// DiaryService handles the diary resource, scoped to the owning user.
type DiaryService struct {
	reader      DiaryReader
	writer      DiaryWriter
	kafkaWriter KafkaWriter
}

// NewDiaryService creates a new DiaryService.
func NewDiaryService(reader DiaryReader, writer DiaryWriter, kafkaWriter KafkaWriter) *DiaryService {
	return &DiaryService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// ListByDate returns the user's entries for one calendar date, oldest first.
func (svc *DiaryService) ListByDate(ctx context.Context, userID int64, date string) ([]models.DiaryEntryDB, error) {
	entries, err := svc.reader.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		logger.Log.Errorw("failed to list diary entries", "user_id", userID, "date", date, "err", err)
		return nil, err
	}
	return entries, nil
}

// Save upserts a diary entry. With a non-zero id the entry's mutable fields
// are updated, filtered by (id, user_id); an id that matches nothing updates
// zero rows and still reports success — known gap, kept until the product
// rule for per-day entries is settled. Without an id a new entry is always
// inserted, even when entry_date matches an existing one.
// Returns true when a new entry was created.
func (svc *DiaryService) Save(ctx context.Context, e models.DiaryEntryDB) (bool, error) {
	if e.ID != 0 {
		if _, err := svc.writer.Update(ctx, e); err != nil {
			logger.Log.Errorw("failed to update diary entry", "entry_id", e.ID, "user_id", e.UserID, "err", err)
			return false, err
		}
		publishActivity(ctx, svc.kafkaWriter, e.UserID, models.ActivityDiarySaved, e.ID)
		return false, nil
	}

	id, err := svc.writer.Insert(ctx, e)
	if err != nil {
		logger.Log.Errorw("failed to insert diary entry", "user_id", e.UserID, "err", err)
		return false, err
	}

	publishActivity(ctx, svc.kafkaWriter, e.UserID, models.ActivityDiarySaved, id)

	return true, nil
}

// Delete removes the entry if it is owned by the user.
func (svc *DiaryService) Delete(ctx context.Context, id, userID int64) error {
	rows, err := svc.writer.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete diary entry", "entry_id", id, "user_id", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}
	return nil
}
