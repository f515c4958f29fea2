package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

// Driver-level failures are hard to provoke against a real store; sqlmock
// covers those paths.

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepositoryGetByEmailError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, name, year, class, email, password, created_at").
		WithArgs("ana@example.com").
		WillReturnError(errors.New("connection reset"))

	user, err := NewUserReadRepository(db).GetByEmail(context.Background(), "ana@example.com")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepositorySaveError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := NewUserWriteRepository(db).Save(context.Background(), "Ana", 10, "A", "ana@example.com", "hash")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlantWriteRepositoryUpdateRowsAffected(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("UPDATE plants SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := NewPlantWriteRepository(db).Update(context.Background(), models.PlantDB{ID: 3, UserID: 7, Name: "Tomato"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiaryWriteRepositoryDeleteError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM diary_entries").
		WithArgs(int64(12), int64(7)).
		WillReturnError(errors.New("connection reset"))

	rows, err := NewDiaryWriteRepository(db).Delete(context.Background(), 12, 7)
	assert.Error(t, err)
	assert.Equal(t, int64(0), rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminReadRepositoryCountError(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnError(errors.New("connection reset"))

	_, err := NewAdminReadRepository(db).CountUsers(context.Background())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
