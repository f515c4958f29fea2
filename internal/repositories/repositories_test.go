package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		year INT NOT NULL DEFAULT 0,
		class VARCHAR(50) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS plants (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		image_path VARCHAR(255) NOT NULL DEFAULT 'assets/plantlist/tomato.webp',
		sun_exposure VARCHAR(100) NOT NULL DEFAULT '',
		water_amount INT NOT NULL DEFAULT 0,
		soil_ph DOUBLE PRECISION NOT NULL DEFAULT 7.0,
		harvest_days INT NOT NULL DEFAULT 0,
		height DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS diary_entries (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		entry_date DATE NOT NULL,
		entry_time TIME DEFAULT NULL,
		watering BOOLEAN NOT NULL DEFAULT FALSE,
		misting BOOLEAN NOT NULL DEFAULT FALSE,
		fertilizing BOOLEAN NOT NULL DEFAULT FALSE,
		rotating BOOLEAN NOT NULL DEFAULT FALSE,
		notes TEXT NOT NULL DEFAULT '',
		image_path VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func mustCreateUser(t *testing.T, db *sqlx.DB, email string) int64 {
	t.Helper()
	id, err := NewUserWriteRepository(db).Save(context.Background(), "Ana", 10, "A", email, "hash")
	assert.NoError(t, err)
	assert.NotZero(t, id)
	return id
}

func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db)

	t.Run("save and get by email", func(t *testing.T) {
		id := mustCreateUser(t, db, "ana@example.com")

		user, err := readRepo.GetByEmail(ctx, "ana@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, 10, user.Year)
		assert.Equal(t, "A", user.Class)
		assert.Equal(t, "hash", user.Password)
	})

	t.Run("unknown email returns nil without error", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		mustCreateUser(t, db, "dup@example.com")
		_, err := writeRepo.Save(ctx, "Ana", 10, "A", "dup@example.com", "hash")
		assert.Error(t, err)
	})

	t.Run("delete reports affected rows", func(t *testing.T) {
		id := mustCreateUser(t, db, "gone@example.com")

		rows, err := writeRepo.Delete(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		rows, err = writeRepo.Delete(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("delete cascades to plants and diary entries", func(t *testing.T) {
		id := mustCreateUser(t, db, "cascade@example.com")

		plantRepo := NewPlantWriteRepository(db)
		_, err := plantRepo.Save(ctx, models.PlantDB{UserID: id, Name: "Tomato", ImagePath: "x"})
		assert.NoError(t, err)

		diaryRepo := NewDiaryWriteRepository(db)
		_, err = diaryRepo.Insert(ctx, models.DiaryEntryDB{UserID: id, EntryDate: "2024-05-01"})
		assert.NoError(t, err)

		rows, err := writeRepo.Delete(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		var plantCount, entryCount int64
		assert.NoError(t, db.Get(&plantCount, "SELECT COUNT(*) FROM plants WHERE user_id = $1", id))
		assert.NoError(t, db.Get(&entryCount, "SELECT COUNT(*) FROM diary_entries WHERE user_id = $1", id))
		assert.Zero(t, plantCount)
		assert.Zero(t, entryCount)
	})
}

func TestPlantRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewPlantReadRepository(db)
	writeRepo := NewPlantWriteRepository(db)

	owner := mustCreateUser(t, db, "owner@example.com")
	other := mustCreateUser(t, db, "other@example.com")

	plantID, err := writeRepo.Save(ctx, models.PlantDB{
		UserID:      owner,
		Name:        "Cherry tomato",
		ImagePath:   "assets/plantlist/tomato.webp",
		SunExposure: "full sun",
		WaterAmount: 250,
		SoilPH:      6.5,
		HarvestDays: 80,
		Height:      120,
	})
	assert.NoError(t, err)
	assert.NotZero(t, plantID)

	t.Run("list is scoped to the owner", func(t *testing.T) {
		plants, err := readRepo.ListByUser(ctx, owner)
		assert.NoError(t, err)
		assert.Len(t, plants, 1)
		assert.Equal(t, "Cherry tomato", plants[0].Name)
		assert.Equal(t, 6.5, plants[0].SoilPH)

		plants, err = readRepo.ListByUser(ctx, other)
		assert.NoError(t, err)
		assert.Empty(t, plants)
	})

	t.Run("update matches only the owner", func(t *testing.T) {
		rows, err := writeRepo.Update(ctx, models.PlantDB{
			ID: plantID, UserID: owner, Name: "Roma tomato", ImagePath: "x",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		rows, err = writeRepo.Update(ctx, models.PlantDB{
			ID: plantID, UserID: other, Name: "Hijacked", ImagePath: "x",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		plants, err := readRepo.ListByUser(ctx, owner)
		assert.NoError(t, err)
		assert.Equal(t, "Roma tomato", plants[0].Name)
	})

	t.Run("delete matches only the owner", func(t *testing.T) {
		rows, err := writeRepo.Delete(ctx, plantID, other)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		rows, err = writeRepo.Delete(ctx, plantID, owner)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})
}

func TestDiaryRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	readRepo := NewDiaryReadRepository(db)
	writeRepo := NewDiaryWriteRepository(db)

	owner := mustCreateUser(t, db, "diary@example.com")
	other := mustCreateUser(t, db, "stranger@example.com")

	entryTime := "08:30:00"

	firstID, err := writeRepo.Insert(ctx, models.DiaryEntryDB{
		UserID:    owner,
		EntryDate: "2024-05-01",
		EntryTime: &entryTime,
		Watering:  true,
		Notes:     "first true leaves",
	})
	assert.NoError(t, err)

	// Same date, second entry. Multiple entries per day are allowed.
	secondID, err := writeRepo.Insert(ctx, models.DiaryEntryDB{
		UserID:    owner,
		EntryDate: "2024-05-01",
		Misting:   true,
	})
	assert.NoError(t, err)
	assert.NotEqual(t, firstID, secondID)

	t.Run("list by date returns wire formats oldest first", func(t *testing.T) {
		entries, err := readRepo.ListByUserAndDate(ctx, owner, "2024-05-01")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, firstID, entries[0].ID)
		assert.Equal(t, "2024-05-01", entries[0].EntryDate)
		assert.NotNil(t, entries[0].EntryTime)
		assert.Equal(t, "08:30:00", *entries[0].EntryTime)
		assert.Nil(t, entries[1].EntryTime)
	})

	t.Run("other dates and other users see nothing", func(t *testing.T) {
		entries, err := readRepo.ListByUserAndDate(ctx, owner, "2024-05-02")
		assert.NoError(t, err)
		assert.Empty(t, entries)

		entries, err = readRepo.ListByUserAndDate(ctx, other, "2024-05-01")
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("update matches only the owner", func(t *testing.T) {
		rows, err := writeRepo.Update(ctx, models.DiaryEntryDB{
			ID: firstID, UserID: owner, Notes: "updated", Fertilizing: true,
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		rows, err = writeRepo.Update(ctx, models.DiaryEntryDB{
			ID: firstID, UserID: other, Notes: "hijacked",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		entries, err := readRepo.ListByUserAndDate(ctx, owner, "2024-05-01")
		assert.NoError(t, err)
		assert.Equal(t, "updated", entries[0].Notes)
		assert.True(t, entries[0].Fertilizing)
	})

	t.Run("delete matches only the owner", func(t *testing.T) {
		rows, err := writeRepo.Delete(ctx, secondID, other)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)

		rows, err = writeRepo.Delete(ctx, secondID, owner)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})
}

func TestAdminReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewAdminReadRepository(db)

	first := mustCreateUser(t, db, "first@example.com")
	second := mustCreateUser(t, db, "second@example.com")

	plantRepo := NewPlantWriteRepository(db)
	_, err := plantRepo.Save(ctx, models.PlantDB{UserID: first, Name: "Tomato", ImagePath: "x"})
	assert.NoError(t, err)
	_, err = plantRepo.Save(ctx, models.PlantDB{UserID: second, Name: "Mint", ImagePath: "x"})
	assert.NoError(t, err)

	diaryRepo := NewDiaryWriteRepository(db)
	today := time.Now().Format("2006-01-02")
	_, err = diaryRepo.Insert(ctx, models.DiaryEntryDB{UserID: first, EntryDate: today})
	assert.NoError(t, err)
	_, err = diaryRepo.Insert(ctx, models.DiaryEntryDB{UserID: first, EntryDate: "2020-01-01"})
	assert.NoError(t, err)

	t.Run("counts", func(t *testing.T) {
		users, err := repo.CountUsers(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), users)

		plants, err := repo.CountPlants(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), plants)

		entries, err := repo.CountEntriesOn(ctx, today)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), entries)
	})

	t.Run("list users", func(t *testing.T) {
		users, err := repo.ListUsers(ctx)
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("list plants by user", func(t *testing.T) {
		plants, err := repo.ListPlantsByUser(ctx, first)
		assert.NoError(t, err)
		assert.Len(t, plants, 1)
		assert.Equal(t, "Tomato", plants[0].Name)
	})

	t.Run("list entries by user newest date first", func(t *testing.T) {
		entries, err := repo.ListEntriesByUser(ctx, first)
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		assert.Equal(t, today, entries[0].EntryDate)
		assert.Equal(t, "2020-01-01", entries[1].EntryDate)
	})
}
