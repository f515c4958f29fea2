package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hafizfauzi02/fowra-backend/internal/models"
)

func TestAuthServiceSignup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		tokener := NewMockTokenGenerator(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "ana@example.com").
			Return(nil, nil)
		writer.EXPECT().
			Save(ctx, "Ana", 10, "A", "ana@example.com", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int, _, _, passwordHash string) (int64, error) {
				// What gets stored must be a bcrypt hash of the raw password.
				err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret123"))
				assert.NoError(t, err)
				return int64(7), nil
			})
		tokener.EXPECT().
			Generate(ctx, int64(7), "ana@example.com", "Ana").
			Return("tok123", nil)

		svc := NewAuthService(reader, writer, tokener)

		user, token, err := svc.Signup(ctx, "Ana", 10, "A", "ana@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "tok123", token)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "Ana", user.Name)
		assert.Equal(t, 10, user.Year)
		assert.Equal(t, "A", user.Class)
		assert.Equal(t, "ana@example.com", user.Email)
	})

	t.Run("email already exists", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		tokener := NewMockTokenGenerator(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "ana@example.com").
			Return(&models.UserDB{ID: 7, Email: "ana@example.com"}, nil)

		svc := NewAuthService(reader, writer, tokener)

		user, token, err := svc.Signup(ctx, "Ana", 10, "A", "ana@example.com", "secret123")
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("reader failure", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		tokener := NewMockTokenGenerator(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "ana@example.com").
			Return(nil, errors.New("database failure"))

		svc := NewAuthService(reader, writer, tokener)

		user, token, err := svc.Signup(ctx, "Ana", 10, "A", "ana@example.com", "secret123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
		assert.Nil(t, user)
		assert.Empty(t, token)
	})

	t.Run("writer failure", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)
		tokener := NewMockTokenGenerator(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "ana@example.com").
			Return(nil, nil)
		writer.EXPECT().
			Save(ctx, "Ana", 10, "A", "ana@example.com", gomock.Any()).
			Return(int64(0), errors.New("database failure"))

		svc := NewAuthService(reader, writer, tokener)

		_, _, err := svc.Signup(ctx, "Ana", 10, "A", "ana@example.com", "secret123")
		assert.Error(t, err)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &models.UserDB{
		ID:       7,
		Name:     "Ana",
		Year:     10,
		Class:    "A",
		Email:    "ana@example.com",
		Password: string(hash),
	}

	t.Run("success", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		tokener := NewMockTokenGenerator(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "ana@example.com").
			Return(stored, nil)
		tokener.EXPECT().
			Generate(ctx, int64(7), "ana@example.com", "Ana").
			Return("tok123", nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), tokener)

		user, token, err := svc.Login(ctx, "ana@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "tok123", token)
		assert.Equal(t, int64(7), user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "nobody@example.com").
			Return(nil, nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockTokenGenerator(ctrl))

		_, _, err := svc.Login(ctx, "nobody@example.com", "secret123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "ana@example.com").
			Return(stored, nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockTokenGenerator(ctrl))

		// Wrong password and unknown email must be indistinguishable.
		_, _, err := svc.Login(ctx, "ana@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("reader failure", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByEmail(ctx, "ana@example.com").
			Return(nil, errors.New("database failure"))

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockTokenGenerator(ctrl))

		_, _, err := svc.Login(ctx, "ana@example.com", "secret123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}
