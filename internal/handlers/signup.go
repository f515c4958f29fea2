package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
	"github.com/Hafizfauzi02/fowra-backend/internal/models"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

// Signuper defines the interface that the auth service must implement.
type Signuper interface {
	Signup(ctx context.Context, name string, year int, class, email, password string) (*models.UserDB, string, error)
}

// SignupRequest represents the JSON body for student registration.
// The mobile app sends the class label as "className".
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// required: true
	// example: Ana
	Name string `json:"name"`

	// School year
	// example: 10
	Year int `json:"year"`

	// Class label
	// example: A
	Class string `json:"className"`

	// Email, unique per student
	// required: true
	// example: ana@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// UserProfile is the public view of a user, password excluded.
// swagger:model UserProfile
type UserProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Year  int    `json:"year"`
	Class string `json:"class"`
}

// SignupResponse represents a successful registration response
// swagger:model SignupResponse
type SignupResponse struct {
	// Success message
	// example: User created successfully
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
	Token   string      `json:"token"`
}

// NewSignupHandler returns an HTTP handler for student registration.
// @Summary Register a new student
// @Description Creates a student account, stores a salted password hash and returns the profile with a fresh identity token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.SignupResponse "Student registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields or email already registered"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Invalid request body",
			})
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Message: "Name, email and password are required",
			})
			return
		}

		user, token, err := svc.Signup(r.Context(), req.Name, req.Year, req.Class, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "User with this email already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Message: "Server error during signup",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			Message: "User created successfully",
			User: UserProfile{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Year:  user.Year,
				Class: user.Class,
			},
			Token: token,
		})
	}
}
