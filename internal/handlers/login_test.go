package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Hafizfauzi02/fowra-backend/internal/models"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		reqBody         LoginRequest
		mockSetup       func(m *MockLoginer)
		expectedCode    int
		expectedMessage string
		rawBody         bool
	}{
		{
			name:    "success",
			reqBody: LoginRequest{Email: "ana@example.com", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ana@example.com", "secret123").
					Return(&models.UserDB{ID: 7, Name: "Ana", Year: 10, Class: "A", Email: "ana@example.com"}, "tok123", nil)
			},
			expectedCode:    200,
			expectedMessage: "Login successful",
		},
		{
			name:    "invalid credentials",
			reqBody: LoginRequest{Email: "ana@example.com", Password: "wrong"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ana@example.com", "wrong").
					Return(nil, "", services.ErrInvalidCredentials)
			},
			expectedCode:    401,
			expectedMessage: "Invalid email or password",
		},
		{
			name:    "internal server error",
			reqBody: LoginRequest{Email: "ana@example.com", Password: "secret123"},
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ana@example.com", "secret123").
					Return(nil, "", errors.New("database failure"))
			},
			expectedCode:    500,
			expectedMessage: "Server error during login",
		},
		{
			name:            "invalid json",
			rawBody:         true,
			expectedCode:    400,
			expectedMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(tt.reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBuffer(bodyBytes))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, resp["message"])
		})
	}
}
