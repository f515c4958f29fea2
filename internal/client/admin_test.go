package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hafizfauzi02/fowra-backend/internal/models"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer operator_token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}

	mux.HandleFunc("/api/admin/stats", authed(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    services.OverviewStats{TotalStudents: 23, TotalPlants: 41, EntriesToday: 5},
		})
	}))
	mux.HandleFunc("/api/admin/students", authed(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []models.UserDB{{ID: 1, Name: "Ana"}, {ID: 2, Name: "Bruno"}},
		})
	}))
	mux.HandleFunc("/api/admin/student/4/plants", authed(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []models.PlantDB{{ID: 9, UserID: 4, Name: "Mint"}},
		})
	}))
	mux.HandleFunc("/api/admin/student/4/diary", authed(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []models.DiaryEntryDB{{ID: 3, UserID: 4, EntryDate: "2024-05-02"}},
		})
	}))
	mux.HandleFunc("/api/admin/student/4", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "Student deleted successfully"})
	}))
	mux.HandleFunc("/api/admin/student/999", authed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Student not found"})
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestAdminClient(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	c := New(srv.URL+"/api/", "operator_token") // trailing slash is tolerated

	t.Run("get stats", func(t *testing.T) {
		stats, err := c.GetStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, &services.OverviewStats{TotalStudents: 23, TotalPlants: 41, EntriesToday: 5}, stats)
	})

	t.Run("get students", func(t *testing.T) {
		students, err := c.GetStudents(ctx)
		assert.NoError(t, err)
		assert.Len(t, students, 2)
		assert.Equal(t, "Ana", students[0].Name)
	})

	t.Run("get student plants", func(t *testing.T) {
		plants, err := c.GetStudentPlants(ctx, 4)
		assert.NoError(t, err)
		assert.Len(t, plants, 1)
		assert.Equal(t, "Mint", plants[0].Name)
	})

	t.Run("get student diary", func(t *testing.T) {
		entries, err := c.GetStudentDiary(ctx, 4)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, "2024-05-02", entries[0].EntryDate)
	})

	t.Run("delete student", func(t *testing.T) {
		assert.NoError(t, c.DeleteStudent(ctx, 4))
	})

	t.Run("delete unknown student surfaces the status", func(t *testing.T) {
		err := c.DeleteStudent(ctx, 999)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("wrong token surfaces the status", func(t *testing.T) {
		bad := New(srv.URL+"/api", "wrong_token")
		_, err := bad.GetStats(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}
