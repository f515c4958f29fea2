// Package client provides a typed HTTP client for the teacher dashboard
// endpoints. It only fetches and decodes; all reporting logic lives on the
// server.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Hafizfauzi02/fowra-backend/internal/models"
	"github.com/Hafizfauzi02/fowra-backend/internal/services"
)

// AdminClient calls the /api/admin endpoints with an operator token.
type AdminClient struct {
	baseURL    string
	adminToken string
	httpClient *http.Client
}

// New creates an AdminClient for the given API base URL
// (e.g. http://localhost:8080/api).
func New(baseURL, adminToken string) *AdminClient {
	return &AdminClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		adminToken: adminToken,
		httpClient: &http.Client{},
	}
}

type statsEnvelope struct {
	Success bool                   `json:"success"`
	Data    services.OverviewStats `json:"data"`
}

type studentsEnvelope struct {
	Success bool            `json:"success"`
	Data    []models.UserDB `json:"data"`
}

type plantsEnvelope struct {
	Success bool             `json:"success"`
	Data    []models.PlantDB `json:"data"`
}

type diaryEnvelope struct {
	Success bool                  `json:"success"`
	Data    []models.DiaryEntryDB `json:"data"`
}

// GetStats fetches the dashboard overview counters.
func (c *AdminClient) GetStats(ctx context.Context) (*services.OverviewStats, error) {
	var env statsEnvelope
	if err := c.get(ctx, "/admin/stats", &env); err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// GetStudents fetches the full roster.
func (c *AdminClient) GetStudents(ctx context.Context) ([]models.UserDB, error) {
	var env studentsEnvelope
	if err := c.get(ctx, "/admin/students", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetStudentPlants fetches one student's plants.
func (c *AdminClient) GetStudentPlants(ctx context.Context, studentID int64) ([]models.PlantDB, error) {
	var env plantsEnvelope
	if err := c.get(ctx, fmt.Sprintf("/admin/student/%d/plants", studentID), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// GetStudentDiary fetches one student's diary entries.
func (c *AdminClient) GetStudentDiary(ctx context.Context, studentID int64) ([]models.DiaryEntryDB, error) {
	var env diaryEnvelope
	if err := c.get(ctx, fmt.Sprintf("/admin/student/%d/diary", studentID), &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// DeleteStudent removes a student account; the server cascades the delete.
func (c *AdminClient) DeleteStudent(ctx context.Context, studentID int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+fmt.Sprintf("/admin/student/%d", studentID), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("delete student: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func (c *AdminClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.adminToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
