package handlers

// ErrorResponse is the error body shared by the student-facing endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	// example: Plant not found or not authorized to update
	Message string `json:"message"`
}

// MessageResponse is the plain success body used by mutations.
// swagger:model MessageResponse
type MessageResponse struct {
	// Human-readable success message
	// example: Plant deleted successfully
	Message string `json:"message"`
}

// AdminErrorResponse is the error body of the admin endpoints.
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	Success bool `json:"success"`
	// Human-readable error message
	// example: Failed to fetch stats
	Message string `json:"message"`
}
