package dtos

// SubmitResponse is returned by both submission endpoints.
type SubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
