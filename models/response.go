package models

// MessageResponse is the plain confirmation body used by the public and
// admin mutation endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse distinguishes the failure class from its human-readable
// message on every error path.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error classes surfaced to clients.
const (
	ErrTypeValidation   = "validation_error"
	ErrTypeUnauthorized = "unauthorized"
	ErrTypeForbidden    = "forbidden"
	ErrTypeNotFound     = "not_found"
	ErrTypeStorage      = "storage_failure"
)
