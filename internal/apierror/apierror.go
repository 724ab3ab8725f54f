// Package apierror provides the JSON error envelopes used by every 4xx/5xx
// response. All client-visible errors go through this package so that store
// internals (SQLSTATEs, driver messages, stack traces) never leak.
package apierror

// APIError is the canonical error envelope: {"error": "..."}.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError carries per-field detail for rejected input:
// {"error": "Invalid data", "details": {"field": "reason"}}.
type ValidationError struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

func NewValidation(details map[string]string) *ValidationError {
	return &ValidationError{Error: "Invalid data", Details: details}
}
