package domain

import "errors"

var (
	// ErrNotFound indicates the entity does not exist in its store.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidTransition indicates an illegal order lifecycle move.
	ErrInvalidTransition = errors.New("invalid order state transition")

	// ErrVersionConflict indicates an optimistic concurrency clash.
	ErrVersionConflict = errors.New("version conflict")
)

// ValidationResult carries the outcome of a validation pass.
// Validation failures are returned, never raised past the validator.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Fail appends an error message and marks the result invalid.
func (v *ValidationResult) Fail(msg string) {
	v.Valid = false
	v.Errors = append(v.Errors, msg)
}

// OK returns a passing validation result.
func OK() ValidationResult {
	return ValidationResult{Valid: true}
}
