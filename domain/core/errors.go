package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound           = errors.New("resource not found")
	ErrExperimentNotFound = fmt.Errorf("%w: experiment", ErrNotFound)
	ErrReportNotFound     = fmt.Errorf("%w: report", ErrNotFound)
	ErrStimulusNotFound   = fmt.Errorf("%w: stimulus", ErrNotFound)

	// Validation errors
	ErrInvalidCondition  = errors.New("unknown experimental condition")
	ErrInvalidEmbedding  = errors.New("invalid embedding vector")
	ErrInsufficientData  = errors.New("insufficient data for analysis")
	ErrTooFewGroups      = errors.New("fewer than two groups for comparison")
	ErrUnknownProvider   = errors.New("unknown model provider")
	ErrMissingCredential = errors.New("missing provider credential")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewProviderError(provider string, err error) error {
	return fmt.Errorf("provider %s: %w", provider, err)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrTooFewGroups) ||
		errors.Is(err, ErrInvalidEmbedding)
}
