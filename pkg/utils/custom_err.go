package utils

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidDateRange      = errors.New("end date must not be before start date")
	ErrTripNotFound          = errors.New("trip not found")
	ErrDatabaseError         = errors.New("database error")
	ErrPlanLimitExceeded     = errors.New("subscription plan limit exceeded")
	ErrMissingAPIKey         = errors.New("LLM API key not configured")
	ErrAIProviderUnavailable = errors.New("AI provider request failed")
)
