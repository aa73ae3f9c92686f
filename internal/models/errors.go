package models

import "errors"

// Common errors used throughout the application
var (
	ErrUnknownField      = errors.New("unknown draft field")
	ErrInvalidFieldValue = errors.New("invalid value for draft field")
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrSubmitInFlight    = errors.New("a submission is already in progress")
)
