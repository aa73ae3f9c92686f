package services

import (
	"context"

	"event-composer/internal/models"
)

// TokenProvider supplies the current bearer token for the events API, or
// reports that none is available. Implementations wrap whatever session or
// OIDC machinery holds the token; the composing core never sees that
// machinery directly.
type TokenProvider interface {
	AccessToken() (string, bool)
}

// EventSubmitter sends a built event-creation request to the backend
type EventSubmitter interface {
	CreateEvent(ctx context.Context, token string, req *models.CreateEventRequest) error
}
