package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"event-composer/internal/models"
)

// UnknownErrorMessage is shown when the backend fails without a recognized
// error body.
const UnknownErrorMessage = "An unknown error occurred"

const defaultRequestTimeout = 30 * time.Second

// EventsAPIConfig represents events API client configuration
type EventsAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// EventsClient submits event-creation requests to the ticketing backend
type EventsClient struct {
	config EventsAPIConfig
	client *http.Client
	logger *logrus.Logger
}

// NewEventsClient creates a new events API client
func NewEventsClient(config EventsAPIConfig, logger *logrus.Logger) *EventsClient {
	if config.Timeout == 0 {
		config.Timeout = defaultRequestTimeout
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &EventsClient{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// APIError represents a failure response from the events API. Recognized
// reports whether the backend sent a structured error body; when it did not,
// Message holds the generic unknown-error text and the raw body has been
// logged instead.
type APIError struct {
	StatusCode int
	Message    string
	Recognized bool
}

func (e *APIError) Error() string {
	return e.Message
}

// CreateEvent posts a creation request with the given bearer token. A 2xx
// response is success and its body is ignored. Each attempt carries a fresh
// X-Request-ID so client and server logs can be correlated.
func (c *EventsClient) CreateEvent(ctx context.Context, token string, req *models.CreateEventRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal create event request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/v1/events", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create event request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	c.logger.WithFields(logrus.Fields{
		"event":      req.Name,
		"request_id": requestID,
	}).Debug("submitting event creation request")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send event creation request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read event creation response: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		c.logger.WithFields(logrus.Fields{
			"event":       req.Name,
			"request_id":  requestID,
			"status_code": resp.StatusCode,
		}).Info("event creation accepted")
		return nil
	}

	return c.handleAPIError(resp.StatusCode, requestID, respBody)
}

// handleAPIError maps a non-2xx response onto an APIError. A body matching
// the {"error": string} contract surfaces its message verbatim; anything
// else gets the generic message and the raw body goes to the log.
func (c *EventsClient) handleAPIError(statusCode int, requestID string, body []byte) error {
	if message, ok := models.DecodeErrorResponse(body); ok {
		return &APIError{StatusCode: statusCode, Message: message, Recognized: true}
	}

	c.logger.WithFields(logrus.Fields{
		"request_id":  requestID,
		"status_code": statusCode,
		"body":        string(body),
	}).Error("events API returned an unrecognized error body")

	return &APIError{StatusCode: statusCode, Message: UnknownErrorMessage}
}
