package services

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"event-composer/internal/models"
)

// SubmissionState represents where a submission attempt currently stands
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSucceeded  SubmissionState = "succeeded"
	StateFailed     SubmissionState = "failed"
)

// SubmissionController orchestrates building and submitting a draft and owns
// the displayed-error state. Each attempt starts by clearing the previous
// error; a failure holds its reason until the next attempt begins. One
// attempt runs at a time: a second Submit while one is in flight returns
// ErrSubmitInFlight without touching the backend.
type SubmissionController struct {
	tokens    TokenProvider
	submitter EventSubmitter
	logger    *logrus.Logger

	mu      sync.Mutex
	state   SubmissionState
	lastErr string
}

// NewSubmissionController creates a controller over the given collaborators
func NewSubmissionController(tokens TokenProvider, submitter EventSubmitter, logger *logrus.Logger) *SubmissionController {
	if logger == nil {
		logger = logrus.New()
	}
	return &SubmissionController{
		tokens:    tokens,
		submitter: submitter,
		logger:    logger,
		state:     StateIdle,
	}
}

// Submit builds the creation request from the draft and sends it. When no
// bearer token is available the attempt aborts before any network call and
// returns ErrNotAuthenticated; the cleared error state is the only visible
// change. All other failures end in the failed state with a single
// string-valued reason.
func (c *SubmissionController) Submit(ctx context.Context, draft *models.EventDraft) error {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return models.ErrSubmitInFlight
	}
	c.state = StateSubmitting
	c.lastErr = ""
	c.mu.Unlock()

	token, ok := c.tokens.AccessToken()
	if !ok {
		c.logger.Warn("submission aborted: no access token available")
		c.setState(StateIdle, "")
		return models.ErrNotAuthenticated
	}

	req, err := BuildCreateEventRequest(draft)
	if err != nil {
		c.setState(StateFailed, err.Error())
		return err
	}

	if err := c.submitter.CreateEvent(ctx, token, req); err != nil {
		c.setState(StateFailed, failureReason(err))
		return err
	}

	c.setState(StateSucceeded, "")
	return nil
}

// failureReason extracts the user-facing reason from a submission error. API
// errors already carry a display message; anything else is a transport or
// local fault whose message is shown best-effort.
func failureReason(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if err.Error() != "" {
		return err.Error()
	}
	return UnknownErrorMessage
}

func (c *SubmissionController) setState(state SubmissionState, reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.lastErr = reason
}

// State returns the current submission state
func (c *SubmissionController) State() SubmissionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// DisplayedError returns the failure reason currently held for display
func (c *SubmissionController) DisplayedError() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr, c.lastErr != ""
}
