package services

import (
	"context"
	"sync"

	"event-composer/internal/models"
)

// MockTokenProvider returns a canned token for tests
type MockTokenProvider struct {
	Token string
}

// AccessToken implements the TokenProvider interface
func (p *MockTokenProvider) AccessToken() (string, bool) {
	return p.Token, p.Token != ""
}

// MockSubmitter records submitted requests and returns a canned error. When
// Block is set, CreateEvent waits until Release is called, which lets tests
// probe submit-in-flight behavior.
type MockSubmitter struct {
	Err   error
	Block bool

	mu       sync.Mutex
	release  chan struct{}
	Requests []*models.CreateEventRequest
	Tokens   []string
}

// CreateEvent implements the EventSubmitter interface
func (s *MockSubmitter) CreateEvent(ctx context.Context, token string, req *models.CreateEventRequest) error {
	s.mu.Lock()
	s.Requests = append(s.Requests, req)
	s.Tokens = append(s.Tokens, token)
	if s.Block && s.release == nil {
		s.release = make(chan struct{})
	}
	release := s.release
	s.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.Err
}

// Release unblocks a blocked CreateEvent call
func (s *MockSubmitter) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.release != nil {
		close(s.release)
		s.release = nil
	}
}

// Submitted returns the number of requests received so far
func (s *MockSubmitter) Submitted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Requests)
}
