package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"event-composer/internal/auth"
	"event-composer/internal/clock"
	"event-composer/internal/config"
	"event-composer/internal/models"
	"event-composer/internal/services"
)

func main() {
	draftPath := flag.String("draft", "", "path to an event draft JSON file")
	baseURL := flag.String("base-url", "", "events API base URL (overrides EVENTS_API_BASE_URL)")
	flag.Parse()

	if *draftPath == "" {
		fmt.Fprintln(os.Stderr, "usage: submit-event -draft <file> [-base-url <url>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *baseURL != "" {
		cfg.API.BaseURL = *baseURL
	}

	logger := newLogger(cfg.Log)

	draft, err := loadDraft(*draftPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to load draft")
	}
	if err := draft.Validate(); err != nil {
		logger.WithError(err).Fatal("draft is not valid")
	}
	for i := range draft.TicketTypes {
		if err := draft.TicketTypes[i].Validate(); err != nil {
			logger.WithError(err).WithField("ticket_type", draft.TicketTypes[i].Name).Fatal("ticket type is not valid")
		}
	}

	controller := services.NewSubmissionController(
		tokenProvider(cfg.Auth),
		services.NewEventsClient(services.EventsAPIConfig{
			BaseURL: cfg.API.BaseURL,
			Timeout: cfg.API.Timeout,
		}, logger),
		logger,
	)

	if err := controller.Submit(context.Background(), draft); err != nil {
		if reason, ok := controller.DisplayedError(); ok {
			logger.WithField("reason", reason).Error("event creation failed")
		} else {
			logger.WithError(err).Error("event creation failed")
		}
		os.Exit(1)
	}

	logger.WithField("event", draft.Name).Info("event created")
}

func newLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

func loadDraft(path string) (*models.EventDraft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	draft := models.NewEventDraft()
	if err := json.Unmarshal(data, draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft file: %w", err)
	}
	if draft.Status == "" {
		draft.Status = models.StatusDraft
	}
	return draft, nil
}

func tokenProvider(cfg config.AuthConfig) services.TokenProvider {
	var source auth.TokenSource = auth.StaticTokenProvider{Token: cfg.AccessToken}
	if cfg.TokenEnvKey != "" {
		source = auth.EnvTokenProvider{Key: cfg.TokenEnvKey}
	}
	if cfg.CheckExpiry {
		source = auth.ExpiryAwareProvider{Source: source, Clock: clock.NewSystem(), Leeway: cfg.Leeway}
	}
	return source
}
