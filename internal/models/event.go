package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	StatusDraft     EventStatus = "DRAFT"
	StatusPublished EventStatus = "PUBLISHED"
	StatusCancelled EventStatus = "CANCELLED"
	StatusCompleted EventStatus = "COMPLETED"
)

// EventDraft is the in-progress, not-yet-submitted representation of a new
// event. Date and time halves of each endpoint are kept as separate fields
// the way the organizer enters them; they are only combined into instants
// when the creation request is built. The two enable flags gate whole pairs:
// one flag covers event start and end, a second covers sales start and end.
type EventDraft struct {
	Name             string            `json:"name"`
	VenueDetails     string            `json:"venueDetails"`
	Status           EventStatus       `json:"status"`
	StartDate        *time.Time        `json:"startDate,omitempty"`
	StartTime        string            `json:"startTime,omitempty"`
	EndDate          *time.Time        `json:"endDate,omitempty"`
	EndTime          string            `json:"endTime,omitempty"`
	SalesStartDate   *time.Time        `json:"salesStartDate,omitempty"`
	SalesStartTime   string            `json:"salesStartTime,omitempty"`
	SalesEndDate     *time.Time        `json:"salesEndDate,omitempty"`
	SalesEndTime     string            `json:"salesEndTime,omitempty"`
	EventDateEnabled bool              `json:"eventDateEnabled"`
	SalesDateEnabled bool              `json:"salesDateEnabled"`
	TicketTypes      []TicketTypeDraft `json:"ticketTypes"`
}

// NewEventDraft creates an empty draft with default values
func NewEventDraft() *EventDraft {
	return &EventDraft{
		Status:      StatusDraft,
		TicketTypes: []TicketTypeDraft{},
	}
}

// UpdateField applies a partial update to exactly one named field and leaves
// all others unchanged. This is the only mutation path for draft fields.
// Field names match the JSON tags. An unknown name returns ErrUnknownField;
// a value of the wrong type returns ErrInvalidFieldValue.
func (d *EventDraft) UpdateField(field string, value any) error {
	switch field {
	case "name":
		return setString(&d.Name, field, value)
	case "venueDetails":
		return setString(&d.VenueDetails, field, value)
	case "status":
		return d.setStatus(value)
	case "startDate":
		return setDate(&d.StartDate, field, value)
	case "startTime":
		return setString(&d.StartTime, field, value)
	case "endDate":
		return setDate(&d.EndDate, field, value)
	case "endTime":
		return setString(&d.EndTime, field, value)
	case "salesStartDate":
		return setDate(&d.SalesStartDate, field, value)
	case "salesStartTime":
		return setString(&d.SalesStartTime, field, value)
	case "salesEndDate":
		return setDate(&d.SalesEndDate, field, value)
	case "salesEndTime":
		return setString(&d.SalesEndTime, field, value)
	case "eventDateEnabled":
		return setBool(&d.EventDateEnabled, field, value)
	case "salesDateEnabled":
		return setBool(&d.SalesDateEnabled, field, value)
	case "ticketTypes":
		ticketTypes, ok := value.([]TicketTypeDraft)
		if !ok {
			return fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
		}
		d.TicketTypes = ticketTypes
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
}

func (d *EventDraft) setStatus(value any) error {
	var status EventStatus
	switch v := value.(type) {
	case EventStatus:
		status = v
	case string:
		status = EventStatus(v)
	default:
		return fmt.Errorf("%w: status", ErrInvalidFieldValue)
	}
	if err := validateEventStatus(status); err != nil {
		return err
	}
	d.Status = status
	return nil
}

func setString(dst *string, field string, value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
	}
	*dst = s
	return nil
}

func setBool(dst *bool, field string, value any) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
	}
	*dst = b
	return nil
}

func setDate(dst **time.Time, field string, value any) error {
	switch v := value.(type) {
	case nil:
		*dst = nil
	case time.Time:
		normalized := NormalizeCalendarDate(v)
		*dst = &normalized
	case *time.Time:
		if v == nil {
			*dst = nil
			return nil
		}
		normalized := NormalizeCalendarDate(*v)
		*dst = &normalized
	default:
		return fmt.Errorf("%w: %s", ErrInvalidFieldValue, field)
	}
	return nil
}

// Validate validates the draft before submission. It mirrors the checks the
// input surface enforces (required name, selectable status); deeper
// validation is the server's job.
func (d *EventDraft) Validate() error {
	if err := validateEventName(d.Name); err != nil {
		return err
	}
	return validateEventStatus(d.Status)
}

// validateEventName validates the public event name
func validateEventName(name string) error {
	if name == "" {
		return errors.New("event name is required")
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("event name cannot be only whitespace")
	}
	return nil
}

// validateEventStatus validates an event status
func validateEventStatus(status EventStatus) error {
	switch status {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return nil
	default:
		return errors.New("invalid event status")
	}
}

// IsDraft returns true if the event is a draft
func (d *EventDraft) IsDraft() bool {
	return d.Status == StatusDraft
}

// IsPublished returns true if the event is published
func (d *EventDraft) IsPublished() bool {
	return d.Status == StatusPublished
}
