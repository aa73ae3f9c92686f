package services

import (
	"fmt"
	"time"

	"event-composer/internal/models"
)

// BuildCreateEventRequest converts a draft into the wire-format creation
// request. Ticket types are mapped without their session-local identities.
// Each gated date pair contributes a timestamp only when its enable flag is
// set and both the date and the time half are present; otherwise the field
// is omitted from the payload entirely. Beyond that the builder copies
// fields verbatim; required-field validation belongs to the input surface
// and the server, not here.
func BuildCreateEventRequest(draft *models.EventDraft) (*models.CreateEventRequest, error) {
	ticketTypes := make([]models.CreateTicketTypeRequest, 0, len(draft.TicketTypes))
	for _, tt := range draft.TicketTypes {
		ticketTypes = append(ticketTypes, models.CreateTicketTypeRequest{
			Name:           tt.Name,
			Price:          tt.Price,
			Description:    tt.Description,
			TotalAvailable: tt.TotalAvailable,
		})
	}

	req := &models.CreateEventRequest{
		Name:        draft.Name,
		Venue:       draft.VenueDetails,
		Status:      draft.Status,
		TicketTypes: ticketTypes,
	}

	if draft.EventDateEnabled {
		var err error
		if req.Start, err = composeEndpoint("start", draft.StartDate, draft.StartTime); err != nil {
			return nil, err
		}
		if req.End, err = composeEndpoint("end", draft.EndDate, draft.EndTime); err != nil {
			return nil, err
		}
	}
	if draft.SalesDateEnabled {
		var err error
		if req.SalesStart, err = composeEndpoint("sales start", draft.SalesStartDate, draft.SalesStartTime); err != nil {
			return nil, err
		}
		if req.SalesEnd, err = composeEndpoint("sales end", draft.SalesEndDate, draft.SalesEndTime); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// composeEndpoint combines one date+time endpoint, or returns nil when
// either half is missing.
func composeEndpoint(label string, date *time.Time, timeOfDay string) (*time.Time, error) {
	if date == nil || timeOfDay == "" {
		return nil, nil
	}
	combined, err := models.CombineDateTime(*date, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	return &combined, nil
}
