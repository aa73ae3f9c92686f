package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"event-composer/internal/models"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestBuildCreateEventRequest_MapsFieldsVerbatim(t *testing.T) {
	capacity := 100
	draft := &models.EventDraft{
		Name:         "Summer Gig",
		VenueDetails: "Main Hall",
		Status:       models.StatusPublished,
		TicketTypes: []models.TicketTypeDraft{
			{ID: 1756600000000, Name: "GA", Price: 20, Description: "Standing", TotalAvailable: &capacity},
			{ID: 1756600000001, Name: "VIP", Price: 99.5, Description: ""},
		},
	}

	req, err := BuildCreateEventRequest(draft)
	require.NoError(t, err)

	assert.Equal(t, "Summer Gig", req.Name)
	assert.Equal(t, "Main Hall", req.Venue)
	assert.Equal(t, models.StatusPublished, req.Status)
	require.Len(t, req.TicketTypes, 2)
	assert.Equal(t, "GA", req.TicketTypes[0].Name)
	assert.Equal(t, &capacity, req.TicketTypes[0].TotalAvailable)
	assert.Nil(t, req.TicketTypes[1].TotalAvailable)
}

func TestBuildCreateEventRequest_ComposesEnabledPairs(t *testing.T) {
	draft := &models.EventDraft{
		Name:             "Summer Gig",
		Status:           models.StatusDraft,
		EventDateEnabled: true,
		SalesDateEnabled: true,
		StartDate:        datePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime:        "18:30",
		EndDate:          datePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		EndTime:          "23:00",
		SalesStartDate:   datePtr(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)),
		SalesStartTime:   "09:00",
		SalesEndDate:     datePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		SalesEndTime:     "17:00",
	}

	req, err := BuildCreateEventRequest(draft)
	require.NoError(t, err)

	require.NotNil(t, req.Start)
	assert.Equal(t, time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC), *req.Start)
	require.NotNil(t, req.End)
	assert.Equal(t, time.Date(2026, 9, 1, 23, 0, 0, 0, time.UTC), *req.End)
	require.NotNil(t, req.SalesStart)
	assert.Equal(t, time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC), *req.SalesStart)
	require.NotNil(t, req.SalesEnd)
	assert.Equal(t, time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC), *req.SalesEnd)
}

func TestBuildCreateEventRequest_DisabledFlagsOmitStaleValues(t *testing.T) {
	// Stale date/time values must not leak into the payload when the gating
	// flag is off, and the two flags act independently.
	stale := datePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	draft := &models.EventDraft{
		Name:             "Summer Gig",
		Status:           models.StatusDraft,
		EventDateEnabled: false,
		SalesDateEnabled: true,
		StartDate:        stale,
		StartTime:        "18:30",
		EndDate:          stale,
		EndTime:          "23:00",
		SalesStartDate:   stale,
		SalesStartTime:   "09:00",
	}

	req, err := BuildCreateEventRequest(draft)
	require.NoError(t, err)

	assert.Nil(t, req.Start)
	assert.Nil(t, req.End)
	assert.NotNil(t, req.SalesStart)
	assert.Nil(t, req.SalesEnd, "incomplete sales end pair is omitted")
}

func TestBuildCreateEventRequest_IncompletePairIsOmitted(t *testing.T) {
	tests := []struct {
		name  string
		draft models.EventDraft
	}{
		{
			name: "date without time",
			draft: models.EventDraft{
				Name:             "Gig",
				Status:           models.StatusDraft,
				EventDateEnabled: true,
				StartDate:        datePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			name: "time without date",
			draft: models.EventDraft{
				Name:             "Gig",
				Status:           models.StatusDraft,
				EventDateEnabled: true,
				StartTime:        "18:30",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildCreateEventRequest(&tt.draft)
			require.NoError(t, err)
			assert.Nil(t, req.Start)
		})
	}
}

func TestBuildCreateEventRequest_MalformedTimeFails(t *testing.T) {
	draft := &models.EventDraft{
		Name:             "Gig",
		Status:           models.StatusDraft,
		EventDateEnabled: true,
		StartDate:        datePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime:        "ab:cd",
	}

	_, err := BuildCreateEventRequest(draft)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidTimeOfDay)
}

func TestBuildCreateEventRequest_WirePayloadShape(t *testing.T) {
	// Draft {name:"Gig", venue:"Hall", status:DRAFT, dates disabled, one
	// unsaved GA entry}: the payload has no timestamp keys and no ticket id.
	draft := &models.EventDraft{
		Name:         "Gig",
		VenueDetails: "Hall",
		Status:       models.StatusDraft,
		TicketTypes:  []models.TicketTypeDraft{{ID: 0, Name: "GA", Price: 20, Description: ""}},
	}

	req, err := BuildCreateEventRequest(draft)
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &payload))

	for _, key := range []string{"start", "end", "salesStart", "salesEnd"} {
		assert.NotContains(t, payload, key)
	}
	assert.Contains(t, payload, "name")
	assert.Contains(t, payload, "venue")
	assert.Contains(t, payload, "status")

	var ticketTypes []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload["ticketTypes"], &ticketTypes))
	require.Len(t, ticketTypes, 1)
	assert.NotContains(t, ticketTypes[0], "id")
	assert.NotContains(t, ticketTypes[0], "totalAvailable")
}

func TestBuildCreateEventRequest_IsIdempotent(t *testing.T) {
	draft := &models.EventDraft{
		Name:             "Gig",
		VenueDetails:     "Hall",
		Status:           models.StatusDraft,
		EventDateEnabled: true,
		StartDate:        datePtr(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)),
		StartTime:        "18:30",
		TicketTypes:      []models.TicketTypeDraft{{ID: 1, Name: "GA", Price: 20}},
	}

	first, err := BuildCreateEventRequest(draft)
	require.NoError(t, err)
	second, err := BuildCreateEventRequest(draft)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}
