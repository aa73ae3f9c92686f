package models

import (
	"encoding/json"
	"time"
)

// CreateTicketTypeRequest is the wire shape of one ticket type offer. The
// session-local identity of the draft entry is deliberately absent.
type CreateTicketTypeRequest struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Description    string  `json:"description"`
	TotalAvailable *int    `json:"totalAvailable,omitempty"`
}

// CreateEventRequest is the JSON payload for POST /api/v1/events. The four
// timestamps are omitted entirely (not null) when the corresponding draft
// pair was disabled or incomplete.
type CreateEventRequest struct {
	Name        string                    `json:"name"`
	Start       *time.Time                `json:"start,omitempty"`
	End         *time.Time                `json:"end,omitempty"`
	Venue       string                    `json:"venue"`
	SalesStart  *time.Time                `json:"salesStart,omitempty"`
	SalesEnd    *time.Time                `json:"salesEnd,omitempty"`
	Status      EventStatus               `json:"status"`
	TicketTypes []CreateTicketTypeRequest `json:"ticketTypes"`
}

// ErrorResponse is the structured failure body the events API returns
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeErrorResponse reports whether body structurally matches the
// ErrorResponse contract: a JSON object whose "error" key holds a string.
// Anything else (missing key, non-string value, non-object body) is not a
// recognized error response.
func DecodeErrorResponse(body []byte) (string, bool) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", false
	}
	value, ok := raw["error"]
	if !ok {
		return "", false
	}
	var message string
	if err := json.Unmarshal(value, &message); err != nil {
		return "", false
	}
	return message, true
}
