package models

import (
	"errors"
	"strings"
)

// TicketTypeDraft represents a ticket type being authored for a new event.
// The identity is local to the editing session: 0 means the entry has not
// been saved into the draft yet, a non-zero value is assigned on first save
// and used to match later edits and deletes. It is never sent to the server.
type TicketTypeDraft struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	TotalAvailable *int    `json:"totalAvailable,omitempty"`
	Description    string  `json:"description"`
}

// IsNew returns true if the entry has not been saved into the draft yet
func (tt *TicketTypeDraft) IsNew() bool {
	return tt.ID == 0
}

// Validate validates the ticket type data
func (tt *TicketTypeDraft) Validate() error {
	if err := validateTicketTypeName(tt.Name); err != nil {
		return err
	}
	if err := validateTicketTypePrice(tt.Price); err != nil {
		return err
	}
	return validateTicketTypeTotalAvailable(tt.TotalAvailable)
}

// validateTicketTypeName validates a ticket type name
func validateTicketTypeName(name string) error {
	if name == "" {
		return errors.New("ticket type name is required")
	}
	if strings.TrimSpace(name) == "" {
		return errors.New("ticket type name cannot be only whitespace")
	}
	return nil
}

// validateTicketTypePrice validates a ticket type price
func validateTicketTypePrice(price float64) error {
	if price < 0 {
		return errors.New("ticket price cannot be negative")
	}
	return nil
}

// validateTicketTypeTotalAvailable validates the optional inventory cap.
// Absence means unlimited.
func validateTicketTypeTotalAvailable(totalAvailable *int) error {
	if totalAvailable != nil && *totalAvailable < 0 {
		return errors.New("total available cannot be negative")
	}
	return nil
}

// IsUnlimited returns true if the ticket type has no inventory cap
func (tt *TicketTypeDraft) IsUnlimited() bool {
	return tt.TotalAvailable == nil
}
