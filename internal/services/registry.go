package services

import (
	"event-composer/internal/clock"
	"event-composer/internal/models"
)

// TicketTypeRegistry manages the add/edit/delete lifecycle of the ticket
// types on an event draft. It owns the edit surface: BeginAdd and BeginEdit
// open it with a working copy, Save commits the copy into the draft and
// closes it. Every committed change writes through to the draft's
// ticketTypes field immediately via UpdateField.
type TicketTypeRegistry struct {
	draft   *models.EventDraft
	clock   clock.Clock
	editing *models.TicketTypeDraft
	lastID  int64
}

// NewTicketTypeRegistry creates a registry bound to the given draft
func NewTicketTypeRegistry(draft *models.EventDraft, clk clock.Clock) *TicketTypeRegistry {
	return &TicketTypeRegistry{draft: draft, clock: clk}
}

// BeginAdd opens the edit surface with a fresh entry. The entry keeps
// identity 0 until it is saved.
func (r *TicketTypeRegistry) BeginAdd() *models.TicketTypeDraft {
	r.editing = &models.TicketTypeDraft{}
	return r.editing
}

// BeginEdit opens the edit surface with a copy of an existing entry, so
// edits do not touch the draft until saved.
func (r *TicketTypeRegistry) BeginEdit(existing models.TicketTypeDraft) *models.TicketTypeDraft {
	entry := existing
	r.editing = &entry
	return r.editing
}

// Editing returns the entry currently open in the edit surface, if any
func (r *TicketTypeRegistry) Editing() (*models.TicketTypeDraft, bool) {
	return r.editing, r.editing != nil
}

// Save commits an entry into the draft and closes the edit surface. A
// non-zero identity replaces the matching entry in place; if no entry
// matches, nothing changes (the stale edit is discarded). A zero identity
// gets a fresh session-local identity and is appended at the end.
func (r *TicketTypeRegistry) Save(entry models.TicketTypeDraft) {
	next := make([]models.TicketTypeDraft, len(r.draft.TicketTypes))
	copy(next, r.draft.TicketTypes)

	if entry.ID != 0 {
		for i := range next {
			if next[i].ID == entry.ID {
				next[i] = entry
				break
			}
		}
	} else {
		entry.ID = r.nextID()
		next = append(next, entry)
	}

	// The draft field is only ever replaced wholesale, never edited in place.
	_ = r.draft.UpdateField("ticketTypes", next)
	r.editing = nil
}

// Delete removes the entry with the given identity; absent identities are a
// no-op.
func (r *TicketTypeRegistry) Delete(id int64) {
	next := make([]models.TicketTypeDraft, 0, len(r.draft.TicketTypes))
	for _, entry := range r.draft.TicketTypes {
		if entry.ID != id {
			next = append(next, entry)
		}
	}
	_ = r.draft.UpdateField("ticketTypes", next)
}

// nextID derives a session-unique identity from the clock. Two saves within
// the same millisecond get strictly increasing values.
func (r *TicketTypeRegistry) nextID() int64 {
	id := r.clock.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}
