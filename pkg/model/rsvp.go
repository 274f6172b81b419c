package model

import "time"

type RSVPStatus string

const (
	RSVPAttending    RSVPStatus = "attending"
	RSVPInterested   RSVPStatus = "interested"
	RSVPNotAttending RSVPStatus = "not_attending"
)

// RSVP domain object recording a user's attendance intent for an event. At
// most one row exists per (user, event) pair; "not attending" is kept as a
// status write so the ledger preserves history.
// swagger:model
type RSVP struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	UserID    uint       `gorm:"uniqueIndex:idx_rsvps_user_event;not null" json:"userId"`
	User      *User      `json:"user,omitempty"`
	EventID   uint       `gorm:"uniqueIndex:idx_rsvps_user_event;not null" json:"eventId"`
	Event     *Event     `json:"event,omitempty"`
	Status    RSVPStatus `gorm:"not null" json:"status"`
}

// Live reports whether the RSVP still expresses intent to engage with the
// event. A not_attending row does not block a fresh RSVP.
func (r *RSVP) Live() bool {
	return r.Status == RSVPAttending || r.Status == RSVPInterested
}
