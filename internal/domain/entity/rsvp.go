package entity

import "time"

// RSVPStatus is the state of an attendance request.
type RSVPStatus string

const (
	RSVPJoined   RSVPStatus = "joined"
	RSVPRejected RSVPStatus = "rejected"
	RSVPPending  RSVPStatus = "pending"
)

func (s RSVPStatus) Valid() bool {
	switch s {
	case RSVPJoined, RSVPRejected, RSVPPending:
		return true
	}

	return false
}

// InitialRSVPStatus is the status a fresh RSVP gets for the event.
func InitialRSVPStatus(event *Event) RSVPStatus {
	if event != nil && event.IsAutoAccept {
		return RSVPJoined
	}

	return RSVPPending
}

// RSVP joins an attendee account to an event.
type RSVP struct {
	ID               int64      `json:"id"`
	EventID          int64      `json:"event_id"`
	Attendee         int64      `json:"attendee"` // Account id.
	Status           RSVPStatus `json:"status"`
	CreatedDate      time.Time  `json:"created_date"`
	LastModifiedDate time.Time  `json:"last_modified_date"`
}
