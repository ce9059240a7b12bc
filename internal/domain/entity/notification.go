package entity

import "time"

// NotificationType names what happened.
type NotificationType string

const (
	NotificationMembershipAccepted   NotificationType = "organization_membership_accepted"
	NotificationRSVPAccepted         NotificationType = "rsvp_accepted"
	NotificationNewPost              NotificationType = "new_post"
	NotificationEventUpdate          NotificationType = "event_update"
	NotificationNewMembershipRequest NotificationType = "new_membership_request"
	NotificationNewRSVPRequest       NotificationType = "new_rsvp_request"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationMembershipAccepted, NotificationRSVPAccepted, NotificationNewPost,
		NotificationEventUpdate, NotificationNewMembershipRequest, NotificationNewRSVPRequest:
		return true
	}

	return false
}

// RelatedEntityType names the table a notification's related entity lives in.
type RelatedEntityType string

const (
	RelatedOrganization RelatedEntityType = "organization"
	RelatedEvent        RelatedEntityType = "event"
	RelatedPost         RelatedEntityType = "post"
	RelatedRSVP         RelatedEntityType = "rsvp"
	RelatedUser         RelatedEntityType = "user"
)

func (t RelatedEntityType) Valid() bool {
	switch t {
	case RelatedOrganization, RelatedEvent, RelatedPost, RelatedRSVP, RelatedUser:
		return true
	}

	return false
}

// EntityRef is the optional (related_entity_id, related_entity_type) pair. It is not enforced by the store.
type EntityRef struct {
	Type RelatedEntityType `json:"related_entity_type"`
	ID   int64             `json:"related_entity_id"`
}

// Notification is addressed to one recipient account.
type Notification struct {
	ID          int64            `json:"id"`
	RecipientID int64            `json:"recipient_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	IsRead      bool             `json:"is_read"`
	Related     *EntityRef       `json:"related,omitempty"`
	CreatedDate time.Time        `json:"created_date"`
	ReadDate    *time.Time       `json:"read_date,omitempty"`
}
