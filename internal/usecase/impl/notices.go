package impl

import (
	"fmt"

	"opencircle/internal/domain/entity"
)

const (
	postPreviewLength = 100
	eventDateLayout   = "January 2, 2006"
)

func membershipAcceptedNotice(recipientID int64, org *entity.Organization) *entity.Notification {
	return &entity.Notification{
		RecipientID: recipientID,
		Type:        entity.NotificationMembershipAccepted,
		Title:       "Membership Approved!",
		Message:     fmt.Sprintf("Congratulations! Your membership to %s has been approved.", org.Name),
		Related:     &entity.EntityRef{Type: entity.RelatedOrganization, ID: org.ID},
	}
}

func rsvpAcceptedNotice(recipientID int64, event *entity.Event) *entity.Notification {
	return &entity.Notification{
		RecipientID: recipientID,
		Type:        entity.NotificationRSVPAccepted,
		Title:       "RSVP Accepted!",
		Message:     fmt.Sprintf("Your RSVP to '%s' has been accepted. See you there!", event.Title),
		Related:     &entity.EntityRef{Type: entity.RelatedEvent, ID: event.ID},
	}
}

func newPostNotices(recipientIDs []int64, org *entity.Organization, post *entity.Post) []*entity.Notification {
	description := ""
	if post.Description != nil {
		description = *post.Description
	}

	title := "New Post from " + org.Name
	message := "Check out the latest update: " + preview(description, postPreviewLength)

	notices := make([]*entity.Notification, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		notices = append(notices, &entity.Notification{
			RecipientID: id,
			Type:        entity.NotificationNewPost,
			Title:       title,
			Message:     message,
			Related:     &entity.EntityRef{Type: entity.RelatedPost, ID: post.ID},
		})
	}

	return notices
}

func newEventNotices(recipientIDs []int64, org *entity.Organization, event *entity.Event) []*entity.Notification {
	title := "New Event: " + event.Title
	message := fmt.Sprintf("%s has created a new event '%s' on %s. Don't miss out!",
		org.Name, event.Title, event.EventDate.Format(eventDateLayout))

	notices := make([]*entity.Notification, 0, len(recipientIDs))
	for _, id := range recipientIDs {
		notices = append(notices, &entity.Notification{
			RecipientID: id,
			Type:        entity.NotificationEventUpdate,
			Title:       title,
			Message:     message,
			Related:     &entity.EntityRef{Type: entity.RelatedEvent, ID: event.ID},
		})
	}

	return notices
}

// membershipRequestNotice goes to the organization's owner account. The
// related entity is the requesting user's account.
func membershipRequestNotice(ownerAccountID int64, requester *entity.User) *entity.Notification {
	return &entity.Notification{
		RecipientID: ownerAccountID,
		Type:        entity.NotificationNewMembershipRequest,
		Title:       "New Membership Request",
		Message:     fmt.Sprintf("You have received a new membership request from %s.", requester.FullName()),
		Related:     &entity.EntityRef{Type: entity.RelatedUser, ID: requester.AccountID},
	}
}

func rsvpRequestNotice(ownerAccountID int64, requesterName string, event *entity.Event) *entity.Notification {
	return &entity.Notification{
		RecipientID: ownerAccountID,
		Type:        entity.NotificationNewRSVPRequest,
		Title:       "New RSVP Request",
		Message:     fmt.Sprintf("%s has requested to RSVP for your event '%s'.", requesterName, event.Title),
		Related:     &entity.EntityRef{Type: entity.RelatedEvent, ID: event.ID},
	}
}

// preview cuts s to n runes, marking the cut with an ellipsis.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "..."
}
