package entity

import (
	"fmt"
	"time"
)

// ContentType discriminates what a share points at. The values are persisted.
type ContentType int

const (
	ContentTypePost  ContentType = 1
	ContentTypeEvent ContentType = 2
)

func (c ContentType) Valid() bool {
	return c == ContentTypePost || c == ContentTypeEvent
}

func (c ContentType) String() string {
	switch c {
	case ContentTypePost:
		return "post"
	case ContentTypeEvent:
		return "event"
	}

	return fmt.Sprintf("content_type(%d)", int(c))
}

// ContentRef points at a post or an event. The store keeps it as an
// unenforced (content_id, content_type) pair.
type ContentRef struct {
	Type ContentType `json:"content_type"`
	ID   int64       `json:"content_id"`
}

func PostRef(postID int64) ContentRef {
	return ContentRef{Type: ContentTypePost, ID: postID}
}

func EventRef(eventID int64) ContentRef {
	return ContentRef{Type: ContentTypeEvent, ID: eventID}
}

func (r ContentRef) Valid() bool {
	return r.Type.Valid() && r.ID > 0
}

// Share records an account re-posting some content.
type Share struct {
	ID          int64      `json:"id"`
	AccountUUID string     `json:"account_uuid"`
	Content     ContentRef `json:"content"`
	Comment     *string    `json:"comment,omitempty"`
	CreatedDate time.Time  `json:"created_date"`
}
