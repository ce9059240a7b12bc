package entity

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidCommentTarget is returned when a comment row points at neither or both of event and post.
var ErrInvalidCommentTarget = errors.New("comment must reference exactly one of event or post")

// CommentTargetKind tells which table a comment is attached to.
type CommentTargetKind string

const (
	CommentOnEvent CommentTargetKind = "event"
	CommentOnPost  CommentTargetKind = "post"
)

// CommentTarget is either an event or a post, never both.
// The zero value is invalid; build one with EventTarget or PostTarget.
type CommentTarget struct {
	kind CommentTargetKind
	id   int64
}

func EventTarget(eventID int64) CommentTarget {
	return CommentTarget{kind: CommentOnEvent, id: eventID}
}

func PostTarget(postID int64) CommentTarget {
	return CommentTarget{kind: CommentOnPost, id: postID}
}

// CommentTargetFromColumns rebuilds a target from the two nullable columns.
func CommentTargetFromColumns(eventID, postID *int64) (CommentTarget, error) {
	switch {
	case eventID != nil && postID == nil:
		return EventTarget(*eventID), nil
	case postID != nil && eventID == nil:
		return PostTarget(*postID), nil
	default:
		return CommentTarget{}, ErrInvalidCommentTarget
	}
}

func (t CommentTarget) Kind() CommentTargetKind { return t.kind }

func (t CommentTarget) ID() int64 { return t.id }

// Valid reports whether the target was built by one of the constructors with a positive id.
func (t CommentTarget) Valid() bool {
	return (t.kind == CommentOnEvent || t.kind == CommentOnPost) && t.id > 0
}

// Columns splits the target back into the event_id and post_id columns.
func (t CommentTarget) Columns() (eventID, postID *int64) {
	id := t.id
	switch t.kind {
	case CommentOnEvent:
		return &id, nil
	case CommentOnPost:
		return nil, &id
	}

	return nil, nil
}

// Comment is a message an account leaves on an event or a post.
type Comment struct {
	ID               int64         `json:"id"`
	Target           CommentTarget `json:"-"`
	Author           int64         `json:"author"`
	Message          string        `json:"message"`
	CreatedDate      time.Time     `json:"created_date"`
	LastModifiedDate time.Time     `json:"last_modified_date"`
}
