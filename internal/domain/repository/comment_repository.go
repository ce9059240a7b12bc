package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository persists comments. The store does not check that the
// target exists or that only one target column is set.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *entity.Comment) error
	FindCommentByID(ctx context.Context, id int64) (*entity.Comment, error)
	// FindCommentsByTarget returns comments oldest first.
	FindCommentsByTarget(ctx context.Context, target entity.CommentTarget) ([]*entity.Comment, error)
	// UpdateCommentMessage only matches rows written by author.
	UpdateCommentMessage(ctx context.Context, id, author int64, message string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id, author int64) error
}
