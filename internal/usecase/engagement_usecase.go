package usecase

import (
	"context"

	"opencircle/internal/domain/entity"
)

// EngagementUsecase covers comments and shares. Both point at content the
// store does not check, so existence is verified here.
type EngagementUsecase interface {
	Comment(ctx context.Context, authorUUID string, target entity.CommentTarget, message string) (*entity.Comment, error)
	EditComment(ctx context.Context, authorUUID string, commentID int64, message string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, authorUUID string, commentID int64) error
	// ListComments returns the comments on an existing event or post, oldest first.
	ListComments(ctx context.Context, target entity.CommentTarget) ([]*entity.Comment, error)

	// Share records that the account re-posted the content. Sharing the same
	// content twice fails with ErrAlreadyShared.
	Share(ctx context.Context, accountUUID string, content entity.ContentRef, comment *string) (*entity.Share, error)
	Unshare(ctx context.Context, accountUUID string, shareID int64) error
	ListShares(ctx context.Context, accountUUID string) ([]*entity.Share, error)
	// CountShares counts every share of an existing post or event.
	CountShares(ctx context.Context, content entity.ContentRef) (int64, error)
}
