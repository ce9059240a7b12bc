package usecase

import (
	"context"

	"opencircle/internal/domain/entity"
)

// CreatePostInput defines a new post by an account.
type CreatePostInput struct {
	AuthorUUID  string `validate:"required,len=32,hexadecimal"`
	Image       *int64
	Description *string
}

// UpdatePostInput changes a post. At least one of Image and Description is set.
type UpdatePostInput struct {
	AuthorUUID  string `validate:"required,len=32,hexadecimal"`
	PostID      int64  `validate:"required,gt=0"`
	Image       *int64
	Description *string
}

// PostUsecase publishes posts. Only the author may change or remove a post;
// anyone else gets ErrPostNotFound.
type PostUsecase interface {
	// Create stores the post. Posts by an organization account notify its approved members.
	Create(ctx context.Context, input *CreatePostInput) (*entity.Post, error)
	Update(ctx context.Context, input *UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, authorUUID string, postID int64) error
}
