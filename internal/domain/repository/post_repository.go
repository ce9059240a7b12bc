package repository

import (
	"context"
	"errors"

	"opencircle/internal/domain/entity"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	FindPostByID(ctx context.Context, id int64) (*entity.Post, error)
	// FindPostsByAuthor returns the author's posts, newest first.
	FindPostsByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*entity.Post, error)
	// UpdatePost and DeletePost only match rows written by the given author.
	UpdatePost(ctx context.Context, post *entity.Post) error
	DeletePost(ctx context.Context, id, author int64) error
}
