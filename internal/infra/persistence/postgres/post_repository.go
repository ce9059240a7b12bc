package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

func (repo *postRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		return translateWriteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedDate = postM.CreatedDate
	post.LastModifiedDate = postM.LastModifiedDate

	return nil
}

func (repo *postRepository) FindPostByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by ID")
	}

	return toPostDomain(&postM), nil
}

func (repo *postRepository) FindPostsByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	query := repo.db.WithContext(ctx).
		Where("author = ?", authorID).
		Order("created_date DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by author")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// UpdatePost rewrites a post written by post.Author.
func (repo *postRepository) UpdatePost(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	result := updateRow(ctx, repo.db.Where("author = ?", post.Author), postM)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	post.LastModifiedDate = postM.LastModifiedDate

	return nil
}

// DeletePost removes a post written by author.
func (repo *postRepository) DeletePost(ctx context.Context, id, author int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND author = ?", id, author).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:               data.ID,
		Author:           data.Author,
		Image:            data.Image,
		Description:      data.Description,
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:          data.ID,
		Author:      data.Author,
		Image:       data.Image,
		Description: data.Description,
	}
}
