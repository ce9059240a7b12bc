package postgres

import (
	"context"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// CreateComment persists a comment on its target.
func (repo *commentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	if !comment.Target.Valid() {
		return entity.ErrInvalidCommentTarget
	}

	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		return translateWriteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedDate = commentM.CreatedDate
	comment.LastModifiedDate = commentM.LastModifiedDate

	return nil
}

// FindCommentByID retrieves a comment by its ID.
func (repo *commentRepository) FindCommentByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var commentM model.CommentModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM)
}

// FindCommentsByTarget lists the comments on an event or a post.
func (repo *commentRepository) FindCommentsByTarget(ctx context.Context, target entity.CommentTarget) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	query := repo.db.WithContext(ctx)
	switch target.Kind() {
	case entity.CommentOnEvent:
		query = query.Where("event_id = ?", target.ID())
	case entity.CommentOnPost:
		query = query.Where("post_id = ?", target.ID())
	default:
		return nil, entity.ErrInvalidCommentTarget
	}

	if err := query.Order("created_date ASC").Order("id ASC").Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find comments by target")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comment, err := toCommentDomain(commentM)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

// UpdateCommentMessage rewrites the message of a comment written by author.
func (repo *commentRepository) UpdateCommentMessage(ctx context.Context, id, author int64, message string) (*entity.Comment, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{}).
		Where("id = ? AND author = ?", id, author).
		Updates(map[string]any{"message": message})

	if result.Error != nil {
		return nil, translateWriteError(result.Error, "failed to update comment")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCommentNotFound
	}

	return repo.FindCommentByID(ctx, id)
}

// DeleteComment removes a comment written by author.
func (repo *commentRepository) DeleteComment(ctx context.Context, id, author int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND author = ?", id, author).
		Delete(&model.CommentModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete comment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCommentDomain rejects rows that point at neither or both targets.
func toCommentDomain(data *model.CommentModel) (*entity.Comment, error) {
	target, err := entity.CommentTargetFromColumns(data.EventID, data.PostID)
	if err != nil {
		return nil, errors.Wrapf(err, "comment %d", data.ID)
	}

	return &entity.Comment{
		ID:               data.ID,
		Target:           target,
		Author:           data.Author,
		Message:          data.Message,
		CreatedDate:      data.CreatedDate,
		LastModifiedDate: data.LastModifiedDate,
	}, nil
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	eventID, postID := data.Target.Columns()

	return &model.CommentModel{
		ID:      data.ID,
		EventID: eventID,
		PostID:  postID,
		Author:  data.Author,
		Message: data.Message,
	}
}
