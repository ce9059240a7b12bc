package impl

import (
	"context"
	"log/slog"

	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/repository"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/usecase"

	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(txManager repository.TransactionManager, logger *slog.Logger) usecase.PostUsecase {
	return &postService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores the post. When the author owns an organization its approved
// members receive a new_post notification.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	post := &entity.Post{
		Image:       input.Image,
		Description: input.Description,
	}

	var notified int
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, input.AuthorUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find author account")
		}

		post.Author = author.ID
		if err := repoFactory.NewPostRepository().CreatePost(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create post")
		}

		org, err := repoFactory.NewOrganizationRepository().FindOrganizationByAccountID(ctx, author.ID)
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find author organization")
		}

		memberIDs, err := repoFactory.NewMembershipRepository().FindApprovedMemberAccountIDs(ctx, org.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members to notify")
		}

		notices := newPostNotices(memberIDs, org, post)
		if err := repoFactory.NewNotificationRepository().BatchCreateNotifications(ctx, notices); err != nil {
			return errors.Wrap(err, "failed to notify members of new post")
		}
		notified = len(notices)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create post", slog.String("authorUUID", input.AuthorUUID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Post created", slog.Int64("postID", post.ID), slog.Int("notified", notified))

	return post, nil
}

// Update changes the image or description of a post the account wrote.
func (srv *postService) Update(ctx context.Context, input *usecase.UpdatePostInput) (*entity.Post, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.Image == nil && input.Description == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("no post fields to update")
	}

	var post *entity.Post

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, input.AuthorUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find author account")
		}

		postRepo := repoFactory.NewPostRepository()

		post, err = postRepo.FindPostByID(ctx, input.PostID)
		if err != nil {
			return errors.Wrap(err, "failed to find post")
		}

		// The write matches nothing unless the caller wrote the post.
		post.Author = author.ID
		if input.Image != nil {
			post.Image = input.Image
		}
		if input.Description != nil {
			post.Description = input.Description
		}

		if err := postRepo.UpdatePost(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update post", slog.Int64("postID", input.PostID), slog.Any("error", err))

		return nil, err
	}

	return post, nil
}

// Delete removes a post the account wrote, with its comments.
func (srv *postService) Delete(ctx context.Context, authorUUID string, postID int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, authorUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find author account")
		}

		if err := repoFactory.NewPostRepository().DeletePost(ctx, postID, author.ID); err != nil {
			return errors.Wrap(err, "failed to delete post")
		}

		return nil
	})
}
