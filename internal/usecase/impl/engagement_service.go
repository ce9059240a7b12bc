package impl

import (
	"context"
	"fmt"
	"log/slog"

	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/repository"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/usecase"

	"github.com/pkg/errors"
)

// engagementService implements the EngagementUsecase interface.
type engagementService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(txManager repository.TransactionManager, logger *slog.Logger) usecase.EngagementUsecase {
	return &engagementService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Comment attaches a message to an existing event or post.
func (srv *engagementService) Comment(ctx context.Context, authorUUID string, target entity.CommentTarget, message string) (*entity.Comment, error) {
	if err := validateVar("message", message, "required"); err != nil {
		return nil, err
	}
	if !target.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment must target an event or a post")
	}

	var comment *entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, authorUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find author account")
		}

		if err := commentTargetExists(ctx, repoFactory, target); err != nil {
			return err
		}

		comment = &entity.Comment{
			Target:  target,
			Author:  author.ID,
			Message: message,
		}
		if err := repoFactory.NewCommentRepository().CreateComment(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create comment")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create comment", slog.String("authorUUID", authorUUID), slog.Any("error", err))

		return nil, err
	}

	return comment, nil
}

// EditComment replaces the message of a comment the account wrote.
func (srv *engagementService) EditComment(ctx context.Context, authorUUID string, commentID int64, message string) (*entity.Comment, error) {
	if err := validateVar("message", message, "required"); err != nil {
		return nil, err
	}

	var comment *entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, authorUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find author account")
		}

		comment, err = repoFactory.NewCommentRepository().UpdateCommentMessage(ctx, commentID, author.ID, message)
		if err != nil {
			return errors.Wrap(err, "failed to update comment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return comment, nil
}

// DeleteComment removes a comment the account wrote.
func (srv *engagementService) DeleteComment(ctx context.Context, authorUUID string, commentID int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		author, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, authorUUID)
		if err != nil {
			return errors.Wrap(err, "failed to find author account")
		}

		if err := repoFactory.NewCommentRepository().DeleteComment(ctx, commentID, author.ID); err != nil {
			return errors.Wrap(err, "failed to delete comment")
		}

		return nil
	})
}

// ListComments returns the comments on an event or post.
func (srv *engagementService) ListComments(ctx context.Context, target entity.CommentTarget) ([]*entity.Comment, error) {
	if !target.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("comment must target an event or a post")
	}

	var comments []*entity.Comment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := commentTargetExists(ctx, repoFactory, target); err != nil {
			return err
		}

		found, err := repoFactory.NewCommentRepository().FindCommentsByTarget(ctx, target)
		if err != nil {
			return errors.Wrap(err, "failed to list comments")
		}
		comments = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return comments, nil
}

// Share records a re-post of an existing post or event.
func (srv *engagementService) Share(ctx context.Context, accountUUID string, content entity.ContentRef, comment *string) (*entity.Share, error) {
	if !content.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("cannot share %s %d", content.Type, content.ID))
	}

	var share *entity.Share

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, accountUUID); err != nil {
			return errors.Wrap(err, "failed to find sharing account")
		}

		if err := sharedContentExists(ctx, repoFactory, content); err != nil {
			return err
		}

		shareRepo := repoFactory.NewShareRepository()

		exists, err := shareRepo.ExistsShare(ctx, accountUUID, content)
		if err != nil {
			return errors.Wrap(err, "failed to check existing share")
		}
		if exists {
			return domainerrors.ErrAlreadyShared.WrapMessage(fmt.Sprintf("%s %d", content.Type, content.ID))
		}

		share = &entity.Share{
			AccountUUID: accountUUID,
			Content:     content,
			Comment:     comment,
		}
		if err := shareRepo.CreateShare(ctx, share); err != nil {
			return errors.Wrap(err, "failed to create share")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to share content", slog.String("accountUUID", accountUUID), slog.String("content", content.Type.String()), slog.Any("error", err))

		return nil, err
	}

	return share, nil
}

// Unshare removes one of the account's shares.
func (srv *engagementService) Unshare(ctx context.Context, accountUUID string, shareID int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewShareRepository().DeleteShare(ctx, shareID, accountUUID); err != nil {
			return errors.Wrap(err, "failed to delete share")
		}

		return nil
	})
}

// ListShares returns the account's shares, newest first.
func (srv *engagementService) ListShares(ctx context.Context, accountUUID string) ([]*entity.Share, error) {
	var shares []*entity.Share

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, accountUUID); err != nil {
			return errors.Wrap(err, "failed to find sharing account")
		}

		found, err := repoFactory.NewShareRepository().FindSharesByAccountUUID(ctx, accountUUID)
		if err != nil {
			return errors.Wrap(err, "failed to list shares")
		}
		shares = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return shares, nil
}

// CountShares counts how often the content was shared.
func (srv *engagementService) CountShares(ctx context.Context, content entity.ContentRef) (int64, error) {
	if !content.Valid() {
		return 0, domainerrors.ErrValidationFailed.WrapMessage(fmt.Sprintf("cannot count shares of %s %d", content.Type, content.ID))
	}

	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := sharedContentExists(ctx, repoFactory, content); err != nil {
			return err
		}

		n, err := repoFactory.NewShareRepository().CountSharesOf(ctx, content)
		if err != nil {
			return errors.Wrap(err, "failed to count shares")
		}
		count = n

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

func commentTargetExists(ctx context.Context, repoFactory repository.RepositoryFactory, target entity.CommentTarget) error {
	var err error
	switch target.Kind() {
	case entity.CommentOnEvent:
		_, err = repoFactory.NewEventRepository().FindEventByID(ctx, target.ID())
	case entity.CommentOnPost:
		_, err = repoFactory.NewPostRepository().FindPostByID(ctx, target.ID())
	}

	return referenceError(err, string(target.Kind()), target.ID())
}

func sharedContentExists(ctx context.Context, repoFactory repository.RepositoryFactory, content entity.ContentRef) error {
	var err error
	switch content.Type {
	case entity.ContentTypePost:
		_, err = repoFactory.NewPostRepository().FindPostByID(ctx, content.ID)
	case entity.ContentTypeEvent:
		_, err = repoFactory.NewEventRepository().FindEventByID(ctx, content.ID)
	}

	return referenceError(err, content.Type.String(), content.ID)
}

// referenceError turns a missing row into ErrInvalidReference.
func referenceError(err error, kind string, id int64) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrEventNotFound), errors.Is(err, repository.ErrPostNotFound):
		return domainerrors.ErrInvalidReference.WrapMessage(fmt.Sprintf("%s %d does not exist", kind, id))
	default:
		return errors.Wrapf(err, "failed to look up %s %d", kind, id)
	}
}
