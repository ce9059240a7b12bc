package impl

import (
	"context"
	"log/slog"

	"opencircle/internal/clock"
	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/domain/repository"
	"opencircle/internal/domain/service"
	logs "opencircle/internal/infra/log"
	"opencircle/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	tokens    service.SessionTokenIssuer
	clock     clock.Clock
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Tokens    service.SessionTokenIssuer
	Clock     clock.Clock
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager: params.TxManager,
		tokens:    params.Tokens,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return logs.GetLoggerOrDefault(ctx, srv.logger)
}

// Open issues a session token for an existing account and stores the session.
func (srv *sessionService) Open(ctx context.Context, input *usecase.OpenSessionInput) (*entity.Session, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	expiresAt := now.Add(srv.tokens.Duration())

	token, err := srv.tokens.Issue(input.AccountUUID, now, expiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	session := &entity.Session{
		AccountUUID:  input.AccountUUID,
		SessionToken: token,
		ExpiresAt:    expiresAt,
		IPAddress:    input.IPAddress,
		UserAgent:    input.UserAgent,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewAccountRepository().FindAccountByUUID(ctx, input.AccountUUID); err != nil {
			return errors.Wrap(err, "failed to find account for session")
		}

		if err := repoFactory.NewSessionRepository().CreateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to open session", slog.String("accountUUID", input.AccountUUID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Session opened", slog.String("accountUUID", input.AccountUUID), slog.Time("expiresAt", expiresAt))

	return session, nil
}

// Validate checks the token signature and the stored session. Expired
// sessions are removed before ErrSessionExpired is returned.
func (srv *sessionService) Validate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := srv.tokens.Parse(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionNotFound, "invalid session token")
	}

	var (
		session *entity.Session
		expired bool
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		found, err := sessionRepo.FindSessionByToken(ctx, token)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "session is not stored")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session")
		}

		if found.AccountUUID != claims.AccountUUID {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "session token does not match its account")
		}

		if found.IsExpired(srv.clock.Now()) {
			if err := sessionRepo.DeleteSessionByToken(ctx, token); err != nil {
				return errors.Wrap(err, "failed to delete expired session")
			}
			expired = true

			return nil
		}

		lastActivity, err := sessionRepo.TouchSession(ctx, token)
		if err != nil {
			return errors.Wrap(err, "failed to record session activity")
		}
		found.LastActivity = lastActivity
		session = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if expired {
		srv.log(ctx).Info("Expired session removed", slog.String("accountUUID", claims.AccountUUID))

		return nil, domainerrors.ErrSessionExpired
	}

	return session, nil
}

// Close logs the session out.
func (srv *sessionService) Close(ctx context.Context, token string) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.NewSessionRepository().DeleteSessionByToken(ctx, token)
		if errors.Is(err, repository.ErrSessionNotFound) {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "session already closed")
		}

		return err
	})
}

// SweepExpired deletes all sessions past their expiry.
func (srv *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NewSessionRepository().DeleteExpiredSessions(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete expired sessions")
		}
		removed = n

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sweep expired sessions", slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Info("Expired sessions swept", slog.Int64("removed", removed))

	return removed, nil
}
