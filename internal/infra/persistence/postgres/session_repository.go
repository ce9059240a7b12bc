package postgres

import (
	"context"
	"time"

	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession persists a session. created_at and last_activity come from the store clock.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return translateWriteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.LastActivity = sessionM.LastActivity

	return nil
}

// FindSessionByToken retrieves a session by its token.
func (repo *sessionRepository) FindSessionByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).Where("session_token = ?", token).First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token")
	}

	return toSessionDomain(&sessionM), nil
}

// FindSessionsByAccountUUID lists an account's sessions, most recently active first.
func (repo *sessionRepository) FindSessionsByAccountUUID(ctx context.Context, accountUUID string) ([]*entity.Session, error) {
	var sessionModels []*model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("account_uuid = ?", accountUUID).
		Order("last_activity DESC").
		Order("id DESC").
		Find(&sessionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by account")
	}

	sessions := make([]*entity.Session, 0, len(sessionModels))
	for _, sessionM := range sessionModels {
		sessions = append(sessions, toSessionDomain(sessionM))
	}

	return sessions, nil
}

// TouchSession records activity on the session.
func (repo *sessionRepository) TouchSession(ctx context.Context, token string) (time.Time, error) {
	now := repo.db.NowFunc()

	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("session_token = ?", token).
		Update("last_activity", now)

	if result.Error != nil {
		return time.Time{}, translateWriteError(result.Error, "failed to touch session")
	}
	if result.RowsAffected == 0 {
		return time.Time{}, repository.ErrSessionNotFound
	}

	return now, nil
}

// DeleteSessionByToken removes a session.
func (repo *sessionRepository) DeleteSessionByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).Where("session_token = ?", token).Delete(&model.SessionModel{})
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry has passed.
func (repo *sessionRepository) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Where("expires_at <= ?", repo.db.NowFunc()).Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, translateWriteError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:           data.ID,
		AccountUUID:  data.AccountUUID,
		SessionToken: data.SessionToken,
		CreatedAt:    data.CreatedAt,
		ExpiresAt:    data.ExpiresAt,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
		LastActivity: data.LastActivity,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:           data.ID,
		AccountUUID:  data.AccountUUID,
		SessionToken: data.SessionToken,
		ExpiresAt:    data.ExpiresAt,
		IPAddress:    data.IPAddress,
		UserAgent:    data.UserAgent,
	}
}
