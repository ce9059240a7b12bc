package impl

import (
	"context"
	"testing"
	"time"

	"opencircle/internal/domain/entity"
	domainerrors "opencircle/internal/domain/errors"
	"opencircle/internal/infra/auth"
	"opencircle/internal/infra/persistence/postgres"
	"opencircle/internal/infra/persistence/storetest"
	"opencircle/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, env *testEnv) usecase.SessionUsecase {
	t.Helper()

	tokens, err := auth.NewSessionTokenIssuer(testConfig())
	require.NoError(t, err)

	return NewSessionService(SessionServiceParams{
		TxManager: env.txManager,
		Tokens:    tokens,
		Clock:     env.clock,
		Logger:    env.logger,
	})
}

func TestSessionService_OpenAndValidate(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestSessionService(t, env)
	ctx := context.Background()

	account := env.fixture.Account("login@example.com", entity.RoleUser)
	ip := "203.0.113.7"

	session, err := srv.Open(ctx, &usecase.OpenSessionInput{AccountUUID: account.UUID, IPAddress: &ip})
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionToken)
	assert.Equal(t, storetest.Epoch.Add(30*time.Minute), session.ExpiresAt.UTC())

	env.clock.Advance(10 * time.Minute)

	live, err := srv.Validate(ctx, session.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, account.UUID, live.AccountUUID)
	assert.Equal(t, storetest.Epoch.Add(10*time.Minute), live.LastActivity.UTC())
	require.NotNil(t, live.IPAddress)
	assert.Equal(t, ip, *live.IPAddress)
}

func TestSessionService_OpenRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestSessionService(t, env)
	badIP := "not-an-ip"

	_, err := srv.Open(context.Background(), &usecase.OpenSessionInput{AccountUUID: "xyz", IPAddress: &badIP})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSessionService_ExpiredSessionIsDeleted(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestSessionService(t, env)
	ctx := context.Background()

	account := env.fixture.Account("sleepy@example.com", entity.RoleUser)
	session, err := srv.Open(ctx, &usecase.OpenSessionInput{AccountUUID: account.UUID})
	require.NoError(t, err)

	env.clock.Advance(30 * time.Minute)

	_, err = srv.Validate(ctx, session.SessionToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)

	_, err = postgres.NewSessionRepository(env.db).FindSessionByToken(ctx, session.SessionToken)
	require.Error(t, err)

	_, err = srv.Validate(ctx, session.SessionToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_Close(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestSessionService(t, env)
	ctx := context.Background()

	account := env.fixture.Account("bye@example.com", entity.RoleUser)
	session, err := srv.Open(ctx, &usecase.OpenSessionInput{AccountUUID: account.UUID})
	require.NoError(t, err)

	require.NoError(t, srv.Close(ctx, session.SessionToken))
	assert.ErrorIs(t, srv.Close(ctx, session.SessionToken), domainerrors.ErrSessionNotFound)

	_, err = srv.Validate(ctx, session.SessionToken)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_ValidateRejectsForgedToken(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestSessionService(t, env)

	_, err := srv.Validate(context.Background(), "definitely.not.ajwt")
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_SweepExpired(t *testing.T) {
	env := newTestEnv(t)
	srv := newTestSessionService(t, env)
	ctx := context.Background()

	account := env.fixture.Account("many@example.com", entity.RoleUser)
	_, err := srv.Open(ctx, &usecase.OpenSessionInput{AccountUUID: account.UUID})
	require.NoError(t, err)
	_, err = srv.Open(ctx, &usecase.OpenSessionInput{AccountUUID: account.UUID})
	require.NoError(t, err)

	env.clock.Advance(20 * time.Minute)
	fresh, err := srv.Open(ctx, &usecase.OpenSessionInput{AccountUUID: account.UUID})
	require.NoError(t, err)

	env.clock.Advance(15 * time.Minute)

	removed, err := srv.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = srv.Validate(ctx, fresh.SessionToken)
	assert.NoError(t, err)
}
