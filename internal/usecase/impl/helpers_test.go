package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"opencircle/config"
	"opencircle/internal/clock"
	"opencircle/internal/domain/entity"
	"opencircle/internal/domain/repository"
	"opencircle/internal/infra/persistence/postgres"
	"opencircle/internal/infra/persistence/storetest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv bundles a seeded in-memory store with the pieces services need.
type testEnv struct {
	db        *gorm.DB
	clock     *clock.FakeClock
	txManager repository.TransactionManager
	fixture   *storetest.Fixture
	logger    *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clk := clock.NewFakeClock(storetest.Epoch)
	db := storetest.New(t, clk)

	return &testEnv{
		db:        db,
		clock:     clk,
		txManager: postgres.NewTransactionManager(db),
		fixture:   storetest.NewFixture(t, db),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth:         &config.AuthConfig{BcryptCost: 4},
		Session:      &config.SessionConfig{Duration: 30 * time.Minute},
		Notification: &config.NotificationConfig{DefaultLimit: 3, MaxLimit: 5},
	}
	cfg.SecretKey.Session = "test_session_secret_key_very_long_for_testing"

	return cfg
}

// notificationsFor returns what the recipient has, newest first.
func (env *testEnv) notificationsFor(t *testing.T, recipientID int64) []*entity.Notification {
	t.Helper()

	found, err := postgres.NewNotificationRepository(env.db).FindNotificationsByRecipient(t.Context(), recipientID, false, 0)
	require.NoError(t, err)

	return found
}

// failNotificationInserts makes every INSERT into notification fail.
func (env *testEnv) failNotificationInserts(t *testing.T) {
	t.Helper()

	err := env.db.Callback().Create().Before("gorm:create").Register("test:fail_notifications", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "notification" {
			_ = tx.AddError(errNotificationsDown)
		}
	})
	require.NoError(t, err)
}

// failAddressUpdates makes every UPDATE of address fail.
func (env *testEnv) failAddressUpdates(t *testing.T) {
	t.Helper()

	err := env.db.Callback().Update().Before("gorm:update").Register("test:fail_address_updates", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "address" {
			_ = tx.AddError(errAddressesDown)
		}
	})
	require.NoError(t, err)
}

var (
	errNotificationsDown = mockError("notification store unavailable")
	errAddressesDown     = mockError("address store unavailable")
)

type mockError string

func (e mockError) Error() string { return string(e) }

// mockPasswordHasher is a testify mock of service.PasswordHasher.
type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}
