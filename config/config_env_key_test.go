package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEnvKeys_KeepYAMLSpelling(t *testing.T) {
	keys := newEnvKeys([]string{
		"postgres.sslMode",
		"postgres.master.userName",
		"database.slowQueryThreshold",
		"secretKey.session",
		"notification.defaultLimit",
	})

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DATABASE_SLOWQUERYTHRESHOLD", want: "database.slowQueryThreshold"},
		{envKey: "SECRETKEY_SESSION", want: "secretKey.session"},
		{envKey: "notification_defaultlimit", want: "notification.defaultLimit"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, keys.resolve(tt.envKey))
		})
	}
}

func TestLocate(t *testing.T) {
	path, err := locate(configFile, []string{"missing", "."})
	assert.NoError(t, err)
	assert.Equal(t, configFile, path)

	_, err = locate(configFile, []string{"missing"})
	assert.ErrorContains(t, err, "config.yaml not found in missing")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, 60*time.Minute, cfg.Session.Duration)
	assert.Equal(t, 50, cfg.Notification.DefaultLimit)
	assert.Equal(t, 100, cfg.Notification.MaxLimit)
	assert.Equal(t, "schema_migrations", cfg.Database.MigrationsTable)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQueryThreshold)
	assert.NotNil(t, cfg.Auth)

	cfg = &Config{
		Session:      &SessionConfig{Duration: 15 * time.Minute},
		Notification: &NotificationConfig{DefaultLimit: 20, MaxLimit: 30},
	}
	cfg.applyDefaults()
	assert.Equal(t, 15*time.Minute, cfg.Session.Duration)
	assert.Equal(t, 20, cfg.Notification.DefaultLimit)
	assert.Equal(t, 30, cfg.Notification.MaxLimit)
}

func TestLoad_ReadsYAMLAndEnvOverrides(t *testing.T) {
	if os.Getenv("ENV") != "" {
		t.Skip("ENV is set and would shadow the env section")
	}

	t.Setenv("SESSION_DURATION", "30m")
	t.Setenv("NOTIFICATION_DEFAULTLIMIT", "25")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg, err := load(configFile, searchDirs...)
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, "opencircle", cfg.Env.ServiceName)
	assert.Equal(t, 30*time.Minute, cfg.Session.Duration)
	assert.Equal(t, 25, cfg.Notification.DefaultLimit)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	if assert.NotNil(t, cfg.Postgres) {
		assert.Equal(t, "require", cfg.Postgres.SSLMode)
	}
}
