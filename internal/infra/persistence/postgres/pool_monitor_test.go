package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"opencircle/config"

	"github.com/stretchr/testify/assert"
)

func TestPoolWaitReport(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	_, attrs, waited := poolWaitReport(prev, prev)
	assert.False(t, waited)
	assert.Nil(t, attrs)

	level, attrs, waited := poolWaitReport(prev, sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelDebug, level)
	assert.Contains(t, attrs, slog.Duration("avgWait", 5*time.Millisecond))

	level, _, waited = poolWaitReport(prev, sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold})
	assert.True(t, waited)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestPoolMonitorInterval(t *testing.T) {
	assert.Equal(t, defaultPoolMonitorInterval, poolMonitorInterval(&config.Config{}))
	assert.Equal(t, 2*time.Second, poolMonitorInterval(&config.Config{
		Database: &config.DatabaseConfig{PoolMonitorInterval: 2 * time.Second},
	}))
}
