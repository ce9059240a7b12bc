package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	configFile                   = "config.yaml"
	defaultSessionDuration       = 60 * time.Minute
	defaultNotificationListLimit = 50
	defaultSlowQueryThreshold    = 200 * time.Millisecond
	defaultMigrationsTable       = "schema_migrations"
)

// searchDirs covers running from the repository root, a cmd directory and
// package tests.
var searchDirs = []string{".", "config", "../config", "../../config"}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds store-level settings that sit on top of the connection.
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Session string `json:"session" yaml:"session"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Session *SessionConfig `json:"session" yaml:"session"`

	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

// DatabaseConfig defines migration and query logging settings
type DatabaseConfig struct {
	MigrationsTable    string        `json:"migrationsTable" yaml:"migrationsTable"`
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// PoolMonitorInterval is how often connection pool waits are sampled.
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// SessionConfig defines session lifetime
type SessionConfig struct {
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NotificationConfig defines notification listing limits
type NotificationConfig struct {
	DefaultLimit int `json:"defaultLimit" yaml:"defaultLimit"`
	MaxLimit     int `json:"maxLimit" yaml:"maxLimit"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// New reads config.yaml from the first directory that has one and lays
// environment variables over it.
func New() (*Config, error) {
	cfg, err := load(configFile, searchDirs...)
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	cfg.applyDefaults()

	return cfg, nil
}

func load(name string, dirs ...string) (*Config, error) {
	path, err := locate(name, dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	// POSTGRES_SSLMODE must land on postgres.sslMode, not postgres.sslmode.
	keys := newEnvKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(name, value string) (string, any) {
			return keys.resolve(name), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

// locate returns the first dir/name that exists. Relative dirs resolve
// against the working directory.
func locate(name string, dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", name, strings.Join(dirs, ", "))
}

// applyDefaults fills optional sections left out of the YAML file.
func (cfg *Config) applyDefaults() {
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if strings.TrimSpace(cfg.Database.MigrationsTable) == "" {
		cfg.Database.MigrationsTable = defaultMigrationsTable
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Duration <= 0 {
		cfg.Session.Duration = defaultSessionDuration
	}

	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.DefaultLimit <= 0 {
		cfg.Notification.DefaultLimit = defaultNotificationListLimit
	}
	if cfg.Notification.MaxLimit < cfg.Notification.DefaultLimit {
		cfg.Notification.MaxLimit = cfg.Notification.DefaultLimit * 2
	}
}

// envKeys maps an environment variable name onto the dotted path of the
// YAML key it overrides.
type envKeys map[string]string

func newEnvKeys(paths []string) envKeys {
	keys := make(envKeys, len(paths))
	for _, path := range paths {
		keys[strings.ToUpper(strings.ReplaceAll(path, ".", "_"))] = path
	}

	return keys
}

// resolve falls back to a lower-case dotted path for names the YAML lacks.
func (keys envKeys) resolve(name string) string {
	if path, ok := keys[strings.ToUpper(name)]; ok {
		return path
	}

	return strings.ToLower(strings.ReplaceAll(name, "_", "."))
}
