package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by the service.
const EnvPrefix = "MAINTENIX"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "MAINTENIX_APP_ENV"
	EnvAppPort  = "MAINTENIX_APP_PORT"
	EnvDBDSN    = "MAINTENIX_DB_DSN"
	EnvDBHost   = "MAINTENIX_DB_HOST"
	EnvDBUser   = "MAINTENIX_DB_USER"
	EnvDBName   = "MAINTENIX_DB_NAME"
	EnvRedisURL = "MAINTENIX_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Storage      StorageConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MAINTENIX_APP_ENV" required:"true"`
	Port         string `envconfig:"MAINTENIX_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MAINTENIX_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MAINTENIX_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MAINTENIX_DB_DSN"`
	Driver string `envconfig:"MAINTENIX_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MAINTENIX_DB_HOST"`
	LegacyPort     int    `envconfig:"MAINTENIX_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MAINTENIX_DB_USER"`
	LegacyPassword string `envconfig:"MAINTENIX_DB_PASSWORD"`
	LegacyName     string `envconfig:"MAINTENIX_DB_NAME"`
	LegacySSLMode  string `envconfig:"MAINTENIX_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MAINTENIX_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAINTENIX_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MAINTENIX_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MAINTENIX_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// IsSQLite reports whether the configured driver resolves to SQLite. The DSN is
// then treated as a file path (or :memory: URI).
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, "sqlite")
}

type RedisConfig struct {
	URL          string        `envconfig:"MAINTENIX_REDIS_URL"`
	Address      string        `envconfig:"MAINTENIX_REDIS_ADDR"`
	Password     string        `envconfig:"MAINTENIX_REDIS_PASSWORD"`
	DB           int           `envconfig:"MAINTENIX_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MAINTENIX_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MAINTENIX_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MAINTENIX_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MAINTENIX_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MAINTENIX_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all. The service
// degrades gracefully (no rate limiting) when it is absent.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type RateLimitConfig struct {
	Window time.Duration `envconfig:"MAINTENIX_RATE_LIMIT_WINDOW" default:"1m"`
	Limit  int64         `envconfig:"MAINTENIX_RATE_LIMIT_LIMIT" default:"120"`
}

// StorageConfig describes the simulated object-storage bucket used for
// maintenance images.
type StorageConfig struct {
	Bucket string `envconfig:"MAINTENIX_STORAGE_BUCKET" default:"maintenix-simulated"`
	Region string `envconfig:"MAINTENIX_STORAGE_REGION" default:"us-east-1"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MAINTENIX_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}
	if db.IsSQLite() {
		db.DSN = "maintenix.db"
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
