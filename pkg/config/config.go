package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/multierr"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Session       SessionConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Clock         ClockConfig
	Geofence      GeofenceConfig
	Cron          CronConfig
	CORS          CORSConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var err error
	if !c.DB.IsSQLite() && !c.DB.IsPostgres() {
		err = multierr.Append(err, fmt.Errorf("%s must be %q or %q", EnvDBDriver, DriverSQLite, DriverPostgres))
	}
	if strings.TrimSpace(c.DB.DSN) == "" {
		err = multierr.Append(err, fmt.Errorf("%s is required", EnvDBDSN))
	}
	if c.Session.TTL <= 0 || c.Session.RememberTTL <= 0 {
		err = multierr.Append(err, fmt.Errorf("session ttls must be positive"))
	}
	if c.Session.RememberTTL < c.Session.TTL {
		err = multierr.Append(err, fmt.Errorf("remember-me ttl (%s) must not be shorter than session ttl (%s)", c.Session.RememberTTL, c.Session.TTL))
	}
	if c.Geofence.DefaultRadiusMeters <= 0 {
		err = multierr.Append(err, fmt.Errorf("%s must be positive", EnvGeofenceDefaultRadius))
	}
	return err
}

type AppConfig struct {
	Env            string        `envconfig:"HRM_APP_ENV" default:"dev"`
	Port           string        `envconfig:"HRM_APP_PORT" default:"5000"`
	ServiceName    string        `envconfig:"HRM_SERVICE_NAME" default:"HRM Go API"`
	LogLevel       string        `envconfig:"HRM_LOG_LEVEL" default:"info"`
	LogFormat      string        `envconfig:"HRM_LOG_FORMAT" default:"json"`
	LogWarnStack   bool          `envconfig:"HRM_LOG_WARN_STACK" default:"false"`
	RequestTimeout time.Duration `envconfig:"HRM_APP_REQUEST_TIMEOUT" default:"15s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	Driver string `envconfig:"HRM_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"HRM_DB_DSN" default:"hrm_database.db"`

	MaxOpenConns    int           `envconfig:"HRM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"HRM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"HRM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"HRM_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	SlowQueryThreshold time.Duration `envconfig:"HRM_DB_SLOW_QUERY_THRESHOLD" default:"200ms"`
}

func (d DBConfig) IsSQLite() bool {
	return strings.EqualFold(strings.TrimSpace(d.Driver), DriverSQLite)
}

func (d DBConfig) IsPostgres() bool {
	return strings.EqualFold(strings.TrimSpace(d.Driver), DriverPostgres)
}

// RedisConfig is optional; an empty URL and address disables rate limiting and the cron lock.
type RedisConfig struct {
	URL          string        `envconfig:"HRM_REDIS_URL"`
	Address      string        `envconfig:"HRM_REDIS_ADDR"`
	Password     string        `envconfig:"HRM_REDIS_PASSWORD"`
	DB           int           `envconfig:"HRM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"HRM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"HRM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"HRM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"HRM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"HRM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != "" || strings.TrimSpace(r.Address) != ""
}

type SessionConfig struct {
	// SecretKey is stored for token hardening; it is not mixed into tokens yet.
	SecretKey   string        `envconfig:"HRM_SECRET_KEY" default:"dev-secret-key-change-in-production"`
	TTL         time.Duration `envconfig:"HRM_SESSION_TTL" default:"24h"`
	RememberTTL time.Duration `envconfig:"HRM_SESSION_REMEMBER_TTL" default:"720h"`
	TouchOnUse  bool          `envconfig:"HRM_SESSION_TOUCH_ON_USE" default:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"HRM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"HRM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"HRM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"HRM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"HRM_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow           time.Duration `envconfig:"HRM_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginIdentityLimit    int           `envconfig:"HRM_AUTH_RATE_LIMIT_LOGIN_IDENTITY_LIMIT" default:"5"`
	LoginIPLimit          int           `envconfig:"HRM_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow        time.Duration `envconfig:"HRM_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterIdentityLimit int           `envconfig:"HRM_AUTH_RATE_LIMIT_REGISTER_IDENTITY_LIMIT" default:"3"`
	RegisterIPLimit       int           `envconfig:"HRM_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type ClockConfig struct {
	OffsetHours int  `envconfig:"HRM_CLOCK_OFFSET_HOURS" default:"7"`
	LegacyZ     bool `envconfig:"HRM_CLOCK_LEGACY_Z" default:"true"`
}

type GeofenceConfig struct {
	DefaultRadiusMeters float64 `envconfig:"HRM_GEOFENCE_DEFAULT_RADIUS_METERS" default:"50"`
}

type CronConfig struct {
	Interval         time.Duration `envconfig:"HRM_CRON_INTERVAL" default:"1h"`
	SessionRetention time.Duration `envconfig:"HRM_CRON_SESSION_RETENTION" default:"168h"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"HRM_CORS_ALLOWED_ORIGINS" default:"*"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"HRM_AUTO_MIGRATE" default:"false"`
}
