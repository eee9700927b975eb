package config

const EnvPrefix = "HRM"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	EnvAppEnv                = "HRM_APP_ENV"
	EnvPort                  = "HRM_APP_PORT"
	EnvLogLevel              = "HRM_LOG_LEVEL"
	EnvLogFormat             = "HRM_LOG_FORMAT"
	EnvDBDriver              = "HRM_DB_DRIVER"
	EnvDBDSN                 = "HRM_DB_DSN"
	EnvRedisURL              = "HRM_REDIS_URL"
	EnvSecretKey             = "HRM_SECRET_KEY"
	EnvSessionTTL            = "HRM_SESSION_TTL"
	EnvSessionRememberTTL    = "HRM_SESSION_REMEMBER_TTL"
	EnvClockLegacyZ          = "HRM_CLOCK_LEGACY_Z"
	EnvGeofenceDefaultRadius = "HRM_GEOFENCE_DEFAULT_RADIUS_METERS"
)
