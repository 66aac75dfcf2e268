package config

const (
	// EnvPrefix is passed to envconfig; individual tags carry the full
	// SHOPSIGHT_ names so the prefix stays empty.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvAppEnv = "SHOPSIGHT_APP_ENV"
	EnvDBDSN  = "SHOPSIGHT_DB_DSN"
	EnvDBHost = "SHOPSIGHT_DB_HOST"
	EnvDBUser = "SHOPSIGHT_DB_USER"
	EnvDBName = "SHOPSIGHT_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
