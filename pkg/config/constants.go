package config

// EnvPrefix is applied by envconfig when resolving variables.
const EnvPrefix = "TIDYNEST"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "TIDYNEST_DB_DSN"
	EnvDBHost = "TIDYNEST_DB_HOST"
	EnvDBUser = "TIDYNEST_DB_USER"
	EnvDBName = "TIDYNEST_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
