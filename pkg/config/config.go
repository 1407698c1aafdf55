package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	Notifications NotificationsConfig
	Calendar      CalendarConfig
	FeatureFlags  FeatureFlagsConfig
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
	Env          string `envconfig:"TIDYNEST_APP_ENV" required:"true"`
	Port         string `envconfig:"TIDYNEST_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TIDYNEST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TIDYNEST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TIDYNEST_DB_DSN"`
	Driver string `envconfig:"TIDYNEST_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"TIDYNEST_DB_HOST"`
	LegacyPort     int    `envconfig:"TIDYNEST_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TIDYNEST_DB_USER"`
	LegacyPassword string `envconfig:"TIDYNEST_DB_PASSWORD"`
	LegacyName     string `envconfig:"TIDYNEST_DB_NAME"`
	LegacySSLMode  string `envconfig:"TIDYNEST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TIDYNEST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TIDYNEST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TIDYNEST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TIDYNEST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TIDYNEST_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TIDYNEST_REDIS_ADDR"`
	Password     string        `envconfig:"TIDYNEST_REDIS_PASSWORD"`
	DB           int           `envconfig:"TIDYNEST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TIDYNEST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TIDYNEST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TIDYNEST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TIDYNEST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TIDYNEST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"TIDYNEST_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"TIDYNEST_JWT_ISSUER" required:"true"`
	ExpirationMinutes      int    `envconfig:"TIDYNEST_JWT_EXPIRATION_MINUTES" required:"true"`
	RefreshTokenTTLMinutes int    `envconfig:"TIDYNEST_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"TIDYNEST_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"TIDYNEST_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"TIDYNEST_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"TIDYNEST_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"TIDYNEST_ARGON_KEY_LEN" default:"32"`
}

type NotificationsConfig struct {
	// MirrorTTL bounds how long an expiring notification is visible to
	// sibling instances through Redis. Zero disables the mirror.
	MirrorTTL time.Duration `envconfig:"TIDYNEST_NOTIFICATIONS_MIRROR_TTL" default:"0"`
}

type CalendarConfig struct {
	BusinessDays      []int  `envconfig:"TIDYNEST_CALENDAR_BUSINESS_DAYS" default:"1,2,3,4,5"`
	BusinessStartTime string `envconfig:"TIDYNEST_CALENDAR_BUSINESS_START" default:"09:00"`
	BusinessEndTime   string `envconfig:"TIDYNEST_CALENDAR_BUSINESS_END" default:"17:00"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"TIDYNEST_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"TIDYNEST_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
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
