package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	RateLimit    RateLimitConfig
	Analytics    AnalyticsConfig
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
	if err := cfg.Analytics.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPSIGHT_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPSIGHT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPSIGHT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPSIGHT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHOPSIGHT_DB_DSN"`
	Driver string `envconfig:"SHOPSIGHT_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHOPSIGHT_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPSIGHT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPSIGHT_DB_USER"`
	LegacyPassword string `envconfig:"SHOPSIGHT_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPSIGHT_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPSIGHT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPSIGHT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPSIGHT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPSIGHT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPSIGHT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPSIGHT_REDIS_URL"`
	Address      string        `envconfig:"SHOPSIGHT_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPSIGHT_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPSIGHT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPSIGHT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPSIGHT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPSIGHT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPSIGHT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPSIGHT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a Redis endpoint was configured at all; rate
// limiting degrades to a no-op without one.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type RateLimitConfig struct {
	Window   time.Duration `envconfig:"SHOPSIGHT_RATE_LIMIT_WINDOW" default:"1m"`
	IPLimit  int           `envconfig:"SHOPSIGHT_RATE_LIMIT_IP_LIMIT" default:"120"`
	Disabled bool          `envconfig:"SHOPSIGHT_RATE_LIMIT_DISABLED" default:"false"`
}

// AnalyticsConfig carries the tunables of the aggregation engine. The aging
// thresholds are all derived from the single base period so the 2x/3x cuts
// cannot drift apart.
type AnalyticsConfig struct {
	AgingBasePeriodDays  int     `envconfig:"SHOPSIGHT_ANALYTICS_AGING_BASE_DAYS" default:"15"`
	DefaultWindowDays    int     `envconfig:"SHOPSIGHT_ANALYTICS_DEFAULT_WINDOW_DAYS" default:"30"`
	InventorySentinel    int     `envconfig:"SHOPSIGHT_ANALYTICS_INVENTORY_SENTINEL_DAYS" default:"999"`
	FastMoverTopN        int     `envconfig:"SHOPSIGHT_ANALYTICS_FAST_MOVER_TOP_N" default:"10"`
	SummaryCardTopN      int     `envconfig:"SHOPSIGHT_ANALYTICS_SUMMARY_CARD_TOP_N" default:"3"`
	ExportMaxRows        int     `envconfig:"SHOPSIGHT_ANALYTICS_EXPORT_MAX_ROWS" default:"10000"`
	HighTierPercentile   float64 `envconfig:"SHOPSIGHT_ANALYTICS_HIGH_TIER_PCT" default:"0.2"`
	MediumTierPercentile float64 `envconfig:"SHOPSIGHT_ANALYTICS_MEDIUM_TIER_PCT" default:"0.5"`
}

func (a AnalyticsConfig) validate() error {
	if a.AgingBasePeriodDays <= 0 {
		return fmt.Errorf("aging base period must be positive, got %d", a.AgingBasePeriodDays)
	}
	if a.DefaultWindowDays <= 0 {
		return fmt.Errorf("default window must be positive, got %d", a.DefaultWindowDays)
	}
	if a.HighTierPercentile <= 0 || a.HighTierPercentile > a.MediumTierPercentile || a.MediumTierPercentile > 1 {
		return fmt.Errorf("tier percentiles must satisfy 0 < high <= medium <= 1")
	}
	return nil
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SHOPSIGHT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SHOPSIGHT_AUTO_MIGRATE" default:"false"`
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
