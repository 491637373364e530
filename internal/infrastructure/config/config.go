package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/ridecrew/ridecrew/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Auth        sharedConfig.AuthConfig        `mapstructure:"auth"`
	Email       sharedConfig.EmailConfig       `mapstructure:"email"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	Billing     sharedConfig.BillingConfig     `mapstructure:"billing"`
	Storage     sharedConfig.StorageConfig     `mapstructure:"storage"`
	Geocoding   sharedConfig.GeocodingConfig   `mapstructure:"geocoding"`
	Entitlement sharedConfig.EntitlementConfig `mapstructure:"entitlement"`
	Scheduler   sharedConfig.SchedulerConfig   `mapstructure:"scheduler"`
	RateLimit   sharedConfig.RateLimitConfig   `mapstructure:"ratelimit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables.
// A .env file in the working directory, when present, is loaded into the
// process environment first so RIDECREW_* overrides can live there.
func Load(env string) (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("RIDECREW")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Set replaces the process-wide configuration. Used by tests.
func Set(cfg *Config) {
	appConfigMu.Lock()
	appConfig = cfg
	appConfigMu.Unlock()
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")

	// Database defaults
	viper.SetDefault("database.driver", "mysql")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "root")
	viper.SetDefault("database.password", "password")
	viper.SetDefault("database.database", "ridecrew_dev")
	viper.SetDefault("database.sqlite_path", "ridecrew.db")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Auth defaults
	viper.SetDefault("auth.password.bcrypt_cost", 12)
	viper.SetDefault("auth.jwt.secret", "change-me-in-production")
	viper.SetDefault("auth.jwt.access_exp_minutes", 60*24)
	viper.SetDefault("auth.session.exp_days", 30)

	// Email defaults; an empty smtp_host disables delivery
	viper.SetDefault("email.smtp_host", "")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@ridecrew.local")
	viper.SetDefault("email.from_name", "RideCrew")

	// Redis defaults
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// Billing defaults
	viper.SetDefault("billing.stripe_secret_key", "")
	viper.SetDefault("billing.success_url", "http://localhost:8080/billing/success?session_id={CHECKOUT_SESSION_ID}")
	viper.SetDefault("billing.cancel_url", "http://localhost:8080/billing/cancel")

	// Storage defaults
	viper.SetDefault("storage.region", "us-east-1")
	viper.SetDefault("storage.max_upload_mb", 5)

	// Geocoding defaults
	viper.SetDefault("geocoding.base_url", "https://api-adresse.data.gouv.fr")
	viper.SetDefault("geocoding.timeout_seconds", 5)

	viper.SetDefault("entitlement.cache_ttl_seconds", 60)

	viper.SetDefault("scheduler.subs_sync_spec", "@every 6h")
	viper.SetDefault("scheduler.session_purge_spec", "@daily")

	viper.SetDefault("ratelimit.requests", 20)
	viper.SetDefault("ratelimit.window_seconds", 60)
}
