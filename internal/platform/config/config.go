// Package config loads the application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every tunable of the server. Values come from an optional
// YAML file overridden by MICROBLOG_* environment variables.
type Config struct {
	ListenAddr string `mapstructure:"listen_addr"`

	// DBDriver selects the store: "mysql", "postgres" or "sqlite".
	// DBDSN is the driver-specific DSN (a file path for sqlite).
	DBDriver string `mapstructure:"db_driver"`
	DBDSN    string `mapstructure:"db_dsn"`

	// AutoMigrate runs schema migration at startup when true.
	AutoMigrate bool `mapstructure:"auto_migrate"`

	// RedisAddr enables the Redis session store when set; empty means the
	// database-backed fallback is used.
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`

	JWTSecret  string        `mapstructure:"jwt_secret"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	BcryptCost int           `mapstructure:"bcrypt_cost"`

	// AuthRateLimit requests per AuthRateWindow are allowed per client IP on
	// the register and login endpoints.
	AuthRateLimit  int           `mapstructure:"auth_rate_limit"`
	AuthRateWindow time.Duration `mapstructure:"auth_rate_window"`
}

// Defaults applied when neither file nor environment provides a value.
const (
	DefaultListenAddr     = ":8080"
	DefaultDBDriver       = "sqlite"
	DefaultDBDSN          = "microblog.db"
	DefaultSessionTTL     = 24 * time.Hour
	DefaultAuthRateLimit  = 10
	DefaultAuthRateWindow = time.Minute
)

// Load reads the configuration. path may be empty, in which case only
// defaults and environment variables apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", DefaultListenAddr)
	v.SetDefault("db_driver", DefaultDBDriver)
	v.SetDefault("db_dsn", DefaultDBDSN)
	v.SetDefault("auto_migrate", true)
	// Empty defaults so Unmarshal picks these up from the environment even
	// without a config file.
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("session_ttl", DefaultSessionTTL)
	v.SetDefault("bcrypt_cost", 0) // 0 selects the hasher default
	v.SetDefault("auth_rate_limit", DefaultAuthRateLimit)
	v.SetDefault("auth_rate_window", DefaultAuthRateWindow)

	v.SetEnvPrefix("MICROBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
