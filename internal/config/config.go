package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	DBDriver          string
	DBDSN             string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBConnMaxIdleTime time.Duration
	DBConnectAttempts int

	ServerPort string

	SessionSecret string
	SessionMaxAge time.Duration
	SessionSecure bool
	TokenTTL      time.Duration

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	AdminUsername string
	AdminPassword string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_driver", DriverPostgres)
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_lifetime", "300s")
	v.SetDefault("db_conn_max_idle_time", "60s")
	v.SetDefault("db_connect_attempts", 10)
	v.SetDefault("server_port", "8080")
	v.SetDefault("session_max_age", "168h")
	v.SetDefault("session_secure", false)
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("cors_allowed_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("admin_username", "admin")
	v.SetDefault("admin_password", "admin123")
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DBDriver:          strings.ToLower(strings.TrimSpace(v.GetString("db_driver"))),
		DBDSN:             v.GetString("database_url"),
		DBMaxOpenConns:    v.GetInt("db_max_open_conns"),
		DBMaxIdleConns:    v.GetInt("db_max_idle_conns"),
		DBConnectAttempts: v.GetInt("db_connect_attempts"),
		ServerPort:        v.GetString("server_port"),
		SessionSecret:     v.GetString("session_secret"),
		SessionSecure:     v.GetBool("session_secure"),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
		AdminUsername:     v.GetString("admin_username"),
		AdminPassword:     v.GetString("admin_password"),
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"db_conn_max_lifetime", &cfg.DBConnMaxLifetime},
		{"db_conn_max_idle_time", &cfg.DBConnMaxIdleTime},
		{"session_max_age", &cfg.SessionMaxAge},
		{"token_ttl", &cfg.TokenTTL},
	}
	for _, d := range durations {
		val, err := duration(v.GetString(d.key))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToUpper(d.key), err)
		}
		*d.dst = val
	}

	// DB_DSN is the older name for the same setting.
	if cfg.DBDSN == "" {
		cfg.DBDSN = v.GetString("db_dsn")
	}

	for _, o := range strings.Split(v.GetString("cors_allowed_origins"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// duration reads a Go duration ("5m", "90s"). A bare number is seconds.
func duration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative duration %q", raw)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return errors.New("DATABASE_URL is not set")
	}
	if c.SessionSecret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if c.DBConnectAttempts < 1 {
		c.DBConnectAttempts = 1
	}
	return nil
}
