package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://u:p@localhost/portfolio")
		t.Setenv("SESSION_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DriverPostgres, cfg.DBDriver)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, 300*time.Second, cfg.DBConnMaxLifetime)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, "admin", cfg.AdminUsername)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "file:portfolio.db")
		t.Setenv("DB_DRIVER", "SQLite")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("DB_CONN_MAX_LIFETIME", "2m")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, DriverSQLite, cfg.DBDriver)
		assert.Equal(t, "9000", cfg.ServerPort)
		assert.Equal(t, 2*time.Minute, cfg.DBConnMaxLifetime)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	})

	t.Run("DB_DSN fallback", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("DB_DSN", "host=localhost dbname=portfolio")
		t.Setenv("SESSION_SECRET", "s3cret")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "host=localhost dbname=portfolio", cfg.DBDSN)
	})

	t.Run("missing session secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/portfolio")
		t.Setenv("SESSION_SECRET", "")

		_, err := Load()
		assert.EqualError(t, err, "SESSION_SECRET is not set")
	})

	t.Run("bare number durations are seconds", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "x")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("DB_CONN_MAX_LIFETIME", "300")
		t.Setenv("TOKEN_TTL", "90")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 300*time.Second, cfg.DBConnMaxLifetime)
		assert.Equal(t, 90*time.Second, cfg.TokenTTL)
		assert.Equal(t, 60*time.Second, cfg.DBConnMaxIdleTime)
		assert.Equal(t, 7*24*time.Hour, cfg.SessionMaxAge)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "x")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("DB_CONN_MAX_IDLE_TIME", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_CONN_MAX_IDLE_TIME")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "x")
		t.Setenv("SESSION_SECRET", "s3cret")
		t.Setenv("DB_DRIVER", "oracle")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDuration(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{raw: "300", want: 300 * time.Second},
		{raw: " 45 ", want: 45 * time.Second},
		{raw: "2m", want: 2 * time.Minute},
		{raw: "1h30m", want: 90 * time.Minute},
		{raw: "-5", wantErr: true},
		{raw: "-1s", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "ten", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := duration(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
