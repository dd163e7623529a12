package database

import (
	"context"
	"fmt"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryDelay = 2 * time.Second

// Open connects to the configured store, retrying while it comes up,
// and tunes the connection pool.
func Open(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	for i := 1; i <= cfg.DBConnectAttempts; i++ {
		log.Info().Int("attempt", i).Int("max_attempts", cfg.DBConnectAttempts).Str("driver", cfg.DBDriver).
			Msg("connecting to database")

		db, err = gorm.Open(dialector(cfg), &gorm.Config{Logger: NewGormLogger(log)})
		if err == nil {
			err = ping(db)
		}
		if err == nil {
			break
		}

		log.Warn().Err(err).Msg("failed to connect to database")
		if i < cfg.DBConnectAttempts {
			time.Sleep(retryDelay)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect to db after %d attempts: %w", cfg.DBConnectAttempts, err)
	}

	if err := configurePool(db, cfg); err != nil {
		return nil, err
	}

	log.Info().Msg("connected to database")
	return db, nil
}

func dialector(cfg *config.Config) gorm.Dialector {
	if cfg.DBDriver == config.DriverSQLite {
		return sqlite.Open(cfg.DBDSN)
	}
	return postgres.Open(cfg.DBDSN)
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// configurePool recycles connections periodically so server-side idle
// timeouts never hand a dead connection to a request.
func configurePool(db *gorm.DB, cfg *config.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	if cfg.DBMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	}
	if cfg.DBMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.DBConnMaxIdleTime)
	return nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
