// Package db opens the Postgres connection pool and runs schema migration.
package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	orderentity "storefront_backend/internal/feature/orders/domain/entity"
	productentity "storefront_backend/internal/feature/products/domain/entity"
	userentity "storefront_backend/internal/feature/users/domain/entity"
	"storefront_backend/internal/platform/config"
)

const retryInterval = 3 * time.Second

// Opener abstracts gorm.Open so connection retry logic is testable without a
// database.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN renders a libpq-style DSN from the configuration.
func BuildDSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// ConnectWithRetry keeps attempting to open a connection until it succeeds
// or the timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		gdb, err := open(dsn)
		if err == nil {
			return gdb, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect after %s: %w", timeout, err)
		}
		time.Sleep(retryInterval)
	}
}

// Open connects to Postgres and applies the pool sizing from configuration.
// The returned handle is the process-wide storage client: constructed here,
// injected into repositories, closed via Close at shutdown.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gdb, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return gdb, nil
}

// Migrate creates or updates the four storefront tables. Gated by
// RUN_MIGRATIONS in main; production schemas are expected to exist already.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&userentity.User{},
		&productentity.Product{},
		&orderentity.Order{},
		&orderentity.OrderProduct{},
	)
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
