// Package db opens the GORM store and runs schema migration.
package db

import (
	"fmt"
	"log/slog"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"microblog_backend/internal/feature/auth/adapters"
	authentity "microblog_backend/internal/feature/auth/domain/entity"
	postentity "microblog_backend/internal/feature/posts/domain/entity"
)

const (
	connectDeadline = 60 * time.Second
	connectRetry    = 3 * time.Second
)

// Open connects to the store selected by driver. Networked drivers are
// retried for up to a minute, since the database may still be starting.
func Open(driver, dsn string) (*gorm.DB, error) {
	dial, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	if driver == "sqlite" {
		return gorm.Open(dial, &gorm.Config{})
	}

	deadline := time.Now().Add(connectDeadline)
	for {
		db, err := gorm.Open(dial, &gorm.Config{})
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %s: %w", connectDeadline, err)
		}
		slog.Warn("DB connect failed, retrying", "driver", driver, "error", err)
		time.Sleep(connectRetry)
	}
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "mysql":
		return gmysql.Open(dsn), nil
	case "postgres":
		return gpostgres.Open(dsn), nil
	case "sqlite":
		return gsqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// AutoMigrate creates or updates the users, sessions and posts tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&authentity.User{},
		&adapters.SessionModel{},
		&postentity.Post{},
	)
}
