// Package pgtest starts a disposable PostgreSQL container with the fleet
// schema applied. It is used by integration tests only.
package pgtest

import (
	"context"
	"fmt"
	"time"

	pgadapter "fleet/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

type Database struct {
	DB        *gorm.DB
	DSN       string
	container *postgres.PostgresContainer
}

func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	d := &Database{container: container}

	d.DSN, err = container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return d, err
	}

	if _, err = pgadapter.Migrate(d.DSN); err != nil {
		return d, err
	}

	d.DB, err = pgadapter.Open(d.DSN)
	return d, err
}

// Truncate empties every fleet table.
func (d *Database) Truncate() error {
	return d.DB.Exec("TRUNCATE TABLE orders, vehicles, zones").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.container == nil {
		return nil
	}
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return d.container.Terminate(ctx)
}
