package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"fleet/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectionString builds a lib/pq key-value DSN.
func ConnectionString(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf("host=%v port=%v user=%v password=%v dbname=%v sslmode=%v",
		host, port, user, password, dbName, sslMode)
}

// Open connects to PostgreSQL through lib/pq and wraps the pool with gorm.
func Open(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return db, nil
}

// Migrate applies the embedded schema migrations over a short-lived connection.
func Migrate(dsn string) (bool, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return false, fmt.Errorf("open database: %w", err)
	}
	return migrations.Up(sqlDB)
}

// MigrateDown reverts every applied migration.
func MigrateDown(dsn string) error {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	return migrations.Down(sqlDB)
}
