// Package db owns the lifecycle of the persistence client. The connection is
// constructed once at startup and handed to the packages that need it; there
// is no package-level handle.
package db

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a gorm connection with pool settings suitable for a small
// app-server deployment and a verbose logger that surfaces slow queries.
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL is empty")
	}

	lg := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             100 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	conn, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: lg,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return conn, nil
}

// Close releases the underlying connection pool. Called during graceful
// shutdown.
func Close(conn *gorm.DB) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// EnsureSchema creates the named Postgres schema when it does not exist yet.
func EnsureSchema(conn *gorm.DB, schema string) error {
	return conn.Exec(`CREATE SCHEMA IF NOT EXISTS "` + schema + `"`).Error
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, used to map duplicate emails to 409 responses.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
