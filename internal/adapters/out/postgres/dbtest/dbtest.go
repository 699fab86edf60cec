// Package dbtest opens throwaway databases for repository tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// OpenSQLite returns an in-memory SQLite database with models migrated. The pool is
// limited to one connection so every query sees the same memory database.
func OpenSQLite(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), gormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models...))
	return db
}

// StartPostgres runs a disposable Postgres container and returns a migrated connection
// together with a function that terminates the container.
func StartPostgres(ctx context.Context, models ...any) (*gorm.DB, func(context.Context) error, error) {
	connStr, terminate, err := StartPostgresContainer(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(postgres.Open(connStr), gormConfig())
	if err != nil {
		_ = terminate(ctx)
		return nil, nil, err
	}
	if err = db.AutoMigrate(models...); err != nil {
		_ = terminate(ctx)
		return nil, nil, err
	}

	return db, terminate, nil
}

// StartPostgresContainer runs an empty Postgres container and returns its connection URL.
func StartPostgresContainer(ctx context.Context) (string, func(context.Context) error, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return "", nil, err
	}
	terminate := func(ctx context.Context) error { return container.Terminate(ctx) }

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = terminate(ctx)
		return "", nil, err
	}
	return connStr, terminate, nil
}
