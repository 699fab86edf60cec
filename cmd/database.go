package cmd

import (
	"fmt"
	"time"

	"courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/migration"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenDatabase connects to the database selected by DB_DRIVER.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DBDriverPostgres:
		dialector = gormpostgres.Open(cfg.PostgresDSN())
	case DBDriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == DBDriverSQLite {
		// SQLite allows a single writer.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// MigrateDatabase brings the schema up to date: SQL migrations on Postgres, AutoMigrate
// of the persistence models on SQLite.
func MigrateDatabase(cfg Config, db *gorm.DB, dir string, log *zap.Logger) error {
	if cfg.DBDriver == DBDriverSQLite {
		if err := db.AutoMigrate(postgres.Models()...); err != nil {
			return fmt.Errorf("auto-migrate sqlite: %w", err)
		}
		log.Info("sqlite schema migrated", zap.String("path", cfg.SQLitePath))
		return nil
	}
	return migration.Up(cfg.PostgresURL(), dir, true, log)
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
