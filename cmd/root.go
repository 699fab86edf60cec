package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"time"

	"courier/internal/adapters/in/http"
	"courier/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Execute runs the courierd command line until ctx is cancelled or the command returns.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "courierd",
		Short:         "Courier dispatch service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newServeCommand(), newMigrateCommand())
	return rootCmd
}

// runtimeDeps are built once per command from the environment.
type runtimeDeps struct {
	cfg    Config
	zap    *zap.Logger
	logger *slog.Logger
}

func loadRuntime() (runtimeDeps, error) {
	cfg, err := LoadConfigFromEnv()
	if err != nil {
		return runtimeDeps{}, fmt.Errorf("load config: %w", err)
	}
	zl, sl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return runtimeDeps{}, fmt.Errorf("build logger: %w", err)
	}
	return runtimeDeps{cfg: cfg, zap: zl, logger: sl}, nil
}

func newServeCommand() *cobra.Command {
	var autoMigrate bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the scheduled jobs.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := loadRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = deps.zap.Sync() }()

			return serve(cmd.Context(), deps, autoMigrate)
		},
	}
	serveCmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply database migrations before serving")
	return serveCmd
}

func serve(ctx context.Context, deps runtimeDeps, autoMigrate bool) error {
	db, err := OpenDatabase(deps.cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeDatabase(db) }()

	if autoMigrate {
		if err := MigrateDatabase(deps.cfg, db, deps.cfg.MigrationsDir, deps.zap); err != nil {
			return err
		}
	}

	root := NewCompositionRoot(deps.cfg, db, deps.logger)

	e, err := http.NewRouter(ctx, root.CreateHTTPServer(), http.RouterConfig{
		Logger: deps.logger,
		Debug:  deps.cfg.LogLevel == "debug",
	})
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	if deps.cfg.JWTSecret == "" {
		deps.logger.Warn("JWT_SECRET is empty, API authentication is disabled")
	}

	serverErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", deps.cfg.HTTPPort)
		deps.logger.Info("HTTP server listening", "addr", addr)
		serverErr <- e.Start(addr)
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	deps.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newMigrateCommand() *cobra.Command {
	var dir string

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit.",
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, err := loadRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = deps.zap.Sync() }()

			if dir == "" {
				dir = deps.cfg.MigrationsDir
			}

			db, err := OpenDatabase(deps.cfg)
			if err != nil {
				return err
			}
			defer func() { _ = closeDatabase(db) }()

			if err := MigrateDatabase(deps.cfg, db, dir, deps.zap); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}
			return nil
		},
	}
	migrateCmd.Flags().StringVar(&dir, "dir", "", "Directory containing the migration files (default MIGRATIONS_DIR)")
	return migrateCmd
}
