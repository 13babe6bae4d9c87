// Package main implements the entry point for the blog API server.
//
// Besides serving HTTP, the binary runs schema migrations on demand:
//
//	server -migrate up|down|status|version
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/blog-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command ("+postgres.MigrateUp+"|"+postgres.MigrateDown+"|"+
			postgres.MigrateStatus+"|"+postgres.MigrateVersion+") and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		fmt.Fprintf(os.Stderr, "blog-api: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and either executes a
// migration command or serves HTTP until ctx is canceled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	if migrateCmd != "" {
		return postgres.Migrate(ctx, db, migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db, postgres.MigrateUp, logger); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	app, err := newApplication(ctx, cfg, logger, db)
	if err != nil {
		return err
	}
	defer app.cleanup()

	if err := app.bootstrapAdmin(ctx); err != nil {
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
