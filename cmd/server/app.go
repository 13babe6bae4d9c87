package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/platform/throttle"
	"github.com/phrazzld/blog-api/internal/service"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/redis/go-redis/v9"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB
	redis  *redis.Client // nil when login throttling is disabled

	tokens         auth.TokenService
	userService    service.UserService
	postService    service.PostService
	commentService service.CommentService
}

// newApplication creates a new application instance with all dependencies initialized.
// Configuration, logger and database must be established beforehand.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokens, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	hasher := auth.NewBcryptHasher()

	userStore := postgres.NewPostgresUserStore(db, logger)
	postStore := postgres.NewPostgresPostStore(db, logger)
	commentStore := postgres.NewPostgresCommentStore(db, logger)

	limiter, err := app.newLoginLimiter(ctx)
	if err != nil {
		return nil, err
	}

	app.userService, err = service.NewUserService(userStore, hasher, app.tokens, limiter, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.postService, err = service.NewPostService(db, postStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	app.commentService, err = service.NewCommentService(db, postStore, commentStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %w", err)
	}

	return app, nil
}

// newLoginLimiter connects to Redis when throttling is configured and falls
// back to a limiter that never blocks otherwise.
func (app *application) newLoginLimiter(ctx context.Context) (throttle.LoginLimiter, error) {
	if !app.config.RateLimit.Enabled() {
		app.logger.Info("Login throttling disabled: no Redis URL configured")
		return throttle.NoopLimiter{}, nil
	}

	client, err := throttle.NewClient(ctx, app.config.RateLimit.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	app.redis = client

	opts := throttle.OptionsFromConfig(app.config.RateLimit)
	app.logger.Info("Login throttling enabled",
		"max_attempts", opts.MaxAttempts,
		"cooldown", opts.Cooldown.String(),
		"throttle_by_ip", opts.ThrottleByIP)
	return throttle.NewRedisLimiter(client, opts), nil
}

// bootstrapAdmin creates the configured admin account on first start.
func (app *application) bootstrapAdmin(ctx context.Context) error {
	username := app.config.Auth.BootstrapAdminUsername
	if username == "" {
		return nil
	}

	created, err := app.userService.EnsureBootstrapAdmin(ctx, username, app.config.Auth.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	if created {
		app.logger.Info("Bootstrap admin created", "username", username)
	}
	return nil
}

// cleanup releases resources owned by the application. The database is
// closed by the caller that opened it.
func (app *application) cleanup() {
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("failed to close redis client", "error", err)
		}
	}
}
