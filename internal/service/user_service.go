package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/platform/throttle"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// UserService provides registration, login and account administration.
type UserService interface {
	// Register validates and stores a new account.
	// Returns domain.ValidationErrors or store.ErrUsernameExists.
	Register(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error)

	// Login checks credentials and issues a session token.
	// Returns ErrInvalidCredentials or ErrTooManyAttempts.
	Login(ctx context.Context, username, password, clientIP string) (string, error)

	// DeleteByUsername removes an account and everything it owns.
	DeleteByUsername(ctx context.Context, username string) error

	// EnsureBootstrapAdmin creates an admin account when none exists.
	// It reports whether an account was created.
	EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error)
}

type userServiceImpl struct {
	users   store.UserStore
	hasher  auth.PasswordHasher
	tokens  auth.TokenService
	limiter throttle.LoginLimiter
	logger  *slog.Logger
}

// NewUserService creates a new UserService.
// A nil limiter disables login throttling.
func NewUserService(
	users store.UserStore,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	limiter throttle.LoginLimiter,
	logger *slog.Logger,
) (UserService, error) {
	if users == nil {
		return nil, domain.NewValidationError("users", "cannot be nil", domain.ErrValidation)
	}
	if hasher == nil {
		return nil, domain.NewValidationError("hasher", "cannot be nil", domain.ErrValidation)
	}
	if tokens == nil {
		return nil, domain.NewValidationError("tokens", "cannot be nil", domain.ErrValidation)
	}
	if limiter == nil {
		limiter = throttle.NoopLimiter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		users:   users,
		hasher:  hasher,
		tokens:  tokens,
		limiter: limiter,
		logger:  logger.With(slog.String("component", "user_service")),
	}, nil
}

// Register implements UserService.Register.
func (s *userServiceImpl) Register(
	ctx context.Context,
	username, password string,
	isAdmin bool,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var errs domain.ValidationErrors
	if err := domain.ValidateUsername(username); err != nil {
		errs = append(errs, err)
	}
	if err := domain.ValidatePassword(password); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		log.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "register", "failed to hash password", err)
	}

	user, err := domain.NewUser(username, hashed, isAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			log.Debug("attempted to register an existing username")
			return nil, err
		}
		log.Error("failed to save user", slog.String("error", err.Error()))
		return nil, NewServiceError("user", "register", "failed to save user", err)
	}

	log.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.Bool("is_admin", user.IsAdmin))
	return user, nil
}

// Login implements UserService.Login.
// Limiter outages are logged and do not block logins.
func (s *userServiceImpl) Login(ctx context.Context, username, password, clientIP string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.limiter.Check(ctx, username, clientIP); err != nil {
		if errors.Is(err, throttle.ErrRateLimited) {
			log.Warn("login attempt rejected by limiter", slog.String("client_ip", clientIP))
			return "", ErrTooManyAttempts
		}
		log.Warn("login limiter unavailable", slog.String("error", err.Error()))
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to look up user for login", slog.String("error", err.Error()))
			return "", NewServiceError("user", "login", "failed to look up user", err)
		}
		s.recordFailure(ctx, log, username, clientIP)
		return "", ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		s.recordFailure(ctx, log, username, clientIP)
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID, user.IsAdmin)
	if err != nil {
		return "", NewServiceError("user", "login", "failed to issue token", err)
	}

	if err := s.limiter.Reset(ctx, username, clientIP); err != nil {
		log.Warn("failed to reset login limiter", slog.String("error", err.Error()))
	}

	log.Info("user logged in", slog.Int64("user_id", user.ID))
	return token, nil
}

func (s *userServiceImpl) recordFailure(ctx context.Context, log *slog.Logger, username, clientIP string) {
	log.Debug("login failed: invalid credentials")
	if err := s.limiter.RecordFailure(ctx, username, clientIP); err != nil {
		log.Warn("failed to record login failure", slog.String("error", err.Error()))
	}
}

// DeleteByUsername implements UserService.DeleteByUsername.
func (s *userServiceImpl) DeleteByUsername(ctx context.Context, username string) error {
	if err := s.users.DeleteByUsername(ctx, username); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		return NewServiceError("user", "delete", "failed to delete user", err)
	}
	return nil
}

// EnsureBootstrapAdmin implements UserService.EnsureBootstrapAdmin.
func (s *userServiceImpl) EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.users.HasAdmin(ctx)
	if err != nil {
		return false, NewServiceError("user", "bootstrap_admin", "failed to check for admins", err)
	}
	if exists {
		log.Debug("admin account already present, skipping bootstrap")
		return false, nil
	}

	if _, err := s.Register(ctx, username, password, true); err != nil {
		return false, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	log.Info("bootstrap admin created", slog.String("username", username))
	return true, nil
}
