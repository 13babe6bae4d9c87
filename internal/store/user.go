package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/blog-api/internal/domain"
)

// UserStore is the credential store: persistence for user records.
type UserStore interface {
	// Create saves a new user and assigns user.ID.
	// Returns ErrUsernameExists if the username is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by id.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// HasAdmin reports whether at least one admin account exists.
	HasAdmin(ctx context.Context) (bool, error)

	// DeleteByUsername removes a user together with their posts and comments.
	// Returns ErrUserNotFound if the user does not exist.
	DeleteByUsername(ctx context.Context, username string) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
