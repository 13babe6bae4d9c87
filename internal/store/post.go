package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/blog-api/internal/domain"
)

// PostStore defines the interface for post data persistence.
type PostStore interface {
	// Create saves a new post and assigns post.ID.
	// Returns ErrSlugExists on a duplicate slug and ErrInvalidEntity when
	// the author does not exist.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post, including its author's username.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Post, error)

	// GetByIDForUpdate is GetByID with a row lock. Only meaningful inside a transaction.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Post, error)

	// ListPublished returns one page of published posts, newest first,
	// and the total number of published posts.
	ListPublished(ctx context.Context, page domain.PageRequest) ([]*domain.Post, int64, error)

	// Update saves title, slug, content and publication state.
	// Returns ErrPostNotFound or ErrSlugExists.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post and its comments.
	// Returns ErrPostNotFound if the post does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new PostStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PostStore
}
