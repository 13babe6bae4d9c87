package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/blog-api/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// Create saves a new comment and assigns comment.ID.
	// Returns ErrInvalidEntity when the post or user does not exist.
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByIDForUpdate retrieves and locks a comment. Only meaningful inside a transaction.
	// Returns ErrCommentNotFound if the comment does not exist.
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Comment, error)

	// ListByPost returns one page of a post's comments, newest first,
	// and the total number of comments on the post.
	ListByPost(ctx context.Context, postID int64, page domain.PageRequest) ([]*domain.Comment, int64, error)

	// UpdateContent replaces a comment's content.
	// Returns ErrCommentNotFound if the comment does not exist.
	UpdateContent(ctx context.Context, id int64, content string) (*domain.Comment, error)

	// Delete removes a comment.
	// Returns ErrCommentNotFound if the comment does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new CommentStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CommentStore
}
