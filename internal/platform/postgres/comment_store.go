package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the CommentStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

// Ensure PostgresCommentStore implements store.CommentStore interface
var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentSelect = `
	SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at, c.updated_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
`

func scanComment(row rowScanner) (*domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(
		&c.ID,
		&c.PostID,
		&c.UserID,
		&c.AuthorUsername,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements store.CommentStore.Create. It fills in the new ID and the
// commenter's username. A missing post or user surfaces as store.ErrInvalidEntity.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := comment.Validate(); err != nil {
		log.Warn("comment validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		WITH inserted AS (
			INSERT INTO comments (post_id, user_id, content, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id
		)
		SELECT i.id, u.username
		FROM inserted i
		JOIN users u ON u.id = i.user_id
	`
	err := s.db.QueryRowContext(ctx, query,
		comment.PostID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	).Scan(&comment.ID, &comment.AuthorUsername)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during comment creation",
				slog.Int64("post_id", comment.PostID),
				slog.Int64("user_id", comment.UserID))
		} else {
			log.Error("failed to create comment", slog.String("error", err.Error()))
		}
		return wrapError("comment", "create", err, nil)
	}

	log.Info("comment created successfully",
		slog.Int64("comment_id", comment.ID),
		slog.Int64("post_id", comment.PostID))
	return nil
}

// GetByIDForUpdate implements store.CommentStore.GetByIDForUpdate.
func (s *PostgresCommentStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := scanComment(s.db.QueryRowContext(ctx, commentSelect+` WHERE c.id = $1 FOR UPDATE OF c`, id))
	if err != nil {
		mapped := wrapError("comment", "get", err, store.ErrCommentNotFound)
		if !store.IsNotFoundError(mapped) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get comment",
				slog.String("error", err.Error()),
				slog.Int64("comment_id", id))
		}
		return nil, mapped
	}
	return comment, nil
}

// ListByPost implements store.CommentStore.ListByPost.
func (s *PostgresCommentStore) ListByPost(
	ctx context.Context,
	postID int64,
	page domain.PageRequest,
) ([]*domain.Comment, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("post_id", postID))

	var total int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE post_id = $1`, postID).Scan(&total)
	if err != nil {
		log.Error("failed to count comments", slog.String("error", err.Error()))
		return nil, 0, wrapError("comment", "count", err, nil)
	}

	query := commentSelect + `
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := s.db.QueryContext(ctx, query, postID, page.Limit, page.Offset())
	if err != nil {
		log.Error("failed to list comments", slog.String("error", err.Error()))
		return nil, 0, wrapError("comment", "list", err, nil)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*domain.Comment, 0, page.Limit)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			log.Error("failed to scan comment row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating comment rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return comments, total, nil
}

// UpdateContent implements store.CommentStore.UpdateContent.
func (s *PostgresCommentStore) UpdateContent(ctx context.Context, id int64, content string) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := domain.ValidateCommentContent(content); err != nil {
		return nil, err
	}

	query := `
		WITH updated AS (
			UPDATE comments SET content = $1, updated_at = $2
			WHERE id = $3
			RETURNING id, post_id, user_id, content, created_at, updated_at
		)
		SELECT c.id, c.post_id, c.user_id, u.username, c.content, c.created_at, c.updated_at
		FROM updated c
		JOIN users u ON u.id = c.user_id
	`
	comment, err := scanComment(s.db.QueryRowContext(ctx, query, content, time.Now().UTC(), id))
	if err != nil {
		mapped := wrapError("comment", "update", err, store.ErrCommentNotFound)
		if !store.IsNotFoundError(mapped) {
			log.Error("failed to update comment",
				slog.String("error", err.Error()),
				slog.Int64("comment_id", id))
		}
		return nil, mapped
	}

	log.Debug("comment updated successfully", slog.Int64("comment_id", id))
	return comment, nil
}

// Delete implements store.CommentStore.Delete.
func (s *PostgresCommentStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete comment",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return wrapError("comment", "delete", err, store.ErrCommentNotFound)
	}

	if err := CheckRowsAffected(result, store.ErrCommentNotFound); err != nil {
		return err
	}

	log.Info("comment deleted successfully", slog.Int64("comment_id", id))
	return nil
}

// WithTx implements store.CommentStore.WithTx.
func (s *PostgresCommentStore) WithTx(tx *sql.Tx) store.CommentStore {
	return &PostgresCommentStore{db: tx, logger: s.logger}
}
