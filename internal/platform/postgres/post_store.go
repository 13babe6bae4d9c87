package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

const postSelect = `
	SELECT p.id, p.author_id, u.username, p.title, p.slug, p.content,
	       p.is_published, p.created_at, p.updated_at
	FROM posts p
	JOIN users u ON u.id = p.author_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&p.AuthorUsername,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.IsPublished,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create implements store.PostStore.Create.
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO posts (author_id, title, slug, content, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		post.AuthorID,
		post.Title,
		post.Slug,
		post.Content,
		post.IsPublished,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("slug already taken", slog.String("slug", post.Slug))
		} else {
			log.Error("failed to create post",
				slog.String("error", err.Error()),
				slog.Int64("author_id", post.AuthorID))
		}
		return wrapError("post", "create", err, nil)
	}

	log.Info("post created successfully",
		slog.Int64("post_id", post.ID),
		slog.Int64("author_id", post.AuthorID))
	return nil
}

// GetByID implements store.PostStore.GetByID.
func (s *PostgresPostStore) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	return s.getOne(ctx, postSelect+` WHERE p.id = $1`, id)
}

// GetByIDForUpdate implements store.PostStore.GetByIDForUpdate.
func (s *PostgresPostStore) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Post, error) {
	return s.getOne(ctx, postSelect+` WHERE p.id = $1 FOR UPDATE OF p`, id)
}

func (s *PostgresPostStore) getOne(ctx context.Context, query string, id int64) (*domain.Post, error) {
	post, err := scanPost(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		mapped := wrapError("post", "get", err, store.ErrPostNotFound)
		if !store.IsNotFoundError(mapped) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to get post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
		}
		return nil, mapped
	}
	return post, nil
}

// ListPublished implements store.PostStore.ListPublished.
func (s *PostgresPostStore) ListPublished(
	ctx context.Context,
	page domain.PageRequest,
) ([]*domain.Post, int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE is_published`).Scan(&total); err != nil {
		log.Error("failed to count published posts", slog.String("error", err.Error()))
		return nil, 0, wrapError("post", "count", err, nil)
	}

	query := postSelect + `
		WHERE p.is_published
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := s.db.QueryContext(ctx, query, page.Limit, page.Offset())
	if err != nil {
		log.Error("failed to list published posts", slog.String("error", err.Error()))
		return nil, 0, wrapError("post", "list", err, nil)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0, page.Limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, 0, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating post rows", slog.String("error", err.Error()))
		return nil, 0, err
	}

	return posts, total, nil
}

// Update implements store.PostStore.Update.
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := post.Validate(); err != nil {
		log.Warn("post validation failed during update", slog.String("error", err.Error()))
		return err
	}

	query := `
		UPDATE posts
		SET title = $1, slug = $2, content = $3, is_published = $4, updated_at = $5
		WHERE id = $6
	`
	result, err := s.db.ExecContext(ctx, query,
		post.Title,
		post.Slug,
		post.Content,
		post.IsPublished,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("slug already taken", slog.String("slug", post.Slug))
		} else {
			log.Error("failed to update post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", post.ID))
		}
		return wrapError("post", "update", err, store.ErrPostNotFound)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Debug("post updated successfully", slog.Int64("post_id", post.ID))
	return nil
}

// Delete implements store.PostStore.Delete.
func (s *PostgresPostStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return wrapError("post", "delete", err, store.ErrPostNotFound)
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		return err
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return nil
}

// WithTx implements store.PostStore.WithTx.
func (s *PostgresPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{db: tx, logger: s.logger}
}
