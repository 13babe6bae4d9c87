package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostService publishes and manages blog posts.
type PostService interface {
	// ListPublished returns one page of published posts, newest first.
	ListPublished(ctx context.Context, page domain.PageRequest) (*domain.Page[*domain.Post], error)

	// GetPost retrieves a post by id.
	GetPost(ctx context.Context, id int64) (*domain.Post, error)

	// CreatePost stores a new post written by authorID.
	CreatePost(ctx context.Context, authorID int64, title, slug, content string, isPublished bool) (*domain.Post, error)

	// UpdatePost applies update to a post owned by actorID.
	// Returns ErrNotOwned when actorID is not the author.
	UpdatePost(ctx context.Context, actorID, postID int64, update domain.PostUpdate) (*domain.Post, error)

	// DeletePost removes a post regardless of author. Callers gate it on admin rights.
	DeletePost(ctx context.Context, postID int64) error
}

type postServiceImpl struct {
	db     store.TxBeginner
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostService creates a new PostService.
func NewPostService(db store.TxBeginner, posts store.PostStore, logger *slog.Logger) (PostService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if posts == nil {
		return nil, domain.NewValidationError("posts", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		db:     db,
		posts:  posts,
		logger: logger.With(slog.String("component", "post_service")),
	}, nil
}

// ListPublished implements PostService.ListPublished.
func (s *postServiceImpl) ListPublished(
	ctx context.Context,
	page domain.PageRequest,
) (*domain.Page[*domain.Post], error) {
	posts, total, err := s.posts.ListPublished(ctx, page)
	if err != nil {
		return nil, NewServiceError("post", "list", "failed to list posts", err)
	}
	return &domain.Page[*domain.Post]{
		Data:       posts,
		Pagination: domain.NewPagination(page, total),
	}, nil
}

// GetPost implements PostService.GetPost.
func (s *postServiceImpl) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, err
		}
		return nil, NewServiceError("post", "get", "failed to retrieve post", err)
	}
	return post, nil
}

// CreatePost implements PostService.CreatePost.
func (s *postServiceImpl) CreatePost(
	ctx context.Context,
	authorID int64,
	title, slug, content string,
	isPublished bool,
) (*domain.Post, error) {
	post, err := domain.NewPost(authorID, title, slug, content, isPublished)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Create(ctx, post); err != nil {
		switch {
		case errors.Is(err, store.ErrSlugExists):
			return nil, err
		case errors.Is(err, store.ErrInvalidEntity):
			// The author was deleted after the token was issued.
			return nil, store.ErrUserNotFound
		}
		return nil, NewServiceError("post", "create", "failed to save post", err)
	}

	// Reads carry the author's username; fill it in for the response.
	return s.GetPost(ctx, post.ID)
}

// UpdatePost implements PostService.UpdatePost.
func (s *postServiceImpl) UpdatePost(
	ctx context.Context,
	actorID, postID int64,
	update domain.PostUpdate,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Post
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txPosts := s.posts.WithTx(tx)

		post, err := txPosts.GetByIDForUpdate(ctx, postID)
		if err != nil {
			return err
		}
		if post.AuthorID != actorID {
			log.Warn("user attempted to update a post they do not own",
				slog.Int64("user_id", actorID),
				slog.Int64("post_id", postID))
			return ErrNotOwned
		}

		if err := update.Apply(post); err != nil {
			return err
		}
		if err := txPosts.Update(ctx, post); err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		if isExpected(err) {
			return nil, err
		}
		return nil, NewServiceError("post", "update", "failed to update post", err)
	}

	return updated, nil
}

// DeletePost implements PostService.DeletePost.
func (s *postServiceImpl) DeletePost(ctx context.Context, postID int64) error {
	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return err
		}
		return NewServiceError("post", "delete", "failed to delete post", err)
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("post deleted", slog.Int64("post_id", postID))
	return nil
}

// isExpected reports errors that callers map to a client-facing status
// and that should pass through unwrapped.
func isExpected(err error) bool {
	return errors.Is(err, ErrNotOwned) ||
		errors.Is(err, domain.ErrValidation) ||
		store.IsNotFoundError(err) ||
		store.IsDuplicateError(err)
}
