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

// CommentService manages comments on posts.
type CommentService interface {
	// ListComments returns one page of a post's comments, newest first.
	ListComments(ctx context.Context, postID int64, page domain.PageRequest) (*domain.Page[*domain.Comment], error)

	// AddComment stores a comment by userID. Returns store.ErrPostNotFound for a missing post.
	AddComment(ctx context.Context, userID, postID int64, content string) (*domain.Comment, error)

	// EditComment replaces the content of a comment owned by actorID.
	EditComment(ctx context.Context, actorID, commentID int64, content string) (*domain.Comment, error)

	// DeleteComment removes a comment owned by actorID.
	DeleteComment(ctx context.Context, actorID, commentID int64) error
}

type commentServiceImpl struct {
	db       store.TxBeginner
	posts    store.PostStore
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(
	db store.TxBeginner,
	posts store.PostStore,
	comments store.CommentStore,
	logger *slog.Logger,
) (CommentService, error) {
	if db == nil {
		return nil, domain.NewValidationError("db", "cannot be nil", domain.ErrValidation)
	}
	if posts == nil {
		return nil, domain.NewValidationError("posts", "cannot be nil", domain.ErrValidation)
	}
	if comments == nil {
		return nil, domain.NewValidationError("comments", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &commentServiceImpl{
		db:       db,
		posts:    posts,
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

// ListComments implements CommentService.ListComments.
func (s *commentServiceImpl) ListComments(
	ctx context.Context,
	postID int64,
	page domain.PageRequest,
) (*domain.Page[*domain.Comment], error) {
	comments, total, err := s.comments.ListByPost(ctx, postID, page)
	if err != nil {
		return nil, NewServiceError("comment", "list", "failed to list comments", err)
	}
	return &domain.Page[*domain.Comment]{
		Data:       comments,
		Pagination: domain.NewPagination(page, total),
	}, nil
}

// AddComment implements CommentService.AddComment.
func (s *commentServiceImpl) AddComment(
	ctx context.Context,
	userID, postID int64,
	content string,
) (*domain.Comment, error) {
	comment, err := domain.NewComment(postID, userID, content)
	if err != nil {
		return nil, err
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			return nil, err
		}
		return nil, NewServiceError("comment", "create", "failed to look up post", err)
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			// Post deleted between the lookup and the insert.
			return nil, store.ErrPostNotFound
		}
		return nil, NewServiceError("comment", "create", "failed to save comment", err)
	}

	return comment, nil
}

// EditComment implements CommentService.EditComment.
func (s *commentServiceImpl) EditComment(
	ctx context.Context,
	actorID, commentID int64,
	content string,
) (*domain.Comment, error) {
	if err := domain.ValidateCommentContent(content); err != nil {
		return nil, err
	}

	var updated *domain.Comment
	err := s.withOwnedComment(ctx, actorID, commentID, func(ctx context.Context, txComments store.CommentStore) error {
		c, err := txComments.UpdateContent(ctx, commentID, content)
		updated = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteComment implements CommentService.DeleteComment.
func (s *commentServiceImpl) DeleteComment(ctx context.Context, actorID, commentID int64) error {
	return s.withOwnedComment(ctx, actorID, commentID, func(ctx context.Context, txComments store.CommentStore) error {
		return txComments.Delete(ctx, commentID)
	})
}

// withOwnedComment locks the comment, checks that actorID wrote it and runs
// fn in the same transaction.
func (s *commentServiceImpl) withOwnedComment(
	ctx context.Context,
	actorID, commentID int64,
	fn func(ctx context.Context, txComments store.CommentStore) error,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txComments := s.comments.WithTx(tx)

		comment, err := txComments.GetByIDForUpdate(ctx, commentID)
		if err != nil {
			return err
		}
		if comment.UserID != actorID {
			log.Warn("user attempted to modify a comment they do not own",
				slog.Int64("user_id", actorID),
				slog.Int64("comment_id", commentID))
			return ErrNotOwned
		}
		return fn(ctx, txComments)
	})
	if err != nil {
		if isExpected(err) {
			return err
		}
		return NewServiceError("comment", "modify", "failed to modify comment", err)
	}
	return nil
}
