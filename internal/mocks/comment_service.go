package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockCommentService implements service.CommentService for testing
type MockCommentService struct {
	ListCommentsFn  func(ctx context.Context, postID int64, page domain.PageRequest) (*domain.Page[*domain.Comment], error)
	AddCommentFn    func(ctx context.Context, userID, postID int64, content string) (*domain.Comment, error)
	EditCommentFn   func(ctx context.Context, actorID, commentID int64, content string) (*domain.Comment, error)
	DeleteCommentFn func(ctx context.Context, actorID, commentID int64) error
}

// ListComments implements the service.CommentService interface
func (m *MockCommentService) ListComments(
	ctx context.Context,
	postID int64,
	page domain.PageRequest,
) (*domain.Page[*domain.Comment], error) {
	if m.ListCommentsFn != nil {
		return m.ListCommentsFn(ctx, postID, page)
	}
	return &domain.Page[*domain.Comment]{
		Data:       []*domain.Comment{},
		Pagination: domain.NewPagination(page, 0),
	}, nil
}

// AddComment implements the service.CommentService interface
func (m *MockCommentService) AddComment(
	ctx context.Context,
	userID, postID int64,
	content string,
) (*domain.Comment, error) {
	if m.AddCommentFn != nil {
		return m.AddCommentFn(ctx, userID, postID, content)
	}
	return &domain.Comment{ID: 1, PostID: postID, UserID: userID, Content: content}, nil
}

// EditComment implements the service.CommentService interface
func (m *MockCommentService) EditComment(
	ctx context.Context,
	actorID, commentID int64,
	content string,
) (*domain.Comment, error) {
	if m.EditCommentFn != nil {
		return m.EditCommentFn(ctx, actorID, commentID, content)
	}
	return nil, store.ErrCommentNotFound
}

// DeleteComment implements the service.CommentService interface
func (m *MockCommentService) DeleteComment(ctx context.Context, actorID, commentID int64) error {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, actorID, commentID)
	}
	return nil
}
