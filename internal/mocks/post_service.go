package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockPostService implements service.PostService for testing.
// Unset functions report store.ErrPostNotFound for lookups and succeed otherwise.
type MockPostService struct {
	ListPublishedFn func(ctx context.Context, page domain.PageRequest) (*domain.Page[*domain.Post], error)
	GetPostFn       func(ctx context.Context, id int64) (*domain.Post, error)
	CreatePostFn    func(ctx context.Context, authorID int64, title, slug, content string, isPublished bool) (*domain.Post, error)
	UpdatePostFn    func(ctx context.Context, actorID, postID int64, update domain.PostUpdate) (*domain.Post, error)
	DeletePostFn    func(ctx context.Context, id int64) error
}

// ListPublished implements the service.PostService interface
func (m *MockPostService) ListPublished(
	ctx context.Context,
	page domain.PageRequest,
) (*domain.Page[*domain.Post], error) {
	if m.ListPublishedFn != nil {
		return m.ListPublishedFn(ctx, page)
	}
	return &domain.Page[*domain.Post]{
		Data:       []*domain.Post{},
		Pagination: domain.NewPagination(page, 0),
	}, nil
}

// GetPost implements the service.PostService interface
func (m *MockPostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetPostFn != nil {
		return m.GetPostFn(ctx, id)
	}
	return nil, store.ErrPostNotFound
}

// CreatePost implements the service.PostService interface
func (m *MockPostService) CreatePost(
	ctx context.Context,
	authorID int64,
	title, slug, content string,
	isPublished bool,
) (*domain.Post, error) {
	if m.CreatePostFn != nil {
		return m.CreatePostFn(ctx, authorID, title, slug, content, isPublished)
	}
	return &domain.Post{
		ID:          1,
		AuthorID:    authorID,
		Title:       title,
		Slug:        slug,
		Content:     content,
		IsPublished: isPublished,
	}, nil
}

// UpdatePost implements the service.PostService interface
func (m *MockPostService) UpdatePost(
	ctx context.Context,
	actorID, postID int64,
	update domain.PostUpdate,
) (*domain.Post, error) {
	if m.UpdatePostFn != nil {
		return m.UpdatePostFn(ctx, actorID, postID, update)
	}
	return nil, store.ErrPostNotFound
}

// DeletePost implements the service.PostService interface
func (m *MockPostService) DeletePost(ctx context.Context, id int64) error {
	if m.DeletePostFn != nil {
		return m.DeletePostFn(ctx, id)
	}
	return nil
}
