package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	RegisterFn             func(ctx context.Context, username, password string, isAdmin bool) (*domain.User, error)
	LoginFn                func(ctx context.Context, username, password, clientIP string) (string, error)
	DeleteByUsernameFn     func(ctx context.Context, username string) error
	EnsureBootstrapAdminFn func(ctx context.Context, username, password string) (bool, error)
}

// Register implements the service.UserService interface
func (m *MockUserService) Register(
	ctx context.Context,
	username, password string,
	isAdmin bool,
) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, password, isAdmin)
	}
	return &domain.User{ID: 1, Username: username, IsAdmin: isAdmin}, nil
}

// Login implements the service.UserService interface
func (m *MockUserService) Login(ctx context.Context, username, password, clientIP string) (string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password, clientIP)
	}
	return "mock-token", nil
}

// DeleteByUsername implements the service.UserService interface
func (m *MockUserService) DeleteByUsername(ctx context.Context, username string) error {
	if m.DeleteByUsernameFn != nil {
		return m.DeleteByUsernameFn(ctx, username)
	}
	return nil
}

// EnsureBootstrapAdmin implements the service.UserService interface
func (m *MockUserService) EnsureBootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	if m.EnsureBootstrapAdminFn != nil {
		return m.EnsureBootstrapAdminFn(ctx, username, password)
	}
	return false, nil
}
