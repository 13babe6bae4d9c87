package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing
type MockTokenService struct {
	// IssueFn allows test cases to mock the Issue behavior
	IssueFn func(ctx context.Context, userID int64, isAdmin bool) (string, error)

	// VerifyFn allows test cases to mock the Verify behavior
	VerifyFn func(ctx context.Context, token string) (*auth.Identity, error)

	// Default values used when functions aren't explicitly defined
	Token     string
	Err       error
	Identity  *auth.Identity
	VerifyErr error
}

// Issue implements the auth.TokenService interface
func (m *MockTokenService) Issue(ctx context.Context, userID int64, isAdmin bool) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, userID, isAdmin)
	}
	return m.Token, m.Err
}

// Verify implements the auth.TokenService interface
func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Identity, error) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	return m.Identity, m.VerifyErr
}
