package auth

import "context"

// Identity is the authenticated principal carried by a verified token.
type Identity struct {
	UserID  int64
	IsAdmin bool
}

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	// Issue creates a signed token for the user.
	Issue(ctx context.Context, userID int64, isAdmin bool) (string, error)

	// Verify checks the token's signature and expiry and returns the
	// identity it encodes. Errors wrap ErrInvalidToken.
	Verify(ctx context.Context, token string) (*Identity, error)
}
