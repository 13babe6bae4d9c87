package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/phrazzld/blog-api/internal/service/auth"
)

// Client-facing messages of the auth and role gates.
const (
	MsgNoToken      = "Access denied. No token provided."
	MsgInvalidToken = "Invalid token."
	MsgAdminOnly    = "Access denied. Admin privileges required."
)

const bearerScheme = "Bearer"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate verifies the bearer token from the Authorization header and
// attaches the identity it encodes to the request context. It never consults
// the user store, so a token outlives its user until it expires.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgNoToken)
			return
		}

		identity, err := m.tokens.Verify(r.Context(), token)
		if err != nil {
			logger.FromContext(r.Context()).Debug("token verification failed",
				slog.String("error", redact.Error(err)),
				slog.String("path", r.URL.Path))
			shared.RespondWithError(w, r, http.StatusUnauthorized, MsgInvalidToken)
			return
		}

		ctx := shared.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken returns the credential that follows the Bearer scheme. The
// scheme is matched case-insensitively and the token is the single field
// after it, so "Bearer" alone or "Bearer  x" yields no token. A header with
// another scheme is passed through whole and fails verification.
func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, rest, _ := strings.Cut(header, " ")
	if !strings.EqualFold(scheme, bearerScheme) {
		return header
	}
	token, _, _ := strings.Cut(rest, " ")
	return token
}

// RequireAdmin rejects requests whose identity lacks the admin flag.
// It must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := shared.IdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin {
			shared.RespondWithError(w, r, http.StatusForbidden, MsgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}
