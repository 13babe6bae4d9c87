package auth

import (
	"errors"
	"fmt"
)

// Token verification errors. Each specific error wraps ErrInvalidToken so
// callers that do not care about the reason can match the whole family.
var (
	// ErrInvalidToken is the parent of every verification failure.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrMalformedToken indicates the token could not be parsed or lacks required claims.
	ErrMalformedToken = fmt.Errorf("%w: malformed token", ErrInvalidToken)

	// ErrInvalidSignature indicates the signature does not match or the algorithm is not HS256.
	ErrInvalidSignature = fmt.Errorf("%w: signature mismatch", ErrInvalidToken)

	// ErrExpiredToken indicates the token is past its exp claim.
	ErrExpiredToken = fmt.Errorf("%w: token has expired", ErrInvalidToken)
)

// ErrWeakSecret is returned when the configured signing secret is too short.
var ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
