package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// Username and password limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
	// MaxPasswordLength is bcrypt's input limit in bytes.
	MaxPasswordLength = 72
)

// Common user validation errors
var (
	ErrInvalidUsername     = errors.New("invalid username")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// User is a registered account. IDs are assigned by the store.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	IsAdmin        bool      `json:"is_admin"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser builds a user from an already hashed password.
func NewUser(username, hashedPassword string, isAdmin bool) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		Username:       strings.TrimSpace(username),
		HashedPassword: hashedPassword,
		IsAdmin:        isAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the fields a user must have before it is persisted.
func (u *User) Validate() error {
	var errs ValidationErrors
	if err := ValidateUsername(u.Username); err != nil {
		errs = append(errs, err)
	}
	if u.HashedPassword == "" {
		errs = append(errs, NewValidationError("password", "cannot be empty", ErrEmptyHashedPassword))
	}
	return errs.errOrNil()
}

// ValidateUsername enforces the username length limits.
func ValidateUsername(username string) *ValidationError {
	n := utf8.RuneCountInString(strings.TrimSpace(username))
	if n < MinUsernameLength || n > MaxUsernameLength {
		return NewValidationError("username", "must be between 3 and 50 characters", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword enforces the plaintext password limits.
func ValidatePassword(password string) *ValidationError {
	if len(password) < MinPasswordLength {
		return NewValidationError("password", "must be at least 6 characters", ErrInvalidPassword)
	}
	if len(password) > MaxPasswordLength {
		return NewValidationError("password", "must be at most 72 bytes", ErrInvalidPassword)
	}
	return nil
}
