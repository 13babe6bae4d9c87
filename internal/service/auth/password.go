package auth

import "golang.org/x/crypto/bcrypt"

// BcryptCost is the fixed work factor of every stored password digest.
const BcryptCost = 10

// PasswordHasher turns plaintext passwords into salted digests and checks
// candidates against them.
type PasswordHasher interface {
	// Hash returns a salted digest of plaintext. It fails only for inputs
	// bcrypt rejects, such as passwords longer than 72 bytes.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches digest. A malformed digest
	// is a mismatch.
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

var _ PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a BcryptHasher hashing at BcryptCost.
func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: BcryptCost}
}

// Hash implements PasswordHasher.
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify implements PasswordHasher.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
