// Package auth holds the password hasher and the session token service.
//
// Tokens are HS256 JWTs carrying the user id and admin flag. They are not
// stored server-side and cannot be revoked before they expire.
package auth
