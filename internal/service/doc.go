// Package service contains the application use cases: registration and
// login, post publishing, and commenting. Services depend on the store
// interfaces, the auth package and the login limiter, never on a concrete
// database implementation.
//
// Ownership checks that precede a write run inside store.RunInTransaction
// and lock the target row, so the check and the write see the same state.
package service
