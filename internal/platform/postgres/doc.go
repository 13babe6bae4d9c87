// Package postgres provides PostgreSQL-specific implementations of the store
// interfaces defined in internal/store, plus the embedded goose migrations
// that create the users, posts and comments tables.
//
// Driver errors are translated to store sentinels by MapError so callers
// never inspect pgconn codes.
package postgres
