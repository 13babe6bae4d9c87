// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing business rules to remain
// independent of specific database technologies or persistence details.
//
// Implementations report failures with the typed errors in errors.go so
// callers never inspect driver-specific error codes.
package store
