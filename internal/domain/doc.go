// Package domain contains the core business entities of the blog: users,
// posts, comments and pagination. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
