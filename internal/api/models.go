package api

// RegisterRequest defines the payload for the user registration endpoint.
// Length limits are enforced by the user service so every rule reports the
// same way.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IsAdmin  *bool  `json:"is_admin"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse defines the successful response of the login endpoint.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a human-readable confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatePostRequest defines the payload for creating a post. The author is
// always the authenticated user.
type CreatePostRequest struct {
	Title       string `json:"title"        validate:"required"`
	Slug        string `json:"slug"         validate:"required"`
	Content     string `json:"content"      validate:"required"`
	IsPublished *bool  `json:"is_published"`
}

// UpdatePostRequest defines a partial post update. Omitted fields are left
// unchanged.
type UpdatePostRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Content     *string `json:"content"`
	IsPublished *bool   `json:"is_published"`
}

// CommentRequest defines the payload for creating or editing a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required"`
}
