package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength bounds comment bodies.
const MaxCommentLength = 5000

// Comment is a reply left by a user on a post.
type Comment struct {
	ID             int64     `json:"id"`
	PostID         int64     `json:"post_id"`
	UserID         int64     `json:"user_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewComment creates an unsaved comment by userID on postID.
func NewComment(postID, userID int64, content string) (*Comment, error) {
	now := time.Now().UTC()
	comment := &Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := comment.Validate(); err != nil {
		return nil, err
	}

	return comment, nil
}

// Validate checks ids and content.
func (c *Comment) Validate() error {
	var errs ValidationErrors

	if c.PostID <= 0 {
		errs = append(errs, NewValidationError("post_id", "must be a positive integer", ErrInvalidID))
	}
	if c.UserID <= 0 {
		errs = append(errs, NewValidationError("user_id", "must be a positive integer", ErrInvalidID))
	}
	if err := ValidateCommentContent(c.Content); err != nil {
		errs = append(errs, err)
	}

	return errs.errOrNil()
}

// ValidateCommentContent rejects blank or oversized comment bodies.
func ValidateCommentContent(content string) *ValidationError {
	if strings.TrimSpace(content) == "" {
		return NewValidationError("content", "cannot be empty", ErrEmptyContent)
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return NewValidationError("content", "must be at most 5000 characters", nil)
	}
	return nil
}
