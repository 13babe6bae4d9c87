package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Post field limits.
const (
	MaxTitleLength = 200
	MaxSlugLength  = 200
)

// Post is a blog article written by a user.
type Post struct {
	ID             int64     `json:"id"`
	AuthorID       int64     `json:"author_id"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Content        string    `json:"content"`
	IsPublished    bool      `json:"is_published"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewPost creates an unsaved post owned by authorID.
func NewPost(authorID int64, title, slug, content string, isPublished bool) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		AuthorID:    authorID,
		Title:       strings.TrimSpace(title),
		Slug:        strings.TrimSpace(slug),
		Content:     content,
		IsPublished: isPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Validate checks that the post has an author, a title, a slug and content.
func (p *Post) Validate() error {
	var errs ValidationErrors

	if p.AuthorID <= 0 {
		errs = append(errs, NewValidationError("author_id", "must be a positive integer", ErrInvalidID))
	}
	if p.Title == "" || utf8.RuneCountInString(p.Title) > MaxTitleLength {
		errs = append(errs, NewValidationError("title", "is required and must be at most 200 characters", nil))
	}
	if p.Slug == "" || utf8.RuneCountInString(p.Slug) > MaxSlugLength {
		errs = append(errs, NewValidationError("slug", "is required and must be at most 200 characters", nil))
	}
	if strings.TrimSpace(p.Content) == "" {
		errs = append(errs, NewValidationError("content", "cannot be empty", ErrEmptyContent))
	}

	return errs.errOrNil()
}

// PostUpdate carries the optional fields of a partial post update.
type PostUpdate struct {
	Title       *string
	Slug        *string
	Content     *string
	IsPublished *bool
}

// Apply copies the set fields onto p, bumps UpdatedAt and revalidates.
func (u PostUpdate) Apply(p *Post) error {
	if u.Title != nil {
		p.Title = strings.TrimSpace(*u.Title)
	}
	if u.Slug != nil {
		p.Slug = strings.TrimSpace(*u.Slug)
	}
	if u.Content != nil {
		p.Content = *u.Content
	}
	if u.IsPublished != nil {
		p.IsPublished = *u.IsPublished
	}
	p.UpdatedAt = time.Now().UTC()
	return p.Validate()
}
