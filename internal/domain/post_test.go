package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPost(t *testing.T) {
	t.Parallel()

	post, err := NewPost(7, " Hello ", "hello-world", "body", true)
	require.NoError(t, err)
	assert.Equal(t, int64(7), post.AuthorID)
	assert.Equal(t, "Hello", post.Title)
	assert.True(t, post.IsPublished)

	_, err = NewPost(0, "", "", "  ", false)
	require.Error(t, err)
	verrs, ok := err.(ValidationErrors)
	require.True(t, ok)
	fields := make([]string, 0, len(verrs))
	for _, v := range verrs {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"author_id", "title", "slug", "content"}, fields)
}

func TestPostUpdate_Apply(t *testing.T) {
	t.Parallel()

	post, err := NewPost(1, "Title", "slug", "content", false)
	require.NoError(t, err)
	before := post.UpdatedAt

	title := "New title"
	published := true
	require.NoError(t, PostUpdate{Title: &title, IsPublished: &published}.Apply(post))
	assert.Equal(t, "New title", post.Title)
	assert.Equal(t, "slug", post.Slug)
	assert.True(t, post.IsPublished)
	assert.False(t, post.UpdatedAt.Before(before))

	empty := ""
	err = PostUpdate{Content: &empty}.Apply(post)
	assert.ErrorIs(t, err, ErrValidation)
}
