package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postRowColumns = []string{
	"id", "author_id", "username", "title", "slug", "content", "is_published", "created_at", "updated_at",
}

func TestPostgresPostStore_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns_id", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		post, err := domain.NewPost(1, "Hello", "hello", "First post", true)
		require.NoError(t, err)

		mock.ExpectQuery("INSERT INTO posts").
			WithArgs(int64(1), "Hello", "hello", "First post", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

		require.NoError(t, s.Create(ctx, post))
		assert.Equal(t, int64(11), post.ID)
	})

	t.Run("duplicate_slug", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		post, err := domain.NewPost(1, "Hello", "hello", "First post", true)
		require.NoError(t, err)

		mock.ExpectQuery("INSERT INTO posts").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "posts_slug_key"})

		assert.ErrorIs(t, s.Create(ctx, post), store.ErrSlugExists)
	})

	t.Run("unknown_author", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		post, err := domain.NewPost(99, "Hello", "hello", "First post", false)
		require.NoError(t, err)

		mock.ExpectQuery("INSERT INTO posts").
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "posts_author_id_fkey"})

		assert.ErrorIs(t, s.Create(ctx, post), store.ErrInvalidEntity)
	})
}

func TestPostgresPostStore_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("found_with_author", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		mock.ExpectQuery("FROM posts p\\s+JOIN users u").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(int64(5), int64(1), "alice123", "T", "t", "C", true, now, now))

		post, err := s.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "alice123", post.AuthorUsername)
		assert.True(t, post.IsPublished)
	})

	t.Run("not_found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		mock.ExpectQuery("FROM posts").WillReturnRows(sqlmock.NewRows(postRowColumns))

		_, err := s.GetByID(ctx, 404)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})

	t.Run("for_update_locks_row", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		mock.ExpectQuery("FOR UPDATE OF p").
			WillReturnRows(sqlmock.NewRows(postRowColumns).
				AddRow(int64(5), int64(1), "alice123", "T", "t", "C", false, now, now))

		_, err := s.GetByIDForUpdate(ctx, 5)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresPostStore_ListPublished(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresPostStore(db, nil)
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts WHERE is_published").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))
	mock.ExpectQuery("WHERE p.is_published").
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows(postRowColumns).
			AddRow(int64(7), int64(1), "alice123", "T7", "t7", "C", true, now, now).
			AddRow(int64(6), int64(2), "bob", "T6", "t6", "C", true, now, now))

	posts, total, err := s.ListPublished(context.Background(), domain.PageRequest{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, posts, 2)
	assert.Equal(t, "bob", posts[1].AuthorUsername)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresPostStore_Update(t *testing.T) {
	ctx := context.Background()
	post := &domain.Post{ID: 5, AuthorID: 1, Title: "T", Slug: "t", Content: "C", UpdatedAt: time.Now().UTC()}

	t.Run("updated", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		mock.ExpectExec("UPDATE posts").
			WithArgs("T", "t", "C", false, sqlmock.AnyArg(), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, s.Update(ctx, post))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresPostStore(db, nil)
		mock.ExpectExec("UPDATE posts").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, s.Update(ctx, post), store.ErrPostNotFound)
	})
}

func TestPostgresPostStore_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresPostStore(db, nil)

	mock.ExpectExec("DELETE FROM posts WHERE id = \\$1").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.Delete(context.Background(), 1), store.ErrPostNotFound)
}
