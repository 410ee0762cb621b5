package repositories

import (
	"testing"
	"time"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

// testPostRepositoryContract runs the behavior every backend must share.
func testPostRepositoryContract(t *testing.T, repo PostRepository) {
	t.Run("create assigns id and creation time", func(t *testing.T) {
		before := time.Now().UTC()
		post := &models.Post{Title: "Hello", Content: "World"}
		err := repo.Create(post)
		after := time.Now().UTC()

		assert.NoError(t, err)
		assert.Equal(t, 1, post.ID)
		assert.False(t, post.CreatedAt.Before(before))
		assert.False(t, post.CreatedAt.After(after))
	})

	t.Run("round trip preserves title and content exactly", func(t *testing.T) {
		got, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "Hello", got.Title)
		assert.Equal(t, "World", got.Content)
	})

	t.Run("create rejects a taken title", func(t *testing.T) {
		err := repo.Create(&models.Post{Title: "Hello", Content: "Other"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)

		posts, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("find by title", func(t *testing.T) {
		got, err := repo.FindByTitle("Hello")
		assert.NoError(t, err)
		assert.Equal(t, 1, got.ID)

		_, err = repo.FindByTitle("Missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("get all orders newest first", func(t *testing.T) {
		base := time.Now().UTC().Add(-time.Hour)
		older := &models.Post{Title: "Older", Content: "a", CreatedAt: base}
		newer := &models.Post{Title: "Newer", Content: "b", CreatedAt: base.Add(time.Minute)}
		assert.NoError(t, repo.Create(older))
		assert.NoError(t, repo.Create(newer))

		posts, err := repo.GetAll()
		assert.NoError(t, err)
		assert.Len(t, posts, 3)
		// "Hello" was created now, the two above an hour ago
		assert.Equal(t, "Hello", posts[0].Title)
		assert.Equal(t, "Newer", posts[1].Title)
		assert.Equal(t, "Older", posts[2].Title)
	})

	t.Run("update preserves creation time", func(t *testing.T) {
		original, err := repo.GetByID(1)
		assert.NoError(t, err)

		err = repo.Update(&models.Post{ID: 1, Title: "Hi", Content: "World"})
		assert.NoError(t, err)

		got, err := repo.GetByID(1)
		assert.NoError(t, err)
		assert.Equal(t, "Hi", got.Title)
		assert.True(t, got.CreatedAt.Equal(original.CreatedAt))
	})

	t.Run("update frees the old title", func(t *testing.T) {
		// "Hello" was renamed to "Hi" above, so it is available again
		err := repo.Create(&models.Post{Title: "Hello", Content: "World2"})
		assert.NoError(t, err)
	})

	t.Run("update rejects another post's title", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 1, Title: "Newer", Content: "x"})
		assert.ErrorIs(t, err, ErrDuplicateTitle)
	})

	t.Run("update to own title succeeds", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 1, Title: "Hi", Content: "changed"})
		assert.NoError(t, err)
	})

	t.Run("update missing post", func(t *testing.T) {
		err := repo.Update(&models.Post{ID: 999, Title: "Ghost", Content: "x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes the post and frees its title", func(t *testing.T) {
		err := repo.Delete(1)
		assert.NoError(t, err)

		_, err = repo.GetByID(1)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = repo.FindByTitle("Hi")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete missing post", func(t *testing.T) {
		err := repo.Delete(1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ids are never reused", func(t *testing.T) {
		post := &models.Post{Title: "After delete", Content: "x"}
		assert.NoError(t, repo.Create(post))
		assert.Greater(t, post.ID, 4)
	})
}
