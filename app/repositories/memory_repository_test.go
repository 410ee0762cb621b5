package repositories

import (
	"fmt"
	"sync"
	"testing"

	"inkwell/app/models"

	"github.com/stretchr/testify/assert"
)

func TestMemoryPostRepository(t *testing.T) {
	testPostRepositoryContract(t, NewMemoryPostRepository())
}

func TestMemoryPostRepositoryConcurrentCreates(t *testing.T) {
	repo := NewMemoryPostRepository()

	// Many goroutines race on the same title; exactly one may win
	var wg sync.WaitGroup
	results := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Create(&models.Post{Title: "Contended", Content: "x"})
		}()
	}
	wg.Wait()
	close(results)

	created := 0
	for err := range results {
		if err == nil {
			created++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateTitle)
		}
	}
	assert.Equal(t, 1, created)

	posts, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestMemoryPostRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryPostRepository()
	assert.NoError(t, repo.Create(&models.Post{Title: "Immutable", Content: "original"}))

	got, err := repo.GetByID(1)
	assert.NoError(t, err)
	got.Content = "mutated outside the store"

	again, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "original", again.Content)
}

func TestMemoryPostRepositoryCounterSurvivesDeletes(t *testing.T) {
	repo := NewMemoryPostRepository()
	for i := 1; i <= 3; i++ {
		post := &models.Post{Title: fmt.Sprintf("Post %d", i), Content: "x"}
		assert.NoError(t, repo.Create(post))
		assert.Equal(t, i, post.ID)
		assert.NoError(t, repo.Delete(post.ID))
	}

	post := &models.Post{Title: "Final", Content: "x"}
	assert.NoError(t, repo.Create(post))
	assert.Equal(t, 4, post.ID)
}
