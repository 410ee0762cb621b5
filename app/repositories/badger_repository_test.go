package repositories

import (
	"testing"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
)

func newTestBadgerRepo(t *testing.T, path string) *BadgerPostRepository {
	t.Helper()
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	assert.NoError(t, err)
	return NewBadgerPostRepositoryWithDB(db)
}

func TestBadgerPostRepository(t *testing.T) {
	repo := newTestBadgerRepo(t, t.TempDir())
	defer repo.Close()

	testPostRepositoryContract(t, repo)
}

func TestBadgerPostRepositorySurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	repo := newTestBadgerRepo(t, dir)
	assert.NoError(t, repo.Create(&models.Post{Title: "Durable", Content: "still here"}))
	assert.NoError(t, repo.Close())

	reopened := newTestBadgerRepo(t, dir)
	defer reopened.Close()

	got, err := reopened.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "Durable", got.Title)

	// The id sequence must also survive
	next := &models.Post{Title: "Second", Content: "x"}
	assert.NoError(t, reopened.Create(next))
	assert.Equal(t, 2, next.ID)
}

func TestBadgerPostRepositoryTitleIndexConsistency(t *testing.T) {
	repo := newTestBadgerRepo(t, t.TempDir())
	defer repo.Close()

	assert.NoError(t, repo.Create(&models.Post{Title: "First", Content: "x"}))
	assert.NoError(t, repo.Update(&models.Post{ID: 1, Title: "Renamed", Content: "x"}))

	// Old index entry must be gone, new one resolvable
	_, err := repo.FindByTitle("First")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := repo.FindByTitle("Renamed")
	assert.NoError(t, err)
	assert.Equal(t, 1, got.ID)
}
