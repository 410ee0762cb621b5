package repositories

import (
	"errors"

	"inkwell/app/models"
)

var (
	// ErrNotFound is returned when no post matches the given id or title.
	ErrNotFound = errors.New("post not found")

	// ErrDuplicateTitle is returned when a write would leave two posts
	// sharing the same title.
	ErrDuplicateTitle = errors.New("post title already exists")
)

// PostRepository defines the interface for post data access.
//
// Create assigns the post's ID and CreatedAt. GetAll returns posts ordered
// by creation time, newest first. Every backend enforces title uniqueness
// itself, so a racing write is rejected with ErrDuplicateTitle even when a
// caller's pre-check passed.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	FindByTitle(title string) (*models.Post, error)
	GetAll() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id int) error
	Close() error
}
