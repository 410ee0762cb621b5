package services

import (
	"errors"
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService handles business logic for blog posts: it enforces the
// title-uniqueness rule before any write and translates store faults into
// the error taxonomy handlers present to users.
type PostService struct {
	repo      repositories.PostRepository
	deleteKey string
}

// NewPostService creates a new PostService. deleteKey is the shared secret
// gating deletion; empty means deletion is blocked entirely.
func NewPostService(repo repositories.PostRepository, deleteKey string) *PostService {
	return &PostService{
		repo:      repo,
		deleteKey: deleteKey,
	}
}

// CreatePost creates a new blog post with a unique title
func (s *PostService) CreatePost(title, content string) (*models.Post, error) {
	post := &models.Post{Title: title, Content: content}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	if err := s.checkTitleFree(title, 0); err != nil {
		return nil, err
	}

	if err := s.repo.Create(post); err != nil {
		// The store's own uniqueness guard may fire after the pre-check
		// passed, when a concurrent create won the race
		if errors.Is(err, repositories.ErrDuplicateTitle) {
			return nil, ErrDuplicateTitle
		}
		return nil, &StorageError{Op: "create", Err: err}
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *PostService) GetPost(id int) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "get", Err: err}
	}
	return post, nil
}

// ListPosts retrieves every post, newest first
func (s *PostService) ListPosts() ([]*models.Post, error) {
	posts, err := s.repo.GetAll()
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return posts, nil
}

// UpdatePost replaces an existing post's title and content. Updating a
// post to its own current title succeeds; taking another post's title
// fails with ErrDuplicateTitle.
func (s *PostService) UpdatePost(id int, title, content string) (*models.Post, error) {
	existing, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: existing.CreatedAt,
	}
	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post: %w", err)
	}

	if err := s.checkTitleFree(title, id); err != nil {
		return nil, err
	}

	if err := s.repo.Update(post); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicateTitle):
			return nil, ErrDuplicateTitle
		case errors.Is(err, repositories.ErrNotFound):
			return nil, ErrNotFound
		default:
			return nil, &StorageError{Op: "update", Err: err}
		}
	}
	return post, nil
}

// DeletePost deletes a post after checking the submitted key against the
// configured one. It returns the deleted post so callers can name it.
func (s *PostService) DeletePost(id int, submittedKey string) (*models.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	if s.deleteKey == "" {
		return nil, ErrDeleteKeyNotSet
	}
	if submittedKey != s.deleteKey {
		return nil, ErrDeleteKeyMismatch
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &StorageError{Op: "delete", Err: err}
	}
	return post, nil
}

// checkTitleFree returns ErrDuplicateTitle when a post other than selfID
// already holds the title
func (s *PostService) checkTitleFree(title string, selfID int) error {
	holder, err := s.repo.FindByTitle(title)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return &StorageError{Op: "title lookup", Err: err}
	}
	if holder.ID != selfID {
		return ErrDuplicateTitle
	}
	return nil
}
